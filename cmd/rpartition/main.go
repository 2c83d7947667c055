// Command rpartition partitions a point file into disjoint rectangles, or
// builds an R*-tree over it and reports its leaves.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/paulmach/orb/encoding/wkt"
	"github.com/sirupsen/logrus"

	"github.com/geoshard/rtree"
	"github.com/geoshard/rtree/internal/pointfile"
)

var log = logrus.New()

type config struct {
	in       string
	mode     string
	capacity int
	infinite bool
	min      int
	max      int
	format   string
	locate   string
	verbose  bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.in, "in", "", "Point file of x,y tokens (.zst files are decompressed)")
	flag.StringVar(&cfg.mode, "mode", "partition", "partition or tree")
	flag.IntVar(&cfg.capacity, "capacity", 1000, "Maximum number of points per partition")
	flag.BoolVar(&cfg.infinite, "infinite", false, "Extend the outer partitions to cover the whole plane")
	flag.IntVar(&cfg.min, "min", 4, "Minimum node capacity in tree mode")
	flag.IntVar(&cfg.max, "max", 8, "Maximum node capacity in tree mode")
	flag.StringVar(&cfg.format, "format", "csv", "Output format: csv or wkt")
	flag.StringVar(&cfg.locate, "locate", "", "Report the partition holding the point x,y")
	flag.BoolVar(&cfg.verbose, "v", false, "Verbose logging")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := run(cfg, out); err != nil {
		log.WithError(err).Error("rpartition failed")
		os.Exit(1)
	}
	if err := out.Flush(); err != nil {
		log.WithError(err).Error("failed to write output")
		os.Exit(1)
	}
}

func run(cfg config, w io.Writer) error {
	if cfg.in == "" {
		return fmt.Errorf("missing -in")
	}
	if cfg.format != "csv" && cfg.format != "wkt" {
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	start := time.Now()
	xs, ys, err := pointfile.Open(cfg.in)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"file":   cfg.in,
		"points": len(xs),
		"took":   time.Since(start),
	}).Debug("read points")

	switch cfg.mode {
	case "partition":
		return runPartition(cfg, xs, ys, w)
	case "tree":
		return runTree(cfg, xs, ys, w)
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

func runPartition(cfg config, xs, ys []float64, w io.Writer) error {
	start := time.Now()
	var locator rtree.Locator
	partitions, err := rtree.PartitionPoints(xs, ys, cfg.capacity, cfg.infinite, &locator)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"capacity":   cfg.capacity,
		"infinite":   cfg.infinite,
		"partitions": len(partitions),
		"decisions":  locator.NumDecisionNodes(),
		"took":       time.Since(start),
	}).Info("partitioned points")

	for _, r := range partitions {
		if err := writeRect(w, cfg.format, r); err != nil {
			return err
		}
	}

	if cfg.locate == "" {
		return nil
	}
	x, y, err := parseProbe(cfg.locate)
	if err != nil {
		return err
	}
	id := locator.Locate(x, y)
	log.WithFields(logrus.Fields{"x": x, "y": y, "partition": id}).Debug("located point")
	_, err = fmt.Fprintf(w, "locate %g,%g -> %d\n", x, y, id)
	return err
}

func runTree(cfg config, xs, ys []float64, w io.Writer) error {
	start := time.Now()
	tree, err := rtree.New(cfg.min, cfg.max)
	if err != nil {
		return err
	}
	if err := tree.InitializeFromPoints(xs, ys); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"nodes":   tree.NumNodes(),
		"entries": tree.NumDataEntries(),
		"height":  tree.Height(),
		"took":    time.Since(start),
	}).Info("built tree")

	for n := range tree.Leaves() {
		if err := writeRect(w, cfg.format, tree.Bounds(n)); err != nil {
			return err
		}
	}
	return nil
}

func writeRect(w io.Writer, format string, r rtree.Rect) error {
	var err error
	switch format {
	case "wkt":
		_, err = fmt.Fprintln(w, wkt.MarshalString(r.Bound()))
	default:
		_, err = fmt.Fprintf(w, "%s,%s,%s,%s\n",
			formatFloat(r.MinX), formatFloat(r.MinY), formatFloat(r.MaxX), formatFloat(r.MaxY))
	}
	return err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parseProbe(s string) (float64, float64, error) {
	xText, yText, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("malformed point %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xText), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad x coordinate: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(yText), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad y coordinate: %w", err)
	}
	return x, y, nil
}
