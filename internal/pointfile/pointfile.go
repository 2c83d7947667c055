// Package pointfile reads point sets stored as whitespace separated "x,y"
// tokens, optionally zstd compressed.
package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Read parses every "x,y" token of r.
func Read(r io.Reader) (xs, ys []float64, err error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for n := 1; sc.Scan(); n++ {
		x, y, err := parsePoint(sc.Text())
		if err != nil {
			return nil, nil, fmt.Errorf("point %d: %w", n, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read points: %w", err)
	}
	return xs, ys, nil
}

// Open reads the points of the named file. Files ending in ".zst" are
// decompressed first.
func Open(path string) (xs, ys []float64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if filepath.Ext(path) != ".zst" {
		return Read(file)
	}

	dec, err := zstd.NewReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer dec.Close()
	return Read(dec)
}

func parsePoint(tok string) (float64, float64, error) {
	xText, yText, ok := strings.Cut(tok, ",")
	if !ok {
		return 0, 0, fmt.Errorf("malformed point %q", tok)
	}
	x, err := strconv.ParseFloat(xText, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad x coordinate: %w", err)
	}
	y, err := strconv.ParseFloat(yText, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad y coordinate: %w", err)
	}
	return x, y, nil
}
