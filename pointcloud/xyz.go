package pointcloud

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadXYZ parses an ASCII cloud: one "x y z" triple of integers per line.
// Blank lines and lines starting with '#' are skipped.
// Errors are wrapped with the 1-based line number.
func ReadXYZ(r io.Reader) (*Cloud, error) {
	var positions []Vec3
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("ReadXYZ: line %d: %w", line, ErrMalformedLine)
		}
		var v [3]int32
		for a, f := range fields {
			n, err := strconv.ParseInt(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("ReadXYZ: line %d: %w: %v", line, ErrMalformedLine, err)
			}
			v[a] = int32(n)
		}
		p := Vec3{X: v[0], Y: v[1], Z: v[2]}
		if err := validatePosition(p); err != nil {
			return nil, fmt.Errorf("ReadXYZ: line %d: %w", line, err)
		}
		positions = append(positions, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadXYZ: %w", err)
	}

	return &Cloud{positions: positions}, nil
}

// LoadXYZ opens path and reads it with ReadXYZ.
func LoadXYZ(path string) (*Cloud, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadXYZ: %w", err)
	}
	defer f.Close()

	return ReadXYZ(f)
}
