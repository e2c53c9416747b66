package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stcuts/stcutgraph/internal/graphcore"
)

// LoadGraphFile reads a directed graph in the package's plain-text
// edge-list format:
//
//	n m
//	from to [capacity]   (repeated m times)
//	source target
//
// Blank lines and lines starting with # are ignored. Capacity is
// optional per edge; if any edge omits it, the graph is treated as
// uncapacitated (Capacity is left nil, and all_st_mincuts will default
// to unit capacity).
func LoadGraphFile(path string) (*GraphInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(lines) < 2 {
		return nil, fmt.Errorf("%s: expected header, edges, and a source/target line", path)
	}

	n, m, err := parseTwoInts(lines[0])
	if err != nil {
		return nil, fmt.Errorf("%s: header %q: %w", path, lines[0], err)
	}
	if len(lines) != m+2 {
		return nil, fmt.Errorf("%s: header declares %d edges, found %d edge lines", path, m, len(lines)-2)
	}

	edges := make([]int, 0, 2*m)
	capacity := make([]float64, 0, m)
	haveCapacity := true
	for i := 0; i < m; i++ {
		fields := strings.Fields(lines[1+i])
		if len(fields) != 2 && len(fields) != 3 {
			return nil, fmt.Errorf("%s: edge line %q: want \"from to [capacity]\"", path, lines[1+i])
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s: edge line %q: %w", path, lines[1+i], err)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%s: edge line %q: %w", path, lines[1+i], err)
		}
		edges = append(edges, from, to)

		if len(fields) == 3 {
			c, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: edge line %q: %w", path, lines[1+i], err)
			}
			capacity = append(capacity, c)
		} else {
			haveCapacity = false
		}
	}
	if !haveCapacity {
		capacity = nil
	}

	source, target, err := parseTwoInts(lines[len(lines)-1])
	if err != nil {
		return nil, fmt.Errorf("%s: source/target line %q: %w", path, lines[len(lines)-1], err)
	}

	g, err := graphcore.NewGraph(n, edges, true)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &GraphInput{
		Name:     name,
		Path:     path,
		Graph:    g,
		Capacity: capacity,
		Source:   source,
		Target:   target,
	}, nil
}

func parseTwoInts(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want exactly two integers")
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
