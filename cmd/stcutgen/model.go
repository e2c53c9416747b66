package main

import "github.com/stcuts/stcutgraph/internal/graphcore"

// GraphInput is one graph loaded from an edge-list file, ready to be
// handed to the core.
type GraphInput struct {
	Name     string
	Path     string
	Graph    *graphcore.Graph
	Capacity []float64 // nil when any edge line omits a capacity; all_st_cuts runs ignore it
	Source   int
	Target   int
}

// RunResult is everything one enumeration run produces, shaped for
// SQLite persistence and for the HTTP API to serve back out.
type RunResult struct {
	RunID      string
	GraphName  string
	Mode       string // "cuts" or "mincuts"
	Source     int
	Target     int
	VCount     int
	ECount     int
	Value      float64 // cut value; unused (0) for plain all_st_cuts
	Partitions [][]int
	Cuts       [][]int
	Stats      graphcore.FlowStats
	DomTree    *graphcore.Graph // nil unless -dump-domtree was requested
	DomRoot    int
}
