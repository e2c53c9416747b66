package main

import (
	"database/sql"
	"encoding/json"
)

// nullFloat64JSON marshals as number or null: the runs.value column is
// NULL for plain all_st_cuts runs (which have no cut value, only
// partitions) and a real number for all_st_mincuts runs.
type nullFloat64JSON struct{ sql.NullFloat64 }

func (n nullFloat64JSON) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

func (n *nullFloat64JSON) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Valid = false
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	n.Float64, n.Valid = f, true
	return nil
}

// DB wraps *sql.DB and provides the result-store query helpers.
type DB struct {
	*sql.DB
}

// NewDB returns a DB wrapper.
func NewDB(db *sql.DB) *DB {
	return &DB{DB: db}
}

// RunSummary is one enumeration run, as listed by /api/runs.
type RunSummary struct {
	ID              string          `json:"id"`
	GraphName       string          `json:"graph_name"`
	Mode            string          `json:"mode"`
	Source          int             `json:"source"`
	Target          int             `json:"target"`
	VCount          int             `json:"vcount"`
	ECount          int             `json:"ecount"`
	Value           nullFloat64JSON `json:"value"`
	PartitionCount  int             `json:"partition_count"`
	Phases          int             `json:"phases"`
	AugmentingPaths int             `json:"augmenting_paths"`
	CreatedAt       string          `json:"created_at"`
}

// PartitionRecord is one partition (source-side vertex set) of a run.
type PartitionRecord struct {
	ID       string `json:"id"`
	RunID    string `json:"run_id"`
	Index    int    `json:"index"`
	Vertices []int  `json:"vertices"`
}

// CutRecord is one edge cut of a run, paired 1-1 with a PartitionRecord
// of the same Index.
type CutRecord struct {
	ID    string `json:"id"`
	RunID string `json:"run_id"`
	Index int    `json:"index"`
	Edges []int  `json:"edges"`
}

// DomTreeEdge is one edge of a persisted dominator tree.
type DomTreeEdge struct {
	Idom   int `json:"idom"`
	Vertex int `json:"vertex"`
}

const maxListLimit = 500
