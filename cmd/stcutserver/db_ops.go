package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// ListRuns returns up to limit most-recent runs.
func (d *DB) ListRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	rows, err := d.Query(queryRuns, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		r, err := scanRunSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetRun returns the run with the given ID, or sql.ErrNoRows if none.
func (d *DB) GetRun(id string) (*RunSummary, error) {
	row := d.QueryRow(queryRunByID, id)
	r, err := scanRunSummary(row)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRunSummary(row rowScanner) (RunSummary, error) {
	var r RunSummary
	err := row.Scan(&r.ID, &r.GraphName, &r.Mode, &r.Source, &r.Target, &r.VCount, &r.ECount,
		&r.Value, &r.PartitionCount, &r.Phases, &r.AugmentingPaths, &r.CreatedAt)
	return r, err
}

// ListPartitions returns up to limit partitions of runID, starting at offset.
func (d *DB) ListPartitions(runID string, limit, offset int) ([]PartitionRecord, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	rows, err := d.Query(queryPartitionsByRun, runID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query partitions: %w", err)
	}
	defer rows.Close()

	var out []PartitionRecord
	for rows.Next() {
		var p PartitionRecord
		var verticesJSON string
		if err := rows.Scan(&p.ID, &p.RunID, &p.Index, &verticesJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(verticesJSON), &p.Vertices); err != nil {
			return nil, fmt.Errorf("decode vertices for %s: %w", p.ID, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListCuts returns up to limit cuts of runID, starting at offset.
func (d *DB) ListCuts(runID string, limit, offset int) ([]CutRecord, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	rows, err := d.Query(queryCutsByRun, runID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query cuts: %w", err)
	}
	defer rows.Close()
	return scanCuts(rows)
}

// GetCut returns the cut with the given ID, or sql.ErrNoRows if none.
func (d *DB) GetCut(id string) (*CutRecord, error) {
	rows, err := d.Query(queryCutByID, id)
	if err != nil {
		return nil, fmt.Errorf("query cut: %w", err)
	}
	defer rows.Close()
	cuts, err := scanCuts(rows)
	if err != nil {
		return nil, err
	}
	if len(cuts) == 0 {
		return nil, sql.ErrNoRows
	}
	return &cuts[0], nil
}

func scanCuts(rows *sql.Rows) ([]CutRecord, error) {
	var out []CutRecord
	for rows.Next() {
		var c CutRecord
		var edgesJSON string
		if err := rows.Scan(&c.ID, &c.RunID, &c.Index, &edgesJSON); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(edgesJSON), &c.Edges); err != nil {
			return nil, fmt.Errorf("decode edges for %s: %w", c.ID, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetDomTree returns the dominator-tree edges persisted for runID, if
// cmd/stcutgen was run with -dump-domtree.
func (d *DB) GetDomTree(runID string) ([]DomTreeEdge, error) {
	rows, err := d.Query(queryDomTreeByRun, runID)
	if err != nil {
		return nil, fmt.Errorf("query domtree: %w", err)
	}
	defer rows.Close()

	var out []DomTreeEdge
	for rows.Next() {
		var e DomTreeEdge
		if err := rows.Scan(&e.Idom, &e.Vertex); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
