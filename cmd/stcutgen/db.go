package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

const batchSize = 50000

// OpenResultsDB creates (overwriting) the SQLite results database at
// path and its schema, tuned the way the teacher's CPG writer tunes
// its own database: WAL journal, relaxed synchronous, memory temp
// store, and tables created before indexes.
func OpenResultsDB(path string) (*sqlite.Conn, error) {
	_ = os.Remove(path)

	conn, err := sqlite.OpenConn(path, sqlite.OpenCreate, sqlite.OpenReadWrite, sqlite.OpenWAL)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
		"PRAGMA mmap_size = 268435456",
		"PRAGMA cache_size = -64000",
		"PRAGMA journal_mode = WAL",
	} {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			_ = conn.Close()
			return nil, err
		}
	}

	if err := createTables(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

func createTables(conn *sqlite.Conn) error {
	ddl := `
CREATE TABLE runs (
    id TEXT PRIMARY KEY,
    graph_name TEXT NOT NULL,
    mode TEXT NOT NULL,
    source INTEGER NOT NULL,
    target INTEGER NOT NULL,
    vcount INTEGER NOT NULL,
    ecount INTEGER NOT NULL,
    value REAL,
    partition_count INTEGER NOT NULL,
    phases INTEGER NOT NULL,
    augmenting_paths INTEGER NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE partitions (
    id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    idx INTEGER NOT NULL,
    vertices TEXT NOT NULL
);

CREATE TABLE cuts (
    id TEXT PRIMARY KEY,
    run_id TEXT NOT NULL,
    idx INTEGER NOT NULL,
    edges TEXT NOT NULL
);

CREATE TABLE domtree_edges (
    run_id TEXT NOT NULL,
    idom INTEGER NOT NULL,
    vertex INTEGER NOT NULL
);
`
	return sqlitex.ExecuteScript(conn, ddl, nil)
}

// WriteRuns persists every run result in one transaction, then builds
// the lookup indexes (the teacher's db.go defers index creation past
// the bulk insert for the same reason: unindexed inserts are faster).
func WriteRuns(conn *sqlite.Conn, runs []*RunResult, prog *Progress) error {
	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	for _, run := range runs {
		if err := insertRun(conn, run, prog); err != nil {
			endFn(&err)
			return err
		}
	}

	endFn(&err)
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return sqlitex.ExecuteScript(conn, `
CREATE INDEX idx_partitions_run ON partitions(run_id);
CREATE INDEX idx_cuts_run ON cuts(run_id);
CREATE INDEX idx_domtree_run ON domtree_edges(run_id);
`, nil)
}

func insertRun(conn *sqlite.Conn, run *RunResult, prog *Progress) error {
	runStmt, err := conn.Prepare(`INSERT INTO runs (id, graph_name, mode, source, target, vcount, ecount, value, partition_count, phases, augmenting_paths, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare run insert: %w", err)
	}
	defer func() { _ = runStmt.Finalize() }()

	runStmt.BindText(1, run.RunID)
	runStmt.BindText(2, run.GraphName)
	runStmt.BindText(3, run.Mode)
	runStmt.BindInt64(4, int64(run.Source))
	runStmt.BindInt64(5, int64(run.Target))
	runStmt.BindInt64(6, int64(run.VCount))
	runStmt.BindInt64(7, int64(run.ECount))
	if run.Mode == "mincuts" {
		runStmt.BindFloat(8, run.Value)
	} else {
		runStmt.BindNull(8)
	}
	runStmt.BindInt64(9, int64(len(run.Partitions)))
	runStmt.BindInt64(10, int64(run.Stats.Phases))
	runStmt.BindInt64(11, int64(run.Stats.AugmentingPaths))
	runStmt.BindText(12, time.Now().UTC().Format(time.RFC3339))
	if _, err := runStmt.Step(); err != nil {
		return fmt.Errorf("insert run %s: %w", run.RunID, err)
	}

	partStmt, err := conn.Prepare(`INSERT INTO partitions (id, run_id, idx, vertices) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare partition insert: %w", err)
	}
	defer func() { _ = partStmt.Finalize() }()

	cutStmt, err := conn.Prepare(`INSERT INTO cuts (id, run_id, idx, edges) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cut insert: %w", err)
	}
	defer func() { _ = cutStmt.Finalize() }()

	for i := range run.Partitions {
		vertices, err := json.Marshal(run.Partitions[i])
		if err != nil {
			return fmt.Errorf("marshal partition %d: %w", i, err)
		}
		partStmt.BindText(1, PartitionID(run.RunID, i))
		partStmt.BindText(2, run.RunID)
		partStmt.BindInt64(3, int64(i))
		partStmt.BindText(4, string(vertices))
		if _, err := partStmt.Step(); err != nil {
			return fmt.Errorf("insert partition %d: %w", i, err)
		}
		_ = partStmt.Reset()

		edges, err := json.Marshal(run.Cuts[i])
		if err != nil {
			return fmt.Errorf("marshal cut %d: %w", i, err)
		}
		cutStmt.BindText(1, CutID(run.RunID, i))
		cutStmt.BindText(2, run.RunID)
		cutStmt.BindInt64(3, int64(i))
		cutStmt.BindText(4, string(edges))
		if _, err := cutStmt.Step(); err != nil {
			return fmt.Errorf("insert cut %d: %w", i, err)
		}
		_ = cutStmt.Reset()

		if (i+1)%batchSize == 0 {
			prog.Verbose("  %s: inserted %d/%d partitions", run.RunID, i+1, len(run.Partitions))
		}
	}

	if run.DomTree != nil {
		domStmt, err := conn.Prepare(`INSERT INTO domtree_edges (run_id, idom, vertex) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare domtree insert: %w", err)
		}
		defer func() { _ = domStmt.Finalize() }()

		for e := 0; e < run.DomTree.ECount(); e++ {
			domStmt.BindText(1, run.RunID)
			domStmt.BindInt64(2, int64(run.DomTree.From(e)))
			domStmt.BindInt64(3, int64(run.DomTree.To(e)))
			if _, err := domStmt.Step(); err != nil {
				return fmt.Errorf("insert domtree edge %d: %w", e, err)
			}
			_ = domStmt.Reset()
		}
	}

	prog.Log("%s: wrote %d partitions, %d cuts", run.RunID, len(run.Partitions), len(run.Cuts))
	return nil
}
