package main

// SQL constants for the results schema cmd/stcutgen writes (runs,
// partitions, cuts, domtree_edges).

const queryRuns = `
SELECT id, graph_name, mode, source, target, vcount, ecount, value, partition_count, phases, augmenting_paths, created_at
FROM runs ORDER BY created_at DESC LIMIT ?
`

const queryRunByID = `
SELECT id, graph_name, mode, source, target, vcount, ecount, value, partition_count, phases, augmenting_paths, created_at
FROM runs WHERE id = ?
`

const queryPartitionsByRun = `
SELECT id, run_id, idx, vertices FROM partitions WHERE run_id = ? ORDER BY idx LIMIT ? OFFSET ?
`

const queryCutsByRun = `
SELECT id, run_id, idx, edges FROM cuts WHERE run_id = ? ORDER BY idx LIMIT ? OFFSET ?
`

const queryCutByID = `
SELECT id, run_id, idx, edges FROM cuts WHERE id = ?
`

const queryDomTreeByRun = `
SELECT idom, vertex FROM domtree_edges WHERE run_id = ? ORDER BY vertex
`
