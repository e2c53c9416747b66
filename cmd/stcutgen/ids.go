package main

import "fmt"

// CutID generates a deterministic ID for the i-th cut of a run.
func CutID(runID string, i int) string {
	return fmt.Sprintf("%s::cut%d", runID, i)
}

// PartitionID generates a deterministic ID for the i-th partition of
// a run; it's a 1-1 pairing with CutID's i.
func PartitionID(runID string, i int) string {
	return fmt.Sprintf("%s::part%d", runID, i)
}

// DomTreeID generates a deterministic ID for a run's persisted
// dominator tree, when one was requested.
func DomTreeID(runID string) string {
	return fmt.Sprintf("%s::domtree", runID)
}
