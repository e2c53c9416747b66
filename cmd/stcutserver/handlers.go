package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
)

func (a *App) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", 0, "runs")
	runs, err := a.db.ListRuns(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, runs)
}

func (a *App) handleRun(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing query parameter id", http.StatusBadRequest)
		return
	}
	run, err := a.db.GetRun(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, run)
}

func (a *App) handlePartitions(w http.ResponseWriter, r *http.Request) {
	runID := r.URL.Query().Get("run_id")
	if runID == "" {
		http.Error(w, "missing query parameter run_id", http.StatusBadRequest)
		return
	}
	limit := parseIntParam(r, "limit", 0, "partitions")
	offset := parseIntParam(r, "offset", 0, "partitions")
	partitions, err := a.db.ListPartitions(runID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, partitions)
}

func (a *App) handleCuts(w http.ResponseWriter, r *http.Request) {
	runID := r.URL.Query().Get("run_id")
	if runID == "" {
		http.Error(w, "missing query parameter run_id", http.StatusBadRequest)
		return
	}
	limit := parseIntParam(r, "limit", 0, "cuts")
	offset := parseIntParam(r, "offset", 0, "cuts")
	cuts, err := a.db.ListCuts(runID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, cuts)
}

func (a *App) handleCut(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing query parameter id", http.StatusBadRequest)
		return
	}
	cut, err := a.db.GetCut(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "cut not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, cut)
}

func (a *App) handleDomTree(w http.ResponseWriter, r *http.Request) {
	runID := r.URL.Query().Get("run_id")
	if runID == "" {
		http.Error(w, "missing query parameter run_id", http.StatusBadRequest)
		return
	}
	edges, err := a.db.GetDomTree(runID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, edges)
}

func parseIntParam(r *http.Request, name string, def int, context string) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("%s: invalid %s %q, using default", context, name, s)
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
