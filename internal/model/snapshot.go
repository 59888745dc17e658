// Package model defines the measurement domain types for tikictx.
//
// A Snapshot is both the unit of measurement and the unit of baseline
// persistence, so every field carries a stable JSON name and round-trips
// losslessly. Maps keyed by command name or directory path preserve
// declaration order via ordered maps, which also keeps the serialized JSON
// objects in a stable, diff-friendly order.
package model

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FileMetric holds the size of a single measured file. A zero value signals
// an unreadable file, never an error.
type FileMetric struct {
	Tokens int `json:"tokens"`
	Lines  int `json:"lines"`
}

// CommandMetric holds the size of one tracked command file plus its share of
// the context budget.
type CommandMetric struct {
	Path      string  `json:"path"`
	Tokens    int     `json:"tokens"`
	Lines     int     `json:"lines"`
	PctOf200K float64 `json:"pct_of_200k"`
}

// CommandSet maps command name to metric in declaration order.
type CommandSet = orderedmap.OrderedMap[string, CommandMetric]

// DirectoryMetrics holds the measured files directly inside one prompt
// directory together with derived totals.
type DirectoryMetrics struct {
	Files       *orderedmap.OrderedMap[string, FileMetric] `json:"files"`
	TotalTokens int                                        `json:"total_tokens"`
	TotalLines  int                                        `json:"total_lines"`
}

// InvocationEstimate breaks a typical command invocation into named token
// cost components, some live-measured and some fixed allowances.
type InvocationEstimate struct {
	Components  *orderedmap.OrderedMap[string, int] `json:"components"`
	TotalTokens int                                 `json:"total_tokens"`
	Remaining   int                                 `json:"remaining"`
	PctUsed     float64                             `json:"pct_used"`
}

// Totals sums the tracked command files. Prompt file totals are tracked per
// directory and intentionally not folded in here.
type Totals struct {
	AllTokens int `json:"all_tokens"`
	AllLines  int `json:"all_lines"`
}

// Snapshot is one full measurement of all tracked files at a point in time.
type Snapshot struct {
	Timestamp         string                                           `json:"timestamp"`
	Commands          *CommandSet                                      `json:"commands"`
	ExecuteInvocation InvocationEstimate                               `json:"execute_invocation"`
	PromptFiles       *orderedmap.OrderedMap[string, DirectoryMetrics] `json:"prompt_files"`
	Totals            Totals                                           `json:"totals"`
}

// CommandTokens returns the token count recorded for the named command, or 0
// when the command is absent (e.g. a baseline written before the command
// existed).
func (s *Snapshot) CommandTokens(name string) int {
	if s == nil || s.Commands == nil {
		return 0
	}
	m, ok := s.Commands.Get(name)
	if !ok {
		return 0
	}
	return m.Tokens
}

// PromptFileTotals sums tokens and lines across all prompt directories.
func (s *Snapshot) PromptFileTotals() (tokens, lines int) {
	if s == nil || s.PromptFiles == nil {
		return 0, 0
	}
	for pair := s.PromptFiles.Oldest(); pair != nil; pair = pair.Next() {
		tokens += pair.Value.TotalTokens
		lines += pair.Value.TotalLines
	}
	return tokens, lines
}
