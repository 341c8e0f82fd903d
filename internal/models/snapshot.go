package models

import "strings"

// Line is a single raw line of captured device output with its 1-based
// position in the original capture.
type Line struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// Snapshot is one captured command output (pre or post), split into lines.
// It is immutable once built; the differ only ever derives views from it.
type Snapshot struct {
	Lines []Line
}

// NewSnapshot splits raw captured text into numbered lines. A trailing
// newline does not produce a trailing empty line.
func NewSnapshot(text string) *Snapshot {
	if text == "" {
		return &Snapshot{}
	}

	raw := strings.Split(text, "\n")
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]Line, 0, len(raw))
	for i, t := range raw {
		lines = append(lines, Line{Number: i + 1, Text: strings.TrimRight(t, "\r")})
	}
	return &Snapshot{Lines: lines}
}

// IsEmpty reports whether the snapshot contains no lines at all.
func (s *Snapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}
