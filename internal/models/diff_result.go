package models

// Confidence classifies how likely a modified block reflects a genuine
// operational change rather than residual textual noise.
type Confidence string

const (
	// ConfidenceHigh marks a structurally significant change.
	ConfidenceHigh Confidence = "high"
	// ConfidenceLow marks a change that is likely an un-canonicalized
	// volatile field (textually near-identical lines).
	ConfidenceLow Confidence = "low"
)

// OpType is one line-level alignment operation.
type OpType string

const (
	OpEqual   OpType = "equal"
	OpInsert  OpType = "insert"
	OpDelete  OpType = "delete"
	OpReplace OpType = "replace"
)

// LineOpcode describes one aligned run of raw lines between the pre and
// post versions of a block. PreLines is empty for insert, PostLines for
// delete; equal carries the shared lines in PreLines only.
type LineOpcode struct {
	Op        OpType   `json:"op"`
	PreLines  []string `json:"pre_lines,omitempty"`
	PostLines []string `json:"post_lines,omitempty"`
}

// ModifiedEntry is one block present in both snapshots whose canonical
// text differs, with the raw-line alignment that produced the verdict.
type ModifiedEntry struct {
	Identity   string       `json:"identity"`
	Confidence Confidence   `json:"confidence"`
	Opcodes    []LineOpcode `json:"opcodes"`
}

// DiffResult is the structured outcome of one pre/post comparison.
// Added and Modified follow first-appearance order in post; Removed
// follows first-appearance order in pre.
type DiffResult struct {
	Added          []string        `json:"added"`
	Removed        []string        `json:"removed"`
	Modified       []ModifiedEntry `json:"modified"`
	UnchangedCount int             `json:"unchanged_count"`
}

// HasChanges reports whether any entity was added, removed, or modified.
func (r *DiffResult) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Modified) > 0
}
