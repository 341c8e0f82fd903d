package models

// BlockKind distinguishes ordinary indentation-segmented blocks from fused
// table blocks (header row + separator + data rows treated as one unit).
type BlockKind int

const (
	// BlockKindPlain is a zero-indent header line plus its indented children.
	BlockKindPlain BlockKind = iota
	// BlockKindTable is a fused tabular region (header row, marker row, data rows).
	BlockKindTable
)

// Block is a contiguous region of one snapshot representing one logical
// entity's text. Blocks are owned by the snapshot they were segmented from
// and are never mutated after segmentation; Identity is assigned exactly
// once by the entity extractor.
type Block struct {
	Identity string    `json:"identity"`
	Kind     BlockKind `json:"-"`
	Header   Line      `json:"header"`
	Children []Line    `json:"children,omitempty"`

	// SectionHeader carries the text of the nearest preceding non-table
	// header line for table blocks, so identity can be resolved from the
	// section a table belongs to rather than from its column headers.
	SectionHeader string `json:"-"`

	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
}

// RawLines returns the block's lines (header first) as plain strings.
func (b *Block) RawLines() []string {
	out := make([]string, 0, len(b.Children)+1)
	out = append(out, b.Header.Text)
	for _, c := range b.Children {
		out = append(out, c.Text)
	}
	return out
}
