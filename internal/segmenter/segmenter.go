package segmenter

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/opsdiff/opsdiff/internal/models"
	"github.com/opsdiff/opsdiff/internal/patterns"
)

// Segmenter splits a snapshot into blocks using indentation as the
// hierarchy signal: a zero-indent line starts a block, indented lines
// below it are its children. Tabular regions (header row + separator row
// + data rows) are fused into a single block so that row-by-row
// segmentation does not defeat identity extraction.
type Segmenter struct {
	repo   *patterns.Repository
	logger zerolog.Logger
}

// NewSegmenter creates a segmenter over the given pattern repository.
func NewSegmenter(repo *patterns.Repository, logger zerolog.Logger) *Segmenter {
	return &Segmenter{
		repo:   repo,
		logger: logger.With().Str("component", "Segmenter").Logger(),
	}
}

// Segment converts a snapshot into an ordered list of blocks. Lines
// matching an ignore pattern are dropped first and never appear in any
// block. Blank lines act as soft separators: they terminate the current
// block (and any table run) but are not retained as content. An empty or
// all-ignorable snapshot yields an empty list, not an error.
func (s *Segmenter) Segment(snapshot *models.Snapshot) []*models.Block {
	lines := s.filterIgnorable(snapshot.Lines)

	var blocks []*models.Block
	var current *models.Block
	var lastSectionHeader string

	flush := func() {
		if current != nil {
			blocks = append(blocks, current)
			current = nil
		}
	}

	for i := 0; i < len(lines); {
		line := lines[i]

		if strings.TrimSpace(line.Text) == "" {
			flush()
			i++
			continue
		}

		if s.isTableStart(lines, i) {
			flush()
			table, next := s.consumeTable(lines, i, lastSectionHeader)
			blocks = append(blocks, table)
			i = next
			continue
		}

		if leadingIndent(line.Text) == 0 {
			flush()
			current = newBlock(models.BlockKindPlain, line, lastSectionHeader)
			lastSectionHeader = line.Text
			i++
			continue
		}

		// indented line with no preceding header (e.g. right after a blank
		// separator): it becomes its own block and falls back to the
		// sequential identity later
		if current == nil {
			current = newBlock(models.BlockKindPlain, line, lastSectionHeader)
			i++
			continue
		}

		current.Children = append(current.Children, line)
		current.EndLine = line.Number
		i++
	}
	flush()

	s.logger.Debug().Int("lines", len(snapshot.Lines)).Int("blocks", len(blocks)).Msg("Segmented snapshot")
	return blocks
}

// filterIgnorable drops noise lines but keeps blanks, which still act as
// block separators.
func (s *Segmenter) filterIgnorable(lines []models.Line) []models.Line {
	out := make([]models.Line, 0, len(lines))
	for _, line := range lines {
		if s.repo.IsIgnorableLine(line.Text) {
			continue
		}
		out = append(out, line)
	}
	return out
}

// isTableStart reports whether the line at index i is a table header row,
// i.e. a non-blank line immediately followed by a separator row.
func (s *Segmenter) isTableStart(lines []models.Line, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	if strings.TrimSpace(lines[i].Text) == "" || s.repo.IsTableMarker(lines[i].Text) {
		return false
	}
	return s.repo.IsTableMarker(lines[i+1].Text)
}

// consumeTable fuses a table run (header row, separator, data rows) into a
// single block. The run ends at a blank line, at the start of another
// table, or at end of input. Identity resolution for the block uses the
// nearest preceding non-table header, carried in SectionHeader.
func (s *Segmenter) consumeTable(lines []models.Line, start int, sectionHeader string) (*models.Block, int) {
	block := newBlock(models.BlockKindTable, lines[start], sectionHeader)

	i := start + 1
	for i < len(lines) {
		if strings.TrimSpace(lines[i].Text) == "" {
			break
		}
		if i > start+1 && s.isTableStart(lines, i) {
			break
		}
		block.Children = append(block.Children, lines[i])
		block.EndLine = lines[i].Number
		i++
	}
	return block, i
}

func newBlock(kind models.BlockKind, header models.Line, sectionHeader string) *models.Block {
	return &models.Block{
		Kind:          kind,
		Header:        header,
		SectionHeader: sectionHeader,
		StartLine:     header.Number,
		EndLine:       header.Number,
	}
}

func leadingIndent(text string) int {
	for i, r := range text {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(text)
}
