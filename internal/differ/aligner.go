package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/opsdiff/opsdiff/internal/models"
)

// lineAligner produces line-level alignment opcodes between the pre and
// post versions of a block, over raw (non-canonical) lines.
type lineAligner struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

func newLineAligner() *lineAligner {
	return &lineAligner{dmp: diffmatchpatch.New()}
}

// Align maps each line run to an equal/insert/delete/replace opcode. An
// adjacent delete+insert run is paired line-by-line into a replace opcode;
// leftover lines on either side stay pure delete or insert, which the
// classifier treats as structural change.
func (a *lineAligner) Align(pre, post []string) []models.LineOpcode {
	diffs := a.lineDiffs(pre, post)

	var ops []models.LineOpcode
	for i := 0; i < len(diffs); {
		d := diffs[i]
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			ops = append(ops, models.LineOpcode{Op: models.OpEqual, PreLines: splitDiffLines(d.Text)})
			i++
		case diffmatchpatch.DiffInsert:
			ops = append(ops, models.LineOpcode{Op: models.OpInsert, PostLines: splitDiffLines(d.Text)})
			i++
		case diffmatchpatch.DiffDelete:
			deleted := splitDiffLines(d.Text)
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				inserted := splitDiffLines(diffs[i+1].Text)
				ops = append(ops, pairReplaceRun(deleted, inserted)...)
				i += 2
				continue
			}
			ops = append(ops, models.LineOpcode{Op: models.OpDelete, PreLines: deleted})
			i++
		}
	}
	return ops
}

// Similarity computes a Ratcliff/Obershelp-style matching-character ratio
// between two raw lines: 2*matching/(len(a)+len(b)), in [0,1].
func (a *lineAligner) Similarity(x, y string) float64 {
	if x == y {
		return 1.0
	}
	total := len(x) + len(y)
	if total == 0 {
		return 1.0
	}

	matching := 0
	for _, d := range a.dmp.DiffMain(x, y, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			matching += len(d.Text)
		}
	}
	return 2.0 * float64(matching) / float64(total)
}

// lineDiffs runs diffmatchpatch in line mode so diff granularity is whole
// lines rather than characters.
func (a *lineAligner) lineDiffs(pre, post []string) []diffmatchpatch.Diff {
	preText := joinWithTrailingNewline(pre)
	postText := joinWithTrailingNewline(post)

	preChars, postChars, lineArray := a.dmp.DiffLinesToChars(preText, postText)
	diffs := a.dmp.DiffMain(preChars, postChars, false)
	return a.dmp.DiffCharsToLines(diffs, lineArray)
}

// pairReplaceRun pairs deleted and inserted lines positionally into one
// replace opcode, leaving any length mismatch as a trailing pure
// delete/insert.
func pairReplaceRun(deleted, inserted []string) []models.LineOpcode {
	n := len(deleted)
	if len(inserted) < n {
		n = len(inserted)
	}

	var ops []models.LineOpcode
	if n > 0 {
		ops = append(ops, models.LineOpcode{Op: models.OpReplace, PreLines: deleted[:n], PostLines: inserted[:n]})
	}
	if len(deleted) > n {
		ops = append(ops, models.LineOpcode{Op: models.OpDelete, PreLines: deleted[n:]})
	}
	if len(inserted) > n {
		ops = append(ops, models.LineOpcode{Op: models.OpInsert, PostLines: inserted[n:]})
	}
	return ops
}

func joinWithTrailingNewline(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitDiffLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
