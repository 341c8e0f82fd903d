package identity

import (
	"fmt"
	"regexp"

	"github.com/opsdiff/opsdiff/internal/models"
	"github.com/opsdiff/opsdiff/internal/patterns"
)

// genericCompoundPattern accepts a leading capitalized token followed by a
// short alphanumeric qualifier as a compound identity ("VLAN 10",
// "Peer 203.0.113.5") when no specific matcher claims the line.
var genericCompoundPattern = regexp.MustCompile(`^([A-Z][A-Za-z-]{1,19})\s+([A-Za-z0-9./:]{1,24})\b`)

// Extractor assigns identity keys to blocks. It is scoped to a single
// snapshot's segmentation output: the fallback counter for unmatched
// blocks restarts with every new extractor, so "Unknown Block N" numbering
// is deterministic per snapshot and never shared across pre/post.
type Extractor struct {
	repo       *patterns.Repository
	unknownSeq int
}

// NewExtractor creates an extractor for one snapshot's blocks.
func NewExtractor(repo *patterns.Repository) *Extractor {
	return &Extractor{repo: repo}
}

// Extract resolves a block's identity key. Priority: specific matchers
// from the repository against the header line, then the generic
// capitalized-token heuristic, then a sequential "Unknown Block N"
// fallback. For table blocks the nearest preceding section header is
// tried before the table's own column-header row.
func (e *Extractor) Extract(block *models.Block) string {
	for _, line := range e.candidateLines(block) {
		if key, ok := e.matchLine(line); ok {
			return key
		}
	}

	e.unknownSeq++
	return fmt.Sprintf("Unknown Block %d", e.unknownSeq)
}

func (e *Extractor) candidateLines(block *models.Block) []string {
	if block.Kind == models.BlockKindTable && block.SectionHeader != "" {
		return []string{block.SectionHeader, block.Header.Text}
	}
	return []string{block.Header.Text}
}

func (e *Extractor) matchLine(line string) (string, bool) {
	for _, matcher := range e.repo.IdentityMatchers {
		if key, ok := matcher.TryMatch(line); ok {
			return key, true
		}
	}

	if groups := genericCompoundPattern.FindStringSubmatch(line); groups != nil {
		return groups[1] + " " + groups[2], true
	}
	return "", false
}
