package canonical

import (
	"strings"

	"github.com/opsdiff/opsdiff/internal/models"
	"github.com/opsdiff/opsdiff/internal/patterns"
)

// Canonicalizer rewrites volatile spans (timestamps, uptimes, counters,
// session IDs) into fixed placeholders so two captures of the same state
// compare equal. It is a pure function over a block's raw lines.
type Canonicalizer struct {
	repo *patterns.Repository
}

// NewCanonicalizer creates a canonicalizer over the given pattern repository.
func NewCanonicalizer(repo *patterns.Repository) *Canonicalizer {
	return &Canonicalizer{repo: repo}
}

// CanonicalizeBlock renders a block's canonical text: header plus children,
// newline-joined, with every volatile span replaced by its group's
// placeholder. Used for equality testing only, never shown to the user.
func (c *Canonicalizer) CanonicalizeBlock(block *models.Block) string {
	return c.CanonicalizeLines(block.RawLines())
}

// CanonicalizeLines canonicalizes raw lines and joins them with newlines.
func (c *Canonicalizer) CanonicalizeLines(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = c.CanonicalizeLine(line)
	}
	return strings.Join(out, "\n")
}

// CanonicalizeLine applies the volatile groups to one line in repository
// order. The order is load-bearing: generic large numbers run last so they
// cannot consume digits that belong to a timestamp or a rate. The result
// is idempotent because no placeholder contains a digit while every
// volatile pattern requires one.
func (c *Canonicalizer) CanonicalizeLine(line string) string {
	for _, group := range c.repo.VolatileGroups {
		for _, re := range group.Patterns {
			line = re.ReplaceAllString(line, group.Placeholder)
		}
	}
	return line
}
