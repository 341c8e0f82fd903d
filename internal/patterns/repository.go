package patterns

import (
	"regexp"

	"github.com/opsdiff/opsdiff/internal/common/errorwrapper"
)

// Repository is the process-wide, read-only pattern set consumed by the
// segmenter, extractor, and canonicalizer. Build it once and share it
// freely: it is never mutated after construction, so unsynchronized
// concurrent reads are safe.
type Repository struct {
	VolatileGroups      []VolatileGroup
	IgnoreLinePatterns  []*regexp.Regexp
	TableMarkerPatterns []*regexp.Regexp
	IdentityMatchers    []IdentityMatcher
}

// NewDefaultRepository builds the built-in pattern repository.
func NewDefaultRepository() *Repository {
	return &Repository{
		VolatileGroups:      defaultVolatileGroups(),
		IgnoreLinePatterns:  defaultIgnoreLinePatterns(),
		TableMarkerPatterns: defaultTableMarkerPatterns(),
		IdentityMatchers:    defaultIdentityMatchers(),
	}
}

// WithExtraVolatilePatterns returns a derived repository with a
// caller-supplied volatile group appended. The receiver is not modified.
// The extra group is inserted ahead of generic_large_numbers so that
// caller patterns see their digits before the catch-all consumes them.
func (r *Repository) WithExtraVolatilePatterns(exprs []string) (*Repository, error) {
	if len(exprs) == 0 {
		return r, nil
	}

	compiled := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, errorwrapper.WrapError(err, "failed to compile extra volatile pattern "+expr)
		}
		compiled = append(compiled, re)
	}

	extra := VolatileGroup{
		Name:        "caller_supplied",
		Placeholder: PlaceholderVolatile,
		Patterns:    compiled,
	}

	groups := make([]VolatileGroup, 0, len(r.VolatileGroups)+1)
	for _, g := range r.VolatileGroups {
		if g.Name == "generic_large_numbers" {
			groups = append(groups, extra)
		}
		groups = append(groups, g)
	}

	derived := *r
	derived.VolatileGroups = groups
	return &derived, nil
}

// IsIgnorableLine reports whether a raw line matches any ignore pattern.
func (r *Repository) IsIgnorableLine(line string) bool {
	for _, re := range r.IgnoreLinePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// IsTableMarker reports whether a raw line is a table separator row.
func (r *Repository) IsTableMarker(line string) bool {
	for _, re := range r.TableMarkerPatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
