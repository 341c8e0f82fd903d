package differ

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opsdiff/opsdiff/internal/canonical"
	"github.com/opsdiff/opsdiff/internal/common/errorwrapper"
	"github.com/opsdiff/opsdiff/internal/identity"
	"github.com/opsdiff/opsdiff/internal/models"
	"github.com/opsdiff/opsdiff/internal/patterns"
	"github.com/opsdiff/opsdiff/internal/segmenter"
)

// StateDiffer orchestrates segmentation, identity extraction,
// canonicalization, and fuzzy classification over a pre/post snapshot
// pair. A built StateDiffer holds no per-call state, so one instance may
// serve concurrent Diff calls without coordination.
type StateDiffer struct {
	repo          *patterns.Repository
	segmenter     *segmenter.Segmenter
	canonicalizer *canonical.Canonicalizer
	aligner       *lineAligner
	classifier    *changeClassifier
	logger        zerolog.Logger
}

// StateDifferBuilder provides a fluent interface for creating StateDiffer
type StateDifferBuilder struct {
	repo   *patterns.Repository
	cfg    Config
	logger zerolog.Logger
}

// NewStateDifferBuilder creates a new builder with defaults.
func NewStateDifferBuilder() *StateDifferBuilder {
	return &StateDifferBuilder{
		cfg:    DefaultConfig(),
		logger: zerolog.Nop(),
	}
}

// WithRepository sets the pattern repository.
func (b *StateDifferBuilder) WithRepository(repo *patterns.Repository) *StateDifferBuilder {
	b.repo = repo
	return b
}

// WithConfig sets the engine configuration.
func (b *StateDifferBuilder) WithConfig(cfg Config) *StateDifferBuilder {
	b.cfg = cfg
	return b
}

// WithLogger sets the logger.
func (b *StateDifferBuilder) WithLogger(logger zerolog.Logger) *StateDifferBuilder {
	b.logger = logger
	return b
}

// Build creates a StateDiffer instance, extending the repository with any
// caller-supplied volatile patterns.
func (b *StateDifferBuilder) Build() (*StateDiffer, error) {
	if b.cfg.SimilarityThreshold <= 0 || b.cfg.SimilarityThreshold > 1 {
		return nil, errorwrapper.NewValidationError("similarity_threshold", b.cfg.SimilarityThreshold, "must be in (0, 1]")
	}

	repo := b.repo
	if repo == nil {
		repo = patterns.NewDefaultRepository()
	}

	repo, err := repo.WithExtraVolatilePatterns(b.cfg.ExtraVolatilePatterns)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to extend pattern repository")
	}

	logger := b.logger.With().Str("component", "StateDiffer").Logger()
	aligner := newLineAligner()

	return &StateDiffer{
		repo:          repo,
		segmenter:     segmenter.NewSegmenter(repo, b.logger),
		canonicalizer: canonical.NewCanonicalizer(repo),
		aligner:       aligner,
		classifier:    newChangeClassifier(b.cfg.SimilarityThreshold, aligner.Similarity),
		logger:        logger,
	}, nil
}

// NewStateDiffer creates a StateDiffer with the default repository and
// configuration.
func NewStateDiffer(logger zerolog.Logger) (*StateDiffer, error) {
	return NewStateDifferBuilder().WithLogger(logger).Build()
}

// blockEntry is one identity-keyed block with its cached canonical text.
type blockEntry struct {
	identity  string
	block     *models.Block
	canonical string
}

// Diff compares two captured outputs and reports added, removed, and
// modified entities. Ordering is deterministic: added and modified follow
// first-appearance order in post, removed follows first-appearance order
// in pre. The computation is total over strings and has no failure modes.
func (d *StateDiffer) Diff(pre, post string) *models.DiffResult {
	preEntries := d.index(models.NewSnapshot(pre))
	postEntries := d.index(models.NewSnapshot(post))

	preByID := entryMap(preEntries)
	postByID := entryMap(postEntries)

	result := &models.DiffResult{
		Added:    []string{},
		Removed:  []string{},
		Modified: []models.ModifiedEntry{},
	}

	for _, entry := range postEntries {
		previous, existed := preByID[entry.identity]
		if !existed {
			result.Added = append(result.Added, entry.identity)
			continue
		}
		if previous.canonical == entry.canonical {
			result.UnchangedCount++
			continue
		}

		opcodes := d.aligner.Align(previous.block.RawLines(), entry.block.RawLines())
		result.Modified = append(result.Modified, models.ModifiedEntry{
			Identity:   entry.identity,
			Confidence: d.classifier.Classify(opcodes),
			Opcodes:    opcodes,
		})
	}

	for _, entry := range preEntries {
		if _, exists := postByID[entry.identity]; !exists {
			result.Removed = append(result.Removed, entry.identity)
		}
	}

	d.logger.Debug().
		Int("added", len(result.Added)).
		Int("removed", len(result.Removed)).
		Int("modified", len(result.Modified)).
		Int("unchanged", result.UnchangedCount).
		Msg("Computed state diff")

	return result
}

// index segments one snapshot and assigns each block its identity and
// canonical text. The identity extractor is scoped to this snapshot so
// fallback numbering never leaks across pre/post. Duplicate identities
// within a snapshot are disambiguated with #2, #3, ... suffixes in
// first-appearance order, so both blocks stay comparable instead of the
// later one silently overwriting the earlier.
func (d *StateDiffer) index(snapshot *models.Snapshot) []blockEntry {
	blocks := d.segmenter.Segment(snapshot)
	extractor := identity.NewExtractor(d.repo)

	entries := make([]blockEntry, 0, len(blocks))
	seen := make(map[string]int, len(blocks))

	for _, block := range blocks {
		id := extractor.Extract(block)
		seen[id]++
		if n := seen[id]; n > 1 {
			id = fmt.Sprintf("%s#%d", id, n)
		}
		block.Identity = id

		entries = append(entries, blockEntry{
			identity:  id,
			block:     block,
			canonical: d.canonicalizer.CanonicalizeBlock(block),
		})
	}
	return entries
}

func entryMap(entries []blockEntry) map[string]blockEntry {
	m := make(map[string]blockEntry, len(entries))
	for _, e := range entries {
		m[e.identity] = e
	}
	return m
}
