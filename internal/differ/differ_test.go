package differ

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdiff/opsdiff/internal/models"
)

func newTestDiffer(t *testing.T) *StateDiffer {
	t.Helper()
	d, err := NewStateDiffer(zerolog.Nop())
	require.NoError(t, err)
	return d
}

func TestDiff_IdenticalSnapshots(t *testing.T) {
	d := newTestDiffer(t)

	text := "GigabitEthernet1/0/1 is up\n" +
		"  MTU 1500 bytes\n" +
		"Vlan10 state is up\n"

	result := d.Diff(text, text)

	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Modified)
	assert.Equal(t, 2, result.UnchangedCount)
}

func TestDiff_Symmetry(t *testing.T) {
	d := newTestDiffer(t)

	a := "GigabitEthernet1/0/1 is up\nVlan10 state is up\n"
	b := "GigabitEthernet1/0/1 is up\nVlan20 state is up\n"

	forward := d.Diff(a, b)
	backward := d.Diff(b, a)

	assert.ElementsMatch(t, forward.Added, backward.Removed)
	assert.ElementsMatch(t, forward.Removed, backward.Added)
}

func TestDiff_VolatileOnlyChangesAreSuppressed(t *testing.T) {
	d := newTestDiffer(t)

	pre := "GigabitEthernet1/0/1 is up\n" +
		"  5 minute input rate 1000 bits/sec\n" +
		"  uptime is 1 week, 2 days\n"
	post := "GigabitEthernet1/0/1 is up\n" +
		"  5 minute input rate 2500 bits/sec\n" +
		"  uptime is 1 week, 3 days\n"

	result := d.Diff(pre, post)

	assert.Empty(t, result.Added)
	assert.Empty(t, result.Removed)
	assert.Empty(t, result.Modified)
	assert.Equal(t, 1, result.UnchangedCount)
}

func TestDiff_AddedAndRemovedEntities(t *testing.T) {
	d := newTestDiffer(t)

	pre := "GigabitEthernet1/0/1 is up\n"
	post := "GigabitEthernet1/0/1 is up\n" +
		"GigabitEthernet1/0/2 is down\n"

	result := d.Diff(pre, post)
	assert.Equal(t, []string{"GigabitEthernet1/0/2"}, result.Added)
	assert.Empty(t, result.Removed)
	assert.Equal(t, 1, result.UnchangedCount)

	reversed := d.Diff(post, pre)
	assert.Equal(t, []string{"GigabitEthernet1/0/2"}, reversed.Removed)
	assert.Empty(t, reversed.Added)
}

func TestDiff_HighConfidenceStateFlip(t *testing.T) {
	d := newTestDiffer(t)

	result := d.Diff("Vlan10 state is up\n", "Vlan10 state is down\n")

	require.Len(t, result.Modified, 1)
	entry := result.Modified[0]
	assert.Equal(t, "Vlan10", entry.Identity)
	assert.Equal(t, models.ConfidenceHigh, entry.Confidence)
	assert.NotEmpty(t, entry.Opcodes)
}

func TestDiff_LowConfidenceNearDuplicate(t *testing.T) {
	d := newTestDiffer(t)

	// the trailing queue digit is not claimed by any volatile pattern and
	// leaves the lines textually near-identical
	pre := "GigabitEthernet1/0/1 is up\n  Input queue: 0/75/3/0\n"
	post := "GigabitEthernet1/0/1 is up\n  Input queue: 0/75/4/0\n"

	result := d.Diff(pre, post)

	require.Len(t, result.Modified, 1)
	assert.Equal(t, models.ConfidenceLow, result.Modified[0].Confidence)
}

func TestDiff_DeterministicOrdering(t *testing.T) {
	d := newTestDiffer(t)

	pre := "Vlan30 state is up\nVlan40 state is up\n"
	post := "Vlan10 state is up\nVlan20 state is up\n"

	result := d.Diff(pre, post)

	// added follows first-appearance order in post, removed in pre
	assert.Equal(t, []string{"Vlan10", "Vlan20"}, result.Added)
	assert.Equal(t, []string{"Vlan30", "Vlan40"}, result.Removed)
}

func TestDiff_DuplicateIdentitiesGetSuffixes(t *testing.T) {
	d := newTestDiffer(t)

	pre := "Vlan10 state is up\n" +
		"  detail one\n" +
		"\n" +
		"Vlan10 state is up\n" +
		"  detail one\n"
	post := "Vlan10 state is up\n" +
		"  detail one\n"

	result := d.Diff(pre, post)

	// the second occurrence got the #2 suffix and only it reads as removed
	assert.Equal(t, []string{"Vlan10#2"}, result.Removed)
	assert.Empty(t, result.Added)
	assert.Equal(t, 1, result.UnchangedCount)
}

func TestDiff_ExtraVolatilePatternsSuppressCustomChurn(t *testing.T) {
	pre := "Chassis alarm panel\n  reading 42 units\n"
	post := "Chassis alarm panel\n  reading 57 units\n"

	plain := newTestDiffer(t)
	assert.Len(t, plain.Diff(pre, post).Modified, 1)

	tuned, err := NewStateDifferBuilder().
		WithConfig(Config{
			SimilarityThreshold:   DefaultSimilarityThreshold,
			ExtraVolatilePatterns: []string{`\breading \d+ units\b`},
		}).
		WithLogger(zerolog.Nop()).
		Build()
	require.NoError(t, err)

	result := tuned.Diff(pre, post)
	assert.Empty(t, result.Modified)
	assert.Equal(t, 1, result.UnchangedCount)
}

func TestStateDifferBuilder_RejectsBadThreshold(t *testing.T) {
	_, err := NewStateDifferBuilder().
		WithConfig(Config{SimilarityThreshold: 1.5}).
		Build()
	assert.Error(t, err)

	_, err = NewStateDifferBuilder().
		WithConfig(Config{SimilarityThreshold: 0}).
		Build()
	assert.Error(t, err)
}

func TestStateDifferBuilder_RejectsBadExtraPattern(t *testing.T) {
	_, err := NewStateDifferBuilder().
		WithConfig(Config{
			SimilarityThreshold:   DefaultSimilarityThreshold,
			ExtraVolatilePatterns: []string{`[broken`},
		}).
		Build()
	assert.Error(t, err)
}

func TestDiff_EmptySnapshots(t *testing.T) {
	d := newTestDiffer(t)

	result := d.Diff("", "")
	assert.False(t, result.HasChanges())
	assert.Equal(t, 0, result.UnchangedCount)

	grown := d.Diff("", "Vlan10 state is up\n")
	assert.Equal(t, []string{"Vlan10"}, grown.Added)
}
