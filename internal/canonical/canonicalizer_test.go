package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdiff/opsdiff/internal/patterns"
)

func newTestCanonicalizer(t *testing.T) *Canonicalizer {
	t.Helper()
	return NewCanonicalizer(patterns.NewDefaultRepository())
}

func TestCanonicalizeLine_VolatileFields(t *testing.T) {
	c := newTestCanonicalizer(t)

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clock time",
			input:    "Last clearing of counters 12:34:56",
			expected: "Last clearing of counters <TIMESTAMP>",
		},
		{
			name:     "uptime list",
			input:    "uptime is 1 week, 2 days, 3 hours",
			expected: "uptime is <UPTIME>",
		},
		{
			name:     "compact uptime",
			input:    "uptime: 1w2d3h4m",
			expected: "uptime: <UPTIME>",
		},
		{
			name:     "rate",
			input:    "5 minute input rate 1000 bits/sec",
			expected: "<UPTIME> input rate <COUNTER>",
		},
		{
			name:     "counter with unit",
			input:    "8243 packets input, 520 bytes",
			expected: "<COUNTER> input, <COUNTER>",
		},
		{
			name:     "session id",
			input:    "Session ID: 48213",
			expected: "<ID>",
		},
		{
			name:     "large number",
			input:    "FastEthernet0/1 counter 123456789",
			expected: "FastEthernet0/1 counter <COUNTER>",
		},
		{
			name:     "stable text untouched",
			input:    "GigabitEthernet1/0/1 is up, line protocol is up",
			expected: "GigabitEthernet1/0/1 is up, line protocol is up",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.CanonicalizeLine(tc.input))
		})
	}
}

func TestCanonicalizeLine_Idempotent(t *testing.T) {
	c := newTestCanonicalizer(t)

	inputs := []string{
		"uptime is 1 week, 2 days",
		"5 minute input rate 1000 bits/sec",
		"Last updated 2024-03-14 08:15:00",
		"counter 987654321 restarts",
		"GigabitEthernet1/0/1 is up",
	}

	for _, input := range inputs {
		once := c.CanonicalizeLine(input)
		twice := c.CanonicalizeLine(once)
		assert.Equal(t, once, twice, "input: %q", input)
	}
}

func TestCanonicalizeLine_GroupOrderIsLoadBearing(t *testing.T) {
	c := newTestCanonicalizer(t)

	// the six digits after the colon belong to a sub-second timestamp,
	// not a generic counter; timestamps must consume them first
	got := c.CanonicalizeLine("captured at 08:15:23.123456")
	assert.Equal(t, "captured at <TIMESTAMP>", got)
}

func TestCanonicalizeLines_JoinsWithNewlines(t *testing.T) {
	c := newTestCanonicalizer(t)

	got := c.CanonicalizeLines([]string{
		"Vlan10 is up",
		"  uptime is 3 days",
	})
	assert.Equal(t, "Vlan10 is up\n  uptime is <UPTIME>", got)
}

func TestCanonicalize_WithCallerSuppliedPatterns(t *testing.T) {
	repo, err := patterns.NewDefaultRepository().WithExtraVolatilePatterns([]string{`\breading \d+ units\b`})
	require.NoError(t, err)

	c := NewCanonicalizer(repo)
	assert.Equal(t, "sensor <VOLATILE>", c.CanonicalizeLine("sensor reading 42 units"))
}
