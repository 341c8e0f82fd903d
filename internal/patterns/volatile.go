package patterns

import "regexp"

// Placeholder tokens substituted for volatile spans during canonicalization.
// None of them contains a digit, and every volatile pattern requires at
// least one digit, which is what makes canonicalization idempotent.
const (
	PlaceholderTimestamp = "<TIMESTAMP>"
	PlaceholderUptime    = "<UPTIME>"
	PlaceholderCounter   = "<COUNTER>"
	PlaceholderID        = "<ID>"
	PlaceholderVolatile  = "<VOLATILE>"
)

// VolatileGroup is one ordered group of volatile-field patterns sharing a
// single placeholder. Groups are applied in slice order during
// canonicalization; that order is load-bearing (generic large numbers must
// run last or they consume digits belonging to timestamps and rates).
type VolatileGroup struct {
	Name        string
	Placeholder string
	Patterns    []*regexp.Regexp
}

func defaultVolatileGroups() []VolatileGroup {
	return []VolatileGroup{
		{
			Name:        "timestamps",
			Placeholder: PlaceholderTimestamp,
			Patterns: []*regexp.Regexp{
				// wall-clock times, optionally with sub-second precision
				regexp.MustCompile(`\b\d{1,2}:\d{2}:\d{2}(?:\.\d{1,6})?\b`),
				// ISO dates
				regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
				// US-style dates; the year must be four digits so interface
				// paths like 1/0/1 are left alone
				regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`),
				// syslog-style "Mar 14 2024" / "Mar 14"
				regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+\d{1,2}(?:\s+\d{4})?\b`),
			},
		},
		{
			Name:        "uptimes",
			Placeholder: PlaceholderUptime,
			Patterns: []*regexp.Regexp{
				// "1 week, 2 days, 3 hours"
				regexp.MustCompile(`(?i)\b\d+\s+(?:years?|weeks?|days?|hours?|minutes?|seconds?)(?:,\s*\d+\s+(?:years?|weeks?|days?|hours?|minutes?|seconds?))*\b`),
				// compact RouterOS form "1w2d3h4m5s"
				regexp.MustCompile(`\b\d+[wdhms](?:\d+[wdhms])+\b`),
			},
		},
		{
			Name:        "counters_and_rates",
			Placeholder: PlaceholderCounter,
			Patterns: []*regexp.Regexp{
				// rates: "1000 bits/sec", "12 packets/sec"
				regexp.MustCompile(`(?i)\b\d+\s*(?:bits|bytes|packets|frames|kbits|mbits|cells)/sec\b`),
				// counters with a unit word: "8243 packets input", "0 runts"
				regexp.MustCompile(`(?i)\b\d+\s+(?:packets?|bytes?|bits|frames?|errors?|drops?|collisions?|runts?|giants?|throttles?|overruns?|underruns?|ignored|aborts?|resets?|flushes|messages?|restarts?)\b`),
				// utilization percentages
				regexp.MustCompile(`\b\d+(?:\.\d+)?%`),
			},
		},
		{
			Name:        "ids_and_sequence_numbers",
			Placeholder: PlaceholderID,
			Patterns: []*regexp.Regexp{
				// a separator is required between keyword and digits so
				// interface names like Serial0/0/0 stay intact
				regexp.MustCompile(`(?i)\b(?:session|seq(?:uence)?|serial|process|pid|txn|transaction|invocation)\s*(?:id|number|no\.?)?(?:\s+|\s*[:#=]\s*)\d+\b`),
				regexp.MustCompile(`(?i)\bid\s*[:#=]\s*\d+\b`),
			},
		},
		{
			Name:        "generic_large_numbers",
			Placeholder: PlaceholderCounter,
			Patterns: []*regexp.Regexp{
				// anything six digits or longer is assumed to be a counter
				regexp.MustCompile(`\b\d{6,}\b`),
			},
		},
	}
}
