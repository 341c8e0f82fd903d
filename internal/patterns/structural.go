package patterns

import "regexp"

// defaultIgnoreLinePatterns matches pure noise lines (banners, pagination
// prompts, configuration preambles). Matching lines are dropped before
// segmentation and never reach any block or diff output.
func defaultIgnoreLinePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(?i)^building configuration`),
		regexp.MustCompile(`(?i)^current configuration\s*:?`),
		regexp.MustCompile(`(?i)^\s*-+\s*\(?more\)?\s*-+\s*$`),
		regexp.MustCompile(`(?i)^press (?:any key|return|enter) to continue`),
		regexp.MustCompile(`(?i)^load for five secs`),
		// banner decoration rows; dashes and equals are reserved for tables
		regexp.MustCompile(`^\s*[*#!~]{3,}\s*$`),
	}
}

// defaultTableMarkerPatterns matches separator rows of repeated dashes or
// equals signs, the signal the segmenter uses to fuse tabular output into
// a single block.
func defaultTableMarkerPatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`^[ \t]*[-=+]{2,}(?:[ \t]+[-=+]{2,})*[ \t]*$`),
	}
}
