package analysis

import "regexp"

// Deterministic fallback patterns scanned over the source document when the
// model reply cannot be parsed. The party pattern assumes English
// "between X and Y" phrasing; documents without it get placeholder names.
var (
	patternParties     = regexp.MustCompile(`(?i)between\s+([^,\n]+)\s+and\s+([^,\n]+)`)
	patternDates       = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b\w+\s+\d{1,2},?\s+\d{4}\b`)
	patternMonetary    = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)
	patternTermination = regexp.MustCompile(`(?i)terminat\w*|expir\w*|end\s+of\s+agreement`)
)
