package utils

import "strings"

// SplitTerms splits comma-separated tag text into trimmed, non-empty terms,
// preserving their order.
func SplitTerms(text string) []string {
	if text == "" {
		return nil
	}
	var terms []string
	for _, part := range strings.Split(text, ",") {
		if part = strings.TrimSpace(part); part != "" {
			terms = append(terms, part)
		}
	}
	return terms
}

// Unescape resolves the prompt escape sequences \( and \) to bare parens so
// escaped and raw spellings of a tag look identical to lookups.
func Unescape(s string) string {
	s = strings.ReplaceAll(s, `\(`, "(")
	return strings.ReplaceAll(s, `\)`, ")")
}

// NormalizeTerm lowercases a term and folds spaces to underscores, the form
// canonical dataset ids are stored in.
func NormalizeTerm(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "_")
}
