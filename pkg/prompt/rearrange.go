package prompt

import (
	"strings"

	"github.com/maruchi/tagserve/internal/utils"
	"github.com/maruchi/tagserve/pkg/vocabulary"
)

// artistPrefix is the cosmetic annotation added to artist terms on output.
// It never takes part in category or tag matching.
const artistPrefix = "artist:"

// priorityOrder is the fixed bucket order for rearranged output: synthetic
// tags, characters, artists, general tags, meta tags, then the catch-all
// bucket for everything uncategorized.
var priorityOrder = [...]int{
	vocabulary.CategorySynthetic,
	vocabulary.CategoryCharacter,
	vocabulary.CategoryArtist,
	vocabulary.CategoryGeneral,
	vocabulary.CategoryMeta,
	vocabulary.CategoryNone,
}

// Rearrange reorders comma-separated prompt text by category priority.
// Terms keep their relative order inside a bucket; empty terms are dropped.
// Category lookup is case-insensitive, resolves the \( and \) escapes first
// and retries with spaces folded to underscores. Terms with no category land
// in the catch-all bucket rather than being dropped, so rearranging never
// loses text. With notateArtists set, artist terms gain an "artist:" prefix
// after bucketing.
func Rearrange(text string, categories map[string]int, notateArtists bool) string {
	if text == "" {
		return ""
	}
	terms := utils.SplitTerms(text)
	if len(terms) == 0 {
		return ""
	}

	buckets := make(map[int][]string, len(priorityOrder))
	for _, term := range terms {
		cat := lookupCategory(term, categories)
		buckets[cat] = append(buckets[cat], term)
	}

	var parts []string
	for _, cat := range priorityOrder {
		group := buckets[cat]
		if len(group) == 0 {
			continue
		}
		if cat == vocabulary.CategoryArtist && notateArtists {
			for i, term := range group {
				group[i] = artistPrefix + term
			}
		}
		parts = append(parts, strings.Join(group, ", "))
	}
	return strings.Join(parts, ", ")
}

// lookupCategory resolves a term's bucket, trying the unescaped lowercase
// form as-is and then with spaces folded to underscores. Category codes
// outside the priority set collapse into the catch-all bucket.
func lookupCategory(term string, categories map[string]int) int {
	cleaned := utils.Unescape(strings.ToLower(term))
	cat, ok := categories[cleaned]
	if !ok {
		cat, ok = categories[strings.ReplaceAll(cleaned, " ", "_")]
	}
	if !ok || !inPriorityOrder(cat) {
		return vocabulary.CategoryNone
	}
	return cat
}

func inPriorityOrder(cat int) bool {
	for _, p := range priorityOrder {
		if cat == p {
			return true
		}
	}
	return false
}
