package vocabulary

import (
	"strings"

	"github.com/charmbracelet/log"
)

// SyntheticTags are forced into CategorySynthetic regardless of what the
// dataset says, so subject-count and quality terms always sort first when a
// prompt is rearranged. Casing and spacing are preserved verbatim; matching
// against them is case-insensitive and never folds spaces to underscores.
var SyntheticTags = []string{
	// count tags
	"1girl", "2girls", "3girls", "4girls", "5girls", "6girls", "7girls", "8girls", "9girls",
	"1boy", "2boys", "3boys", "4boys", "5boys", "6boys", "7boys", "8boys", "9boys",
	"1other", "2others", "3others", "4others", "5others", "6others", "7others", "8others", "9others",
	// quality and age tags
	"masterpiece", "best quality", "good quality", "normal quality", "worst quality",
	"absurdres", "highres", "mediumres", "lowres", "old", "early", "mid", "recent", "newest",
	"very awa", "worst aesthetic",
	// extended resolution ladder
	"ultrahighres", "superres", "extremeres", "megares", "gigares",
	"ultrares", "superhighres", "extremehighres", "megahighres", "gigahighres",
}

var syntheticSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(SyntheticTags))
	for _, t := range SyntheticTags {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}()

// IsSynthetic reports whether term is a synthetic tag, compared
// case-insensitively with spaces kept as-is.
func IsSynthetic(term string) bool {
	_, ok := syntheticSet[strings.ToLower(term)]
	return ok
}

// InjectSynthetics overlays SyntheticTags onto the vocabulary: records that
// already exist keep their spelling, post count and aliases but move to
// CategorySynthetic, missing tags are appended as new records with a zero
// post count. Applying it twice yields the same category-9 id set as
// applying it once.
func InjectSynthetics(v Vocabulary) Vocabulary {
	return InjectTags(v, SyntheticTags)
}

// InjectTags is InjectSynthetics with a caller-supplied tag list.
func InjectTags(v Vocabulary, tags []string) Vocabulary {
	existing := make(map[string]int, len(v))
	for i, rec := range v {
		existing[strings.ToLower(rec.ID)] = i
	}

	updated, added := 0, 0
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if i, ok := existing[lower]; ok {
			if v[i].Category != CategorySynthetic {
				log.Debugf("Updating existing tag %q to category %d", v[i].ID, CategorySynthetic)
				v[i].Category = CategorySynthetic
				updated++
			}
			continue
		}
		v = append(v, Record{ID: tag, Category: CategorySynthetic})
		existing[lower] = len(v) - 1
		log.Debugf("Adding synthetic tag %q", tag)
		added++
	}

	log.Debugf("Synthetic injection done: %d updated, %d added", updated, added)
	return v
}
