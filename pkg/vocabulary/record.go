// Package vocabulary loads the tag dataset and derives the read-only lookup
// structures that classification and rearranging run against.
package vocabulary

// Category codes as used by the dataset, plus the two codes the pipeline
// itself assigns: CategorySynthetic for injected tags and CategoryNone as
// the catch-all sentinel for anything uncategorized.
const (
	CategoryGeneral   = 0
	CategoryArtist    = 1
	CategoryCharacter = 4
	CategoryMeta      = 5
	CategorySynthetic = 9
	CategoryNone      = -1
)

// Record is one canonical tag entry from the dataset.
type Record struct {
	ID        string
	Category  int
	PostCount int
	Aliases   []string
}

// Vocabulary is an ordered collection of tag records. Dataset row order is
// preserved. It is mutated at most once, by InjectSynthetics, and must be
// treated as read-only afterwards.
type Vocabulary []Record
