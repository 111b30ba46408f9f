// Package prompt is the core, implementing category-priority rearranging and
// tag/alias classification of comma-separated prompt text.
package prompt

import "github.com/maruchi/tagserve/pkg/vocabulary"

// Label classifies a rendered span.
type Label string

const (
	LabelTag     Label = "tag"
	LabelAlias   Label = "alias"
	LabelUnknown Label = "unknown"
	// LabelNone marks separator spans between terms.
	LabelNone Label = ""
)

// Span is one piece of classified output: a term with its label, or a ", "
// separator carrying LabelNone.
type Span struct {
	Text  string
	Label Label
}

// Engine runs rearranging and classification against one immutable
// vocabulary index snapshot. Its methods are pure functions of their text
// input and are safe to call concurrently.
type Engine struct {
	idx           *vocabulary.Index
	notateArtists bool
}

// NewEngine creates an engine over a built index. With notateArtists set,
// rearranged artist terms are rendered with an "artist:" prefix.
func NewEngine(idx *vocabulary.Index, notateArtists bool) *Engine {
	return &Engine{idx: idx, notateArtists: notateArtists}
}

// Rearrange reorders prompt text by category priority.
func (e *Engine) Rearrange(text string) string {
	return Rearrange(text, e.idx.Categories, e.notateArtists)
}

// Classify labels every term of the prompt text for highlighting.
func (e *Engine) Classify(text string) []Span {
	return Classify(text, e.idx, e.notateArtists)
}

// Complete suggests canonical tags for a prefix, most posted first.
func (e *Engine) Complete(prefix string, limit int) []vocabulary.Suggestion {
	return e.idx.Complete(prefix, limit)
}
