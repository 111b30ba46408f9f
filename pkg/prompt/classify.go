package prompt

import (
	"strings"

	"github.com/maruchi/tagserve/internal/utils"
	"github.com/maruchi/tagserve/pkg/vocabulary"
)

// Classify labels each term of comma-separated prompt text for highlighting.
// The text is unescaped, stripped of raw "artist:" markers and rearranged by
// category priority first, so spans come out in canonical order. Each term
// yields one Span; consecutive terms are separated by a ", " span with
// LabelNone. The prefix the rearranger itself adds to artist terms stays in
// the displayed text but is ignored for matching.
//
// Matching precedence: synthetic tags match exactly with spaces preserved,
// then canonical ids after lowercase and underscore folding, then aliases;
// everything else is unknown. Classification never fails on arbitrary input.
func Classify(text string, idx *vocabulary.Index, notateArtists bool) []Span {
	if text == "" {
		return nil
	}

	cleaned := utils.Unescape(text)
	cleaned = strings.ReplaceAll(cleaned, artistPrefix, "")
	reordered := Rearrange(cleaned, idx.Categories, notateArtists)

	terms := utils.SplitTerms(reordered)
	if len(terms) == 0 {
		return nil
	}

	spans := make([]Span, 0, 2*len(terms)-1)
	for i, term := range terms {
		spans = append(spans, Span{Text: term, Label: labelTerm(term, idx)})
		if i < len(terms)-1 {
			spans = append(spans, Span{Text: ", ", Label: LabelNone})
		}
	}
	return spans
}

// labelTerm classifies a single term, ignoring any leading artist: prefix.
func labelTerm(term string, idx *vocabulary.Index) Label {
	if len(term) >= len(artistPrefix) && strings.EqualFold(term[:len(artistPrefix)], artistPrefix) {
		term = term[len(artistPrefix):]
	}
	if vocabulary.IsSynthetic(term) {
		return LabelTag
	}
	normalized := utils.NormalizeTerm(term)
	if _, ok := idx.Tags[normalized]; ok {
		return LabelTag
	}
	if _, ok := idx.Aliases[normalized]; ok {
		return LabelAlias
	}
	return LabelUnknown
}
