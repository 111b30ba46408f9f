package vocabulary

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index holds the lookup structures derived from a Vocabulary: the set of
// normalized canonical ids, the alias resolution map, the per-id category
// map, and a prefix trie for completion. It is built once per vocabulary and
// never mutated afterwards, so concurrent readers need no locking.
type Index struct {
	Tags       map[string]struct{} // normalized canonical ids
	Aliases    map[string]string   // normalized alias -> normalized id
	Categories map[string]int      // normalized id -> category code
	trie       *patricia.Trie      // normalized id -> post count
}

// Suggestion is one completion candidate for a tag prefix.
type Suggestion struct {
	Tag       string
	PostCount int
}

// BuildIndex derives the lookup index from a vocabulary. If two records
// declare the same alias case-insensitively, the later record wins; that is
// a known simplification of the dataset's semantics, not an error.
func BuildIndex(v Vocabulary) *Index {
	idx := &Index{
		Tags:       make(map[string]struct{}, len(v)),
		Aliases:    make(map[string]string),
		Categories: make(map[string]int, len(v)),
		trie:       patricia.NewTrie(),
	}
	for _, rec := range v {
		id := strings.ToLower(rec.ID)
		idx.Tags[id] = struct{}{}
		idx.Categories[id] = rec.Category
		idx.trie.Set(patricia.Prefix(id), rec.PostCount)
		for _, alias := range rec.Aliases {
			idx.Aliases[strings.ToLower(alias)] = id
		}
	}
	log.Debugf("Index built: %d tags, %d aliases", len(idx.Tags), len(idx.Aliases))
	return idx
}

// Complete returns up to limit canonical tags starting with prefix, most
// posted first. The prefix is normalized like any lookup, so callers may
// pass spaces or mixed case.
func (ix *Index) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" || limit < 1 {
		return nil
	}
	normalized := strings.ReplaceAll(strings.ToLower(prefix), " ", "_")

	var matches []Suggestion
	_ = ix.trie.VisitSubtree(patricia.Prefix(normalized), func(p patricia.Prefix, item patricia.Item) error {
		count, _ := item.(int)
		matches = append(matches, Suggestion{Tag: string(p), PostCount: count})
		return nil
	})

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].PostCount > matches[j].PostCount
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
