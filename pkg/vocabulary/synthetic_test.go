package vocabulary

import (
	"reflect"
	"strings"
	"testing"
)

func syntheticIDs(v Vocabulary) map[string]bool {
	ids := make(map[string]bool)
	for _, rec := range v {
		if rec.Category == CategorySynthetic {
			ids[strings.ToLower(rec.ID)] = true
		}
	}
	return ids
}

func TestInjectSyntheticsUpdatesExisting(t *testing.T) {
	vocab := Vocabulary{
		// existing spelling, count and aliases must survive the category change
		{ID: "Masterpiece", Category: 0, PostCount: 42, Aliases: []string{"mstr"}},
		{ID: "solo", Category: 0, PostCount: 100},
	}

	vocab = InjectSynthetics(vocab)

	if vocab[0].ID != "Masterpiece" {
		t.Errorf("id spelling changed: %q", vocab[0].ID)
	}
	if vocab[0].Category != CategorySynthetic {
		t.Errorf("category = %d, want %d", vocab[0].Category, CategorySynthetic)
	}
	if vocab[0].PostCount != 42 || !reflect.DeepEqual(vocab[0].Aliases, []string{"mstr"}) {
		t.Errorf("post count or aliases not preserved: %#v", vocab[0])
	}
	if vocab[1].Category != 0 {
		t.Errorf("unrelated record touched: %#v", vocab[1])
	}
}

func TestInjectSyntheticsAppendsMissing(t *testing.T) {
	vocab := InjectSynthetics(Vocabulary{{ID: "solo", Category: 0, PostCount: 100}})

	ids := syntheticIDs(vocab)
	for _, tag := range SyntheticTags {
		if !ids[strings.ToLower(tag)] {
			t.Errorf("synthetic tag %q missing after injection", tag)
		}
	}

	// appended records keep original spacing and start with zero posts
	var bestQuality *Record
	for i := range vocab {
		if vocab[i].ID == "best quality" {
			bestQuality = &vocab[i]
		}
	}
	if bestQuality == nil {
		t.Fatal("'best quality' not appended")
	}
	if bestQuality.Category != CategorySynthetic || bestQuality.PostCount != 0 || bestQuality.Aliases != nil {
		t.Errorf("unexpected appended record: %#v", bestQuality)
	}
}

func TestInjectSyntheticsIdempotent(t *testing.T) {
	vocab := Vocabulary{
		{ID: "1girl", Category: 0, PostCount: 5000000},
		{ID: "solo", Category: 0, PostCount: 100},
	}

	once := InjectSynthetics(vocab)
	onceLen := len(once)
	twice := InjectSynthetics(once)

	if len(twice) != onceLen {
		t.Errorf("second injection grew the vocabulary: %d -> %d", onceLen, len(twice))
	}
	if !reflect.DeepEqual(syntheticIDs(once), syntheticIDs(twice)) {
		t.Error("category-9 id set changed on second injection")
	}
}

func TestIsSynthetic(t *testing.T) {
	testCases := []struct {
		term        string
		expected    bool
		description string
	}{
		{"1girl", true, "count tag"},
		{"best quality", true, "spaced tag"},
		{"BEST QUALITY", true, "case-insensitive"},
		{"best_quality", false, "no underscore folding"},
		{"banana", false, "not synthetic"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			if got := IsSynthetic(tc.term); got != tc.expected {
				t.Errorf("IsSynthetic(%q) = %v, want %v", tc.term, got, tc.expected)
			}
		})
	}
}
