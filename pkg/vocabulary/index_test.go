package vocabulary

import (
	"reflect"
	"testing"
)

func TestBuildIndex(t *testing.T) {
	vocab := Vocabulary{
		{ID: "1girl", Category: 9, PostCount: 5000000, Aliases: []string{"1girls", "Sole_Female"}},
		{ID: "Holo", Category: 4, PostCount: 20000, Aliases: []string{"wisewolf"}},
		{ID: "solo", Category: 0, PostCount: 4000000},
	}

	idx := BuildIndex(vocab)

	for _, id := range []string{"1girl", "holo", "solo"} {
		if _, ok := idx.Tags[id]; !ok {
			t.Errorf("tag %q missing from index", id)
		}
	}
	if _, ok := idx.Tags["Holo"]; ok {
		t.Error("ids must be normalized to lowercase")
	}

	expectedAliases := map[string]string{
		"1girls":      "1girl",
		"sole_female": "1girl",
		"wisewolf":    "holo",
	}
	if !reflect.DeepEqual(idx.Aliases, expectedAliases) {
		t.Errorf("aliases = %#v, want %#v", idx.Aliases, expectedAliases)
	}

	expectedCategories := map[string]int{"1girl": 9, "holo": 4, "solo": 0}
	if !reflect.DeepEqual(idx.Categories, expectedCategories) {
		t.Errorf("categories = %#v, want %#v", idx.Categories, expectedCategories)
	}
}

func TestBuildIndexAliasCollision(t *testing.T) {
	// same alias declared by two records: last declaration wins
	vocab := Vocabulary{
		{ID: "first", Category: 0, PostCount: 10, Aliases: []string{"shared"}},
		{ID: "second", Category: 0, PostCount: 20, Aliases: []string{"SHARED"}},
	}

	idx := BuildIndex(vocab)
	if got := idx.Aliases["shared"]; got != "second" {
		t.Errorf("alias collision resolved to %q, want %q", got, "second")
	}
}

func TestComplete(t *testing.T) {
	vocab := Vocabulary{
		{ID: "long_hair", Category: 0, PostCount: 3000000},
		{ID: "long_sleeves", Category: 0, PostCount: 1500000},
		{ID: "long_coat", Category: 0, PostCount: 200000},
		{ID: "looking_at_viewer", Category: 0, PostCount: 4000000},
	}
	idx := BuildIndex(vocab)

	testCases := []struct {
		prefix      string
		limit       int
		expected    []string
		description string
	}{
		{"long", 10, []string{"long_hair", "long_sleeves", "long_coat"}, "ranked by post count"},
		{"long", 2, []string{"long_hair", "long_sleeves"}, "limit applied"},
		{"LONG S", 10, []string{"long_sleeves"}, "case and space folding"},
		{"zzz", 10, nil, "no matches"},
		{"", 10, nil, "empty prefix"},
		{"long", 0, nil, "zero limit"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := idx.Complete(tc.prefix, tc.limit)
			var tags []string
			for _, s := range got {
				tags = append(tags, s.Tag)
			}
			if !reflect.DeepEqual(tags, tc.expected) {
				t.Errorf("Complete(%q, %d) = %v, want %v", tc.prefix, tc.limit, tags, tc.expected)
			}
		})
	}
}
