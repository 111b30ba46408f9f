package vocabulary

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tags.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	content := "id,category,post_count,aliases\n" +
		"1girl,0,5000000,\"1girls, sole_female\"\n" +
		"solo,0,4000000,\n" +
		"holo,4,20000,'holo the wise wolf, wisewolf'\n" +
		"some_artist,1,300,unquoted_alias\n" +
		"loose_tag,5,10,alias_a,alias_b\n"

	vocab, err := Load(writeDataset(t, content))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expected := Vocabulary{
		{ID: "1girl", Category: 0, PostCount: 5000000, Aliases: []string{"1girls", "sole_female"}},
		{ID: "solo", Category: 0, PostCount: 4000000, Aliases: nil},
		{ID: "holo", Category: 4, PostCount: 20000, Aliases: []string{"holo the wise wolf", "wisewolf"}},
		{ID: "some_artist", Category: 1, PostCount: 300, Aliases: []string{"unquoted_alias"}},
		// trailing fields past the third are rejoined, so unquoted alias
		// lists with embedded commas survive field splitting
		{ID: "loose_tag", Category: 5, PostCount: 10, Aliases: []string{"alias_a", "alias_b"}},
	}

	if !reflect.DeepEqual(vocab, expected) {
		t.Errorf("Load mismatch:\n got %#v\nwant %#v", vocab, expected)
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	content := "id,category,post_count,aliases\n" +
		"good_tag,0,100,\n" +
		"short_row,0\n" +
		"  ,0,50,\n" +
		"another_tag,5,20,\n"

	vocab, err := Load(writeDataset(t, content))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(vocab) != 2 {
		t.Fatalf("expected 2 records after skipping malformed rows, got %d", len(vocab))
	}
	if vocab[0].ID != "good_tag" || vocab[1].ID != "another_tag" {
		t.Errorf("unexpected records: %#v", vocab)
	}
}

func TestLoadValueErrors(t *testing.T) {
	testCases := []struct {
		row         string
		description string
	}{
		{"tag,notanumber,100,\n", "non-integer category"},
		{"tag,0,lots,\n", "non-integer post_count"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			_, err := Load(writeDataset(t, "id,category,post_count,aliases\n"+tc.row))
			if !errors.Is(err, ErrDatasetValue) {
				t.Errorf("expected ErrDatasetValue, got %v", err)
			}
		})
	}
}

func TestLoadIOError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, ErrDatasetIO) {
		t.Errorf("expected ErrDatasetIO, got %v", err)
	}
}

func TestLoadHeaderOnly(t *testing.T) {
	vocab, err := Load(writeDataset(t, "id,category,post_count,aliases\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(vocab) != 0 {
		t.Errorf("expected empty vocabulary, got %d records", len(vocab))
	}
}

func TestParseAliases(t *testing.T) {
	testCases := []struct {
		raw         string
		expected    []string
		description string
	}{
		{"", nil, "empty cell"},
		{"   ", nil, "whitespace only"},
		{`""`, nil, "empty quoted cell"},
		{"single", []string{"single"}, "single alias"},
		{`"a, b"`, []string{"a", "b"}, "double-quoted list"},
		{"'a, b'", []string{"a", "b"}, "single-quoted list"},
		{"a,,b", []string{"a", "b"}, "empty pieces dropped"},
		{" a , b ", []string{"a", "b"}, "pieces trimmed"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := parseAliases(tc.raw)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("parseAliases(%q) = %#v, want %#v", tc.raw, got, tc.expected)
			}
		})
	}
}
