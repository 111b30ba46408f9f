package vocabulary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Dataset error taxonomy. IO and value errors abort the load; format errors
// (too few fields, empty id) only drop the offending row, see Load.
var (
	ErrDatasetIO     = errors.New("dataset unreadable")
	ErrDatasetFormat = errors.New("malformed dataset row")
	ErrDatasetValue  = errors.New("invalid dataset field")
)

// Load reads a tag dataset CSV into a Vocabulary.
//
// Expected columns are id, category, post_count, aliases. The header row is
// discarded unconditionally. Any fields past the third are rejoined with
// commas so alias text that field splitting pulled apart is not lost. Rows
// with fewer than four fields or an empty trimmed id are dropped with a
// warning instead of failing the whole load; a category or post_count that
// does not parse as an integer aborts with ErrDatasetValue since those
// fields are required for categorization.
func Load(path string) (Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetIO, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return Vocabulary{}, nil
		}
		return nil, fmt.Errorf("%w: reading header: %v", ErrDatasetIO, err)
	}

	var vocab Vocabulary
	skipped := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrDatasetIO, line, err)
		}
		if len(row) < 4 {
			log.Warnf("Skipping line %d: %v: %d fields, want at least 4", line, ErrDatasetFormat, len(row))
			skipped++
			continue
		}
		id := strings.TrimSpace(row[0])
		if id == "" {
			log.Warnf("Skipping line %d: %v: empty id", line, ErrDatasetFormat)
			skipped++
			continue
		}
		category, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: category %q", ErrDatasetValue, line, row[1])
		}
		postCount, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: post_count %q", ErrDatasetValue, line, row[2])
		}
		vocab = append(vocab, Record{
			ID:        id,
			Category:  category,
			PostCount: postCount,
			Aliases:   parseAliases(strings.Join(row[3:], ",")),
		})
	}

	if skipped > 0 {
		log.Warnf("Dropped %d malformed rows while loading %s", skipped, path)
	}
	log.Debugf("Loaded %d tag records from %s", len(vocab), path)
	return vocab, nil
}

// parseAliases splits the raw aliases cell into an ordered list. One layer
// of surrounding single or double quotes is stripped first; an empty or
// all-whitespace cell means no aliases.
func parseAliases(raw string) []string {
	raw = trimQuotes(strings.TrimSpace(raw))
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var aliases []string
	for _, piece := range strings.Split(raw, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			aliases = append(aliases, piece)
		}
	}
	return aliases
}

func trimQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
