// Package tags is the derived tag view over the record list. Tags are
// plain labels on records; the vocabulary is a small sorted set kept
// next to them so names can exist before (or survive after) use.
package tags

import (
	"sort"

	"github.com/lungarella-raffaele/marc/internal/model"
)

// Count pairs a tag name with the number of records carrying it.
type Count struct {
	Name string
	N    int
}

// InUse returns the distinct tag values attached to records, sorted by
// name, each with its record count.
func InUse(records []model.Record) []Count {
	byName := make(map[string]int)
	for _, r := range records {
		if r.Tag != "" {
			byName[r.Tag]++
		}
	}
	out := make([]Count, 0, len(byName))
	for name, n := range byName {
		out = append(out, Count{Name: name, N: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// View merges the vocabulary with the tags in use: every known name
// appears once, with its live record count (zero for unused entries).
func View(vocab []string, records []model.Record) []Count {
	byName := make(map[string]int, len(vocab))
	for _, name := range vocab {
		byName[name] = 0
	}
	for _, r := range records {
		if r.Tag != "" {
			byName[r.Tag]++
		}
	}
	out := make([]Count, 0, len(byName))
	for name, n := range byName {
		out = append(out, Count{Name: name, N: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Merge inserts name into the vocabulary, keeping it sorted and
// deduplicated. Empty names are ignored.
func Merge(vocab []string, name string) []string {
	if name == "" {
		return vocab
	}
	i := sort.SearchStrings(vocab, name)
	if i < len(vocab) && vocab[i] == name {
		return vocab
	}
	vocab = append(vocab, "")
	copy(vocab[i+1:], vocab[i:])
	vocab[i] = name
	return vocab
}

// Prune drops vocabulary entries with zero attached records. Returns
// the kept vocabulary and the removed names, both sorted.
func Prune(vocab []string, records []model.Record) (kept, removed []string) {
	inUse := make(map[string]bool)
	for _, r := range records {
		if r.Tag != "" {
			inUse[r.Tag] = true
		}
	}
	for _, name := range vocab {
		if inUse[name] {
			kept = append(kept, name)
		} else {
			removed = append(removed, name)
		}
	}
	return kept, removed
}
