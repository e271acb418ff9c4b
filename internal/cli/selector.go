package cli

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lungarella-raffaele/marc/internal/model"
)

// resolveSelector maps a user-supplied selector to a record position.
// Tried in order: 1-based index, record-id prefix, then a unique
// case-insensitive content substring.
func resolveSelector(records []model.Record, sel string) (int, error) {
	if n, err := strconv.Atoi(sel); err == nil {
		if n < 1 || n > len(records) {
			return 0, errors.Errorf("index out of range: have %d, got %d", len(records), n)
		}
		return n - 1, nil
	}

	if idx, res := uniqueMatch(records, func(r model.Record) bool {
		return strings.HasPrefix(r.ID, sel)
	}); res != matchNone {
		if res == matchMany {
			return 0, errors.Errorf("selector %q matches more than one record id", sel)
		}
		return idx, nil
	}

	needle := strings.ToLower(sel)
	switch idx, res := uniqueMatch(records, func(r model.Record) bool {
		return strings.Contains(strings.ToLower(r.Content), needle)
	}); res {
	case matchOne:
		return idx, nil
	case matchMany:
		return 0, errors.Errorf("selector %q is ambiguous", sel)
	}

	return 0, errors.Errorf("no record matches %q", sel)
}

type matchResult int

const (
	matchNone matchResult = iota
	matchOne
	matchMany
)

func uniqueMatch(records []model.Record, pred func(model.Record) bool) (int, matchResult) {
	found := -1
	for i, r := range records {
		if !pred(r) {
			continue
		}
		if found >= 0 {
			return 0, matchMany
		}
		found = i
	}
	if found < 0 {
		return 0, matchNone
	}
	return found, matchOne
}
