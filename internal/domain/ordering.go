package domain

import (
	"fmt"
	"sort"

	apperr "coursecraft/pkg/errors"
)

// OrderItem requested position of one session
type OrderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// SequenceFromItems session ids sorted by requested order; ties keep input order
func SequenceFromItems(items []OrderItem) []string {
	sorted := make([]OrderItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	ids := make([]string, len(sorted))
	for i, it := range sorted {
		ids[i] = it.ID
	}
	return ids
}

// ValidatePermutation checks that seq is a permutation of current
func ValidatePermutation(seq, current []string) error {
	const op = "domain.ValidatePermutation"

	if len(seq) != len(current) {
		return apperr.Validation(op, "sessions",
			fmt.Sprintf("expected %d sessions, got %d", len(current), len(seq)))
	}
	known := make(map[string]struct{}, len(current))
	for _, id := range current {
		known[id] = struct{}{}
	}
	seen := make(map[string]struct{}, len(seq))
	for _, id := range seq {
		if _, ok := known[id]; !ok {
			return apperr.Validation(op, "sessions", fmt.Sprintf("session %q does not belong to the discipline", id))
		}
		if _, dup := seen[id]; dup {
			return apperr.Validation(op, "sessions", fmt.Sprintf("session %q listed more than once", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

// IsContiguous reports whether orders is exactly {1..N}
func IsContiguous(orders []int) bool {
	seen := make([]bool, len(orders)+1)
	for _, o := range orders {
		if o < 1 || o > len(orders) || seen[o] {
			return false
		}
		seen[o] = true
	}
	return true
}
