package models

import (
	"fmt"
	"slices"
	"strings"
)

// normalizeSet removes duplicates and sorts by string form so that records
// holding the same set compare and serialize identically.
func normalizeSet[T fmt.Stringer](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	out := slices.Clone(in)
	slices.SortFunc(out, func(a, b T) int { return strings.Compare(a.String(), b.String()) })
	return slices.CompactFunc(out, func(a, b T) bool { return a.String() == b.String() })
}

func setsEqual[T fmt.Stringer](a, b []T) bool {
	return slices.EqualFunc(a, b, func(x, y T) bool { return x.String() == y.String() })
}

func joinSet[T fmt.Stringer](in []T) string {
	parts := make([]string, len(in))
	for i, v := range in {
		parts[i] = "[" + v.String() + "]"
	}
	return strings.Join(parts, "")
}
