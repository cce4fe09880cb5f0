package bridge

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Shape predicates and the shape-pattern mini-language, for use in deal
// acceptance functions.

// Balanced reports whether the shape has no singleton or void and at most
// one doubleton: 4-3-3-3, 4-4-3-2 or 5-3-3-2 in some order.
func Balanced(shape [4]int) bool {
	switch sortedShape(shape) {
	case [4]int{4, 3, 3, 3}, [4]int{4, 4, 3, 2}, [4]int{5, 3, 3, 2}:
		return true
	}
	return false
}

// SemiBalanced reports whether the shape is balanced or one of the
// semi-balanced patterns 5-4-2-2 and 6-3-2-2.
func SemiBalanced(shape [4]int) bool {
	if Balanced(shape) {
		return true
	}
	switch sortedShape(shape) {
	case [4]int{5, 4, 2, 2}, [4]int{6, 3, 2, 2}:
		return true
	}
	return false
}

// HasShortage reports whether the shape contains a singleton or void.
func HasShortage(shape [4]int) bool {
	for _, n := range shape {
		if n <= 1 {
			return true
		}
	}
	return false
}

func sortedShape(shape [4]int) [4]int {
	s := shape[:]
	sort.Sort(sort.Reverse(sort.IntSlice(s)))
	return shape
}

// AllowedShapes expands a shape pattern into the ordered list of shapes it
// permits. The pattern is a "/"-separated list of groups covering the four
// suits in order; a group of "-"-joined lengths may land on its suits in
// any order, while a single length is fixed. "5/4-3-1" allows any hand
// with five spades and 4-3-1 in some order in the other suits;
// "/4-3//5-1/" permutes 4-3 over the majors and 5-1 over the minors.
func AllowedShapes(pattern string) ([][4]int, error) {
	var groups [][][]int
	suits, total := 0, 0
	for _, group := range strings.Split(pattern, "/") {
		if group == "" {
			continue
		}
		var lengths []int
		for _, part := range strings.Split(group, "-") {
			n, err := strconv.Atoi(part)
			if err != nil || n < 0 || n > 13 {
				return nil, fmt.Errorf("invalid shape pattern %q: bad suit length %q", pattern, part)
			}
			lengths = append(lengths, n)
			total += n
		}
		suits += len(lengths)
		groups = append(groups, permutations(lengths))
	}
	if suits != 4 {
		return nil, fmt.Errorf("invalid shape pattern %q: covers %d suits, want 4", pattern, suits)
	}
	if total != 13 {
		return nil, fmt.Errorf("invalid shape pattern %q: suit lengths sum to %d, want 13", pattern, total)
	}

	// Cartesian product of the group permutations, earlier groups varying
	// slowest.
	shapes := [][]int{nil}
	for _, perms := range groups {
		var next [][]int
		for _, prefix := range shapes {
			for _, perm := range perms {
				shape := make([]int, 0, 4)
				shape = append(shape, prefix...)
				shape = append(shape, perm...)
				next = append(next, shape)
			}
		}
		shapes = next
	}

	seen := make(map[[4]int]bool, len(shapes))
	out := make([][4]int, 0, len(shapes))
	for _, s := range shapes {
		var shape [4]int
		copy(shape[:], s)
		if !seen[shape] {
			seen[shape] = true
			out = append(out, shape)
		}
	}
	return out, nil
}

// permutations returns all orderings of vals, first element varying
// slowest, duplicates included.
func permutations(vals []int) [][]int {
	if len(vals) <= 1 {
		return [][]int{append([]int(nil), vals...)}
	}
	var out [][]int
	for i, v := range vals {
		rest := make([]int, 0, len(vals)-1)
		rest = append(rest, vals[:i]...)
		rest = append(rest, vals[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]int{v}, p...))
		}
	}
	return out
}
