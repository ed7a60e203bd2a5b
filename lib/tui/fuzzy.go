// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	// The fzf algo package requires scheme initialization before any
	// matching; without it every match reports failure.
	algo.Init("default")
}

// FuzzyResult holds the outcome of matching a pattern against a
// candidate string.
type FuzzyResult struct {
	// Matched reports whether every pattern rune was found in order.
	Matched bool

	// Score ranks match quality. Higher is better. Zero when not
	// matched.
	Score int

	// Positions are the rune indices of the matched characters in the
	// candidate, for highlighting. Sorted ascending.
	Positions []int
}

// NewSlab allocates a scratch buffer for fuzzy matching. A slab is
// reused across FuzzyMatch calls to avoid per-match allocations; it is
// not safe for concurrent use, so each matching goroutine needs its
// own.
func NewSlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// FuzzyMatch matches pattern against text using fzf's V2 algorithm
// (case-insensitive, with position tracking). The pattern should be
// lowercased by the caller; candidate text is normalized internally.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{Matched: true}
	}

	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{
		Matched: true,
		Score:   result.Score,
	}
	if positions != nil {
		matched.Positions = make([]int, len(*positions))
		copy(matched.Positions, *positions)
		// fzf reports positions in reverse order.
		for left, right := 0, len(matched.Positions)-1; left < right; left, right = left+1, right-1 {
			matched.Positions[left], matched.Positions[right] = matched.Positions[right], matched.Positions[left]
		}
	}
	return matched
}
