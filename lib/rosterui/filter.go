// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"strings"

	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/staffdesk/lib/roster"
	"github.com/bureau-foundation/staffdesk/lib/tui"
)

// FilterModel holds the employee list filter state: the query the
// user is typing and whether the filter input is active.
type FilterModel struct {
	// Query is the current filter text.
	Query string

	// Active is true while keystrokes are routed to the filter input.
	Active bool

	slab *util.Slab
}

// NewFilterModel returns an inactive, empty filter.
func NewFilterModel() FilterModel {
	return FilterModel{slab: tui.NewSlab()}
}

// Append adds typed characters to the query.
func (filter *FilterModel) Append(text string) {
	filter.Query += text
}

// Backspace removes the last rune of the query.
func (filter *FilterModel) Backspace() {
	runes := []rune(filter.Query)
	if len(runes) > 0 {
		filter.Query = string(runes[:len(runes)-1])
	}
}

// Clear wipes the query and deactivates the input.
func (filter *FilterModel) Clear() {
	filter.Query = ""
	filter.Active = false
}

// FilterMatch pairs an employee with the fuzzy match positions in its
// name, for highlight rendering. Positions are rune indices; nil when
// the match came from a non-name field.
type FilterMatch struct {
	Employee  roster.Employee
	Positions []int
}

// Apply filters a snapshot of the collection. An employee passes when
// the query fuzzy-matches its name, or substring-matches (case-
// insensitive) its email, position, or department name. An empty query
// passes everything with no highlighting. Relative order is preserved:
// the list is a roster, not a search ranking, so match score is used
// only for highlight positions.
func (filter *FilterModel) Apply(employees []roster.Employee) []FilterMatch {
	matches := make([]FilterMatch, 0, len(employees))
	if filter.Query == "" {
		for _, employee := range employees {
			matches = append(matches, FilterMatch{Employee: employee})
		}
		return matches
	}

	pattern := []rune(strings.ToLower(filter.Query))
	lowered := strings.ToLower(filter.Query)

	for _, employee := range employees {
		if result := tui.FuzzyMatch(employee.Name, pattern, filter.slab); result.Matched {
			matches = append(matches, FilterMatch{
				Employee:  employee,
				Positions: result.Positions,
			})
			continue
		}
		if strings.Contains(strings.ToLower(employee.Email), lowered) ||
			strings.Contains(strings.ToLower(employee.Position), lowered) ||
			strings.Contains(strings.ToLower(employee.DepartmentName), lowered) {
			matches = append(matches, FilterMatch{Employee: employee})
		}
	}
	return matches
}
