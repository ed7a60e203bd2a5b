// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"strings"
	"time"
)

// hireDateLayouts are the timestamp shapes the directory service has
// been observed to emit, tried in order. RFC3339 is the documented
// format; the other two show up in older records.
var hireDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatHireDate renders a stored hire date as dd/MM/yyyy. Unparseable
// input renders as the empty string: hire dates are server-assigned
// and purely informational, so a malformed one must blank the cell
// rather than break the row.
func FormatHireDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range hireDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("02/01/2006")
		}
	}
	return ""
}

// FormatSalary renders a stored salary for display, substituting a
// comma for the decimal point ("5000.50" becomes "5000,50"). The
// stored value is already a canonical decimal string so no numeric
// parsing is needed here.
func FormatSalary(raw string) string {
	return strings.Replace(raw, ".", ",", 1)
}
