// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import "testing"

func TestFormatHireDate(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2023-04-17T09:00:00Z", "17/04/2023"},
		{"2023-04-17T09:00:00", "17/04/2023"},
		{"2023-04-17", "17/04/2023"},
		{"not-a-date", ""},
		{"", ""},
		{"17/04/2023", ""}, // Already-formatted input is not a wire format.
	}

	for _, testCase := range cases {
		if got := FormatHireDate(testCase.input); got != testCase.want {
			t.Errorf("FormatHireDate(%q) = %q, want %q", testCase.input, got, testCase.want)
		}
	}
}

func TestFormatSalary(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"5000.50", "5000,50"},
		{"5000", "5000"},
		{"", ""},
	}

	for _, testCase := range cases {
		if got := FormatSalary(testCase.input); got != testCase.want {
			t.Errorf("FormatSalary(%q) = %q, want %q", testCase.input, got, testCase.want)
		}
	}
}
