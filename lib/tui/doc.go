// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal UI primitives for staffdesk:
// the color theme, overlay splicing for modal rendering, a keyboard
// dropdown menu, a confirmation modal, and fuzzy match highlighting.
//
// The package is domain-agnostic. Domain-specific rendering (employee
// rows, the entry form) lives in lib/rosterui and composes these
// primitives.
package tui
