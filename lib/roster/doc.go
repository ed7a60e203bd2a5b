// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package roster provides the employee directory domain types and the
// gateway implementations that back the staffdesk TUI.
//
// The package contains no UI logic and no authoritative state: the
// remote service owns persistence and validation, and [Client] is a
// thin typed REST client over it. [FixtureGateway] implements the same
// operations against an in-memory snapshot loaded from a JSONC file,
// for offline demos and tests.
//
// All client-side validation elsewhere in staffdesk is advisory; the
// service's responses are the source of truth for stored records.
package roster
