// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package rosterui implements the staffdesk terminal interface for
// managing employee records: a split-pane bubbletea application with
// the employee list on one side and the entry form on the other.
//
// The package separates three concerns:
//
//   - FormModel owns the transient draft of one employee's editable
//     fields, per-field advisory validation, and create-versus-edit
//     mode switching. It never touches the network.
//   - Store owns the authoritative in-memory employee collection. All
//     mutations flow through it and bump a revision counter that the
//     top-level model uses to decide when a re-fetch is warranted.
//   - Model wires both to a roster gateway, routing keyboard input by
//     focus region and running gateway calls as asynchronous bubbletea
//     commands so the interface stays responsive.
//
// Validation here is advisory: the server is assumed to enforce the
// authoritative rules, and the client checks exist to catch mistakes
// before a round-trip.
package rosterui
