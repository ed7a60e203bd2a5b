// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"sync"

	"github.com/bureau-foundation/staffdesk/lib/roster"
)

// Store is the authoritative in-memory employee collection. Exactly
// one Store exists per running model and every view renders from its
// snapshots; nothing else holds a durable reference to the slice.
//
// Each mutation bumps a revision counter. The top-level model records
// the revision it last synchronized against and re-fetches from the
// gateway when the counter has moved past it, which makes the refresh
// trigger an explicit, auditable signal instead of a re-fetch on every
// render.
//
// The mutex exists because bubbletea commands complete on goroutines;
// mutations themselves are applied from Update, but tests and future
// callers should not need to know that.
type Store struct {
	mu        sync.Mutex
	employees []roster.Employee
	revision  int64
}

// NewStore returns an empty store at revision zero.
func NewStore() *Store {
	return &Store{}
}

// Revision returns the mutation counter. It increases by exactly one
// for every Replace, Apply, or Remove.
func (store *Store) Revision() int64 {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.revision
}

// Len returns the number of employees in the collection.
func (store *Store) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.employees)
}

// Replace swaps the whole collection for a fresh gateway snapshot.
func (store *Store) Replace(employees []roster.Employee) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.employees = make([]roster.Employee, len(employees))
	copy(store.employees, employees)
	store.revision++
}

// Apply inserts a created employee or replaces an existing one by ID.
// Used after a successful create (append) or update (replace in
// place, preserving list order).
func (store *Store) Apply(employee roster.Employee) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for index, existing := range store.employees {
		if existing.ID == employee.ID {
			store.employees[index] = employee
			store.revision++
			return
		}
	}
	store.employees = append(store.employees, employee)
	store.revision++
}

// Remove deletes the employee with the given ID. Unknown IDs are a
// no-op and do not bump the revision.
func (store *Store) Remove(id string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for index, existing := range store.employees {
		if existing.ID == id {
			store.employees = append(store.employees[:index], store.employees[index+1:]...)
			store.revision++
			return
		}
	}
}

// Get returns the employee with the given ID, or false when absent.
func (store *Store) Get(id string) (roster.Employee, bool) {
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, existing := range store.employees {
		if existing.ID == id {
			return existing, true
		}
	}
	return roster.Employee{}, false
}

// Snapshot returns a copy of the collection in its current order.
// Callers may retain and index the slice freely.
func (store *Store) Snapshot() []roster.Employee {
	store.mu.Lock()
	defer store.mu.Unlock()
	snapshot := make([]roster.Employee, len(store.employees))
	copy(snapshot, store.employees)
	return snapshot
}
