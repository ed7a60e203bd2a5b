// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package rosterui

import (
	"testing"

	"github.com/bureau-foundation/staffdesk/lib/roster"
)

func TestStoreReplace(t *testing.T) {
	store := NewStore()
	if store.Revision() != 0 {
		t.Fatalf("fresh store revision = %d, want 0", store.Revision())
	}

	store.Replace([]roster.Employee{{ID: "e1"}, {ID: "e2"}})
	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
	if store.Revision() != 1 {
		t.Errorf("revision = %d, want 1", store.Revision())
	}
}

func TestStoreApplyAppendsAndReplaces(t *testing.T) {
	store := NewStore()
	store.Replace([]roster.Employee{{ID: "e1", Name: "Ana"}})

	store.Apply(roster.Employee{ID: "e2", Name: "Rui"})
	if store.Len() != 2 {
		t.Fatalf("Len after append = %d, want 2", store.Len())
	}

	store.Apply(roster.Employee{ID: "e1", Name: "Ana Silva"})
	if store.Len() != 2 {
		t.Fatalf("Len after replace = %d, want 2", store.Len())
	}
	updated, ok := store.Get("e1")
	if !ok || updated.Name != "Ana Silva" {
		t.Errorf("Get(e1) = %+v, %v", updated, ok)
	}

	// Replace keeps list order.
	snapshot := store.Snapshot()
	if snapshot[0].ID != "e1" || snapshot[1].ID != "e2" {
		t.Errorf("order after replace: %s, %s", snapshot[0].ID, snapshot[1].ID)
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewStore()
	store.Replace([]roster.Employee{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}})
	revisionBefore := store.Revision()

	store.Remove("e2")
	if store.Len() != 2 {
		t.Errorf("Len = %d, want 2", store.Len())
	}
	if _, ok := store.Get("e2"); ok {
		t.Error("e2 still present after Remove")
	}
	if store.Revision() != revisionBefore+1 {
		t.Errorf("revision = %d, want %d", store.Revision(), revisionBefore+1)
	}

	// Removing an unknown ID is a no-op and does not bump the revision.
	store.Remove("e9")
	if store.Len() != 2 || store.Revision() != revisionBefore+1 {
		t.Errorf("unknown-ID remove changed state: len=%d revision=%d", store.Len(), store.Revision())
	}
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.Replace([]roster.Employee{{ID: "e1", Name: "Ana"}})

	snapshot := store.Snapshot()
	snapshot[0].Name = "mutated"

	original, _ := store.Get("e1")
	if original.Name != "Ana" {
		t.Errorf("snapshot mutation leaked into store: %q", original.Name)
	}
}
