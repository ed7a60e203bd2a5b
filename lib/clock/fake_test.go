// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFakeNow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fake := Fake(start)

	if !fake.Now().Equal(start) {
		t.Errorf("Now() = %v, want %v", fake.Now(), start)
	}

	// Time stands still without Advance.
	if !fake.Now().Equal(start) {
		t.Error("fake time moved without Advance")
	}
}

func TestFakeAdvance(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	fake := Fake(start)

	fake.Advance(90 * time.Second)

	want := start.Add(90 * time.Second)
	if !fake.Now().Equal(want) {
		t.Errorf("after Advance(90s): Now() = %v, want %v", fake.Now(), want)
	}
}

func TestFakeAdvanceNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Advance(-1) did not panic")
		}
	}()
	Fake(time.Now()).Advance(-1)
}

func TestFakeSet(t *testing.T) {
	fake := Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	fake.Set(target)

	if !fake.Now().Equal(target) {
		t.Errorf("after Set: Now() = %v, want %v", fake.Now(), target)
	}
}
