package contracts

import (
	"testing"
)

func TestRankDense(t *testing.T) {
	values := []int64{50, 40, 40, 30, 10}
	entries := Rank(values, func(v int64) int64 { return v }, 4)

	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	expectedRanks := []int{1, 2, 2, 3}
	for i, e := range entries {
		if e.Rank != expectedRanks[i] {
			t.Errorf("Entry %d: expected rank %d, got %d", i, expectedRanks[i], e.Rank)
		}
		if e.Value != values[i] {
			t.Errorf("Entry %d: expected value %d, got %d", i, values[i], e.Value)
		}
	}
}

func TestRankLimits(t *testing.T) {
	values := []int64{3, 2}

	if got := Rank(values, func(v int64) int64 { return v }, 10); len(got) != 2 {
		t.Errorf("Expected limit to clamp to 2, got %d", len(got))
	}
	if got := Rank(values, func(v int64) int64 { return v }, 0); len(got) != 0 {
		t.Errorf("Expected no entries, got %d", len(got))
	}
	if got := Rank(values, func(v int64) int64 { return v }, -1); len(got) != 0 {
		t.Errorf("Expected no entries for negative limit, got %d", len(got))
	}
}

func TestUserIsEmpty(t *testing.T) {
	if !(UserContract{}).IsEmpty() {
		t.Error("Expected zero user to be empty")
	}
	if (UserContract{RegistrationReference: "ref"}).IsEmpty() {
		t.Error("Expected user with registration reference to be non-empty")
	}
}
