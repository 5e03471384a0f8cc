package domain

import "testing"

func TestStageIndex_KnownStages(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"picked_up", 0},
		{"in_transit", 1},
		{"customs", 2},
		{"out_for_delivery", 3},
		{"delivered", 4},
	}
	for _, tc := range cases {
		got, ok := StageIndex(tc.raw)
		if !ok {
			t.Errorf("StageIndex(%q): expected known stage", tc.raw)
		}
		if got != tc.want {
			t.Errorf("StageIndex(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestStageIndex_UnknownStage(t *testing.T) {
	for _, raw := range []string{"", "warehouse", "IN_TRANSIT", "in transit"} {
		idx, ok := StageIndex(raw)
		if ok {
			t.Errorf("StageIndex(%q): expected unknown stage", raw)
		}
		if idx != -1 {
			t.Errorf("StageIndex(%q) = %d, want -1", raw, idx)
		}
	}
}

func TestClampProgress(t *testing.T) {
	cases := []struct{ in, want int }{
		{-10, 0},
		{0, 0},
		{45, 45},
		{100, 100},
		{140, 100},
	}
	for _, tc := range cases {
		if got := ClampProgress(tc.in); got != tc.want {
			t.Errorf("ClampProgress(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestStages_OrderAndIsolation(t *testing.T) {
	stages := Stages()
	if len(stages) != 5 {
		t.Fatalf("expected 5 stages, got %d", len(stages))
	}
	if stages[0] != StagePickedUp || stages[4] != StageDelivered {
		t.Errorf("unexpected pipeline order: %v", stages)
	}

	// Mutating the returned slice must not affect the vocabulary.
	stages[0] = "tampered"
	if fresh := Stages(); fresh[0] != StagePickedUp {
		t.Error("Stages() returned a shared backing array")
	}
}
