package sched

import "testing"

func TestTriggerArmAndDue(t *testing.T) {
	var tr Trigger
	if tr.Pending() {
		t.Fatalf("zero-value Trigger should not be pending")
	}

	tr.Arm(1000, 50)
	if !tr.Pending() {
		t.Fatalf("expected Trigger to be pending after Arm")
	}
	if tr.Due(1049) {
		t.Fatalf("Due(1049) should be false, fires at 1050")
	}
	if !tr.Due(1050) {
		t.Fatalf("Due(1050) should be true")
	}

	cycle, armed := tr.At()
	if !armed || cycle != 1050 {
		t.Fatalf("At() = (%d, %v), want (1050, true)", cycle, armed)
	}
}

func TestTriggerClear(t *testing.T) {
	var tr Trigger
	tr.Arm(0, 10)
	tr.Clear()
	if tr.Pending() {
		t.Fatalf("expected Trigger to be cleared")
	}
}

func TestPendingClassification(t *testing.T) {
	p := Pending{Kind: PendingNone}
	if !p.None() {
		t.Fatalf("zero Pending should report None")
	}
	p = Pending{Kind: PendingError, Code: 0x18}
	if p.None() {
		t.Fatalf("PendingError should not report None")
	}
}
