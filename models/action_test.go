package models

import (
	"errors"
	"testing"
)

func TestNewAction(t *testing.T) {
	a := NewAction(ActionConvert, `\(α\)`, "$α$")

	if a.ID == "" {
		t.Error("expected non-empty ID")
	}
	if a.Kind != ActionConvert {
		t.Errorf("expected ActionConvert, got %s", a.Kind)
	}
	if a.InputRunes != 5 {
		t.Errorf("expected InputRunes 5, got %d", a.InputRunes)
	}
	if a.OutputRunes != 3 {
		t.Errorf("expected OutputRunes 3, got %d", a.OutputRunes)
	}
	if a.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if !a.Succeeded() {
		t.Error("new action should be successful")
	}
}

func TestNewAction_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewAction(ActionClear, "", "").ID
		if seen[id] {
			t.Fatalf("duplicate ID %s", id)
		}
		seen[id] = true
	}
}

func TestAction_Fail(t *testing.T) {
	a := NewAction(ActionCopy, "", "x")
	a.Fail(errors.New("clipboard locked"))

	if a.Succeeded() {
		t.Error("expected failed action")
	}
	if got := a.StatusText(); got != "Copy failed: clipboard locked" {
		t.Errorf("StatusText() = %q", got)
	}
}

func TestAction_FailedConvertKeepsKind(t *testing.T) {
	a := NewAction(ActionConvert, `\(x\)`, "$x$")
	a.Fail(errors.New("denied"))

	if a.Succeeded() {
		t.Error("expected failed action")
	}
	if got := a.StatusText(); got != "Converted, copy failed: denied" {
		t.Errorf("StatusText() = %q", got)
	}
}

func TestAction_Pairs(t *testing.T) {
	a := NewAction(ActionConvert, "", "")
	a.DisplayPairs = 2
	a.InlinePairs = 3
	if got := a.Pairs(); got != 5 {
		t.Errorf("Pairs() = %d, want 5", got)
	}
}

func TestAction_StatusText(t *testing.T) {
	tests := []struct {
		kind ActionKind
		want string
	}{
		{ActionConvert, "Converted"},
		{ActionStripBlank, "Stripped blank lines"},
		{ActionCopy, "Copied"},
		{ActionClear, "Cleared"},
		{ActionKind("other"), "other"},
	}
	for _, tt := range tests {
		a := NewAction(tt.kind, "", "")
		if got := a.StatusText(); got != tt.want {
			t.Errorf("StatusText(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
