package models

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type ActionKind string

const (
	ActionConvert    ActionKind = "convert"
	ActionStripBlank ActionKind = "strip_blank"
	ActionCopy       ActionKind = "copy"
	ActionClear      ActionKind = "clear"
)

// Action is one entry in the in-memory session history.
type Action struct {
	ID        string
	Kind      ActionKind
	CreatedAt time.Time

	InputRunes  int
	OutputRunes int

	// Convert only
	DisplayPairs int
	InlinePairs  int
	PairsInCode  int
	Error        error
}

func NewAction(kind ActionKind, input, output string) *Action {
	return &Action{
		ID:          uuid.New().String(),
		Kind:        kind,
		CreatedAt:   time.Now(),
		InputRunes:  utf8.RuneCountInString(input),
		OutputRunes: utf8.RuneCountInString(output),
	}
}

// Fail marks the action as failed.
func (a *Action) Fail(err error) {
	a.Error = err
}

// Succeeded reports whether the action completed without error.
func (a *Action) Succeeded() bool {
	return a.Error == nil
}

// Pairs returns the number of delimiter pairs rewritten.
func (a *Action) Pairs() int {
	return a.DisplayPairs + a.InlinePairs
}

func (a *Action) StatusText() string {
	switch a.Kind {
	case ActionConvert:
		if a.Error != nil {
			return "Converted, copy failed: " + a.Error.Error()
		}
		return "Converted"
	case ActionStripBlank:
		return "Stripped blank lines"
	case ActionCopy:
		if a.Error != nil {
			return "Copy failed: " + a.Error.Error()
		}
		return "Copied"
	case ActionClear:
		return "Cleared"
	default:
		return string(a.Kind)
	}
}
