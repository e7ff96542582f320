package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"latex-for-typora/internal/config"
	"latex-for-typora/internal/logger"
	"latex-for-typora/internal/markdown"
	"latex-for-typora/internal/text"
	"latex-for-typora/models"
)

// ErrNoClipboard is returned when no clipboard is attached.
var ErrNoClipboard = errors.New("clipboard not available")

// Clipboard receives copied results.
type Clipboard interface {
	Copy(content string) error
}

// ClipboardFunc adapts a plain function to Clipboard.
type ClipboardFunc func(content string) error

func (f ClipboardFunc) Copy(content string) error {
	return f(content)
}

// State is a snapshot of the workspace buffers.
type State struct {
	Input  string
	Output string
	Status string
}

// Workspace holds the input and output buffers behind the window and
// applies the conversion actions to them.
type Workspace struct {
	mu sync.Mutex

	input  string
	output string
	status string

	history      []*models.Action
	historyLimit int

	autoCopy          bool
	stripAfterConvert bool

	clipboard Clipboard
	log       *logger.Logger
}

func NewWorkspace(cfg *models.Config, clipboard Clipboard, log *logger.Logger) *Workspace {
	if log == nil {
		log = logger.Default()
	}
	w := &Workspace{
		clipboard: clipboard,
		log:       log.With("component", "workspace"),
	}
	w.Configure(cfg)
	return w
}

// Configure applies the behaviour settings of cfg. Buffers are kept;
// history is trimmed when the new limit is smaller.
func (w *Workspace) Configure(cfg *models.Config) {
	if cfg == nil {
		cfg = models.DefaultConfig()
	}
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.historyLimit = limit
	w.autoCopy = cfg.AutoCopy
	w.stripAfterConvert = cfg.StripAfterConvert
	w.trimHistory()
}

// SetInput replaces the input buffer without running any action.
func (w *Workspace) SetInput(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.input = s
}

// SetOutput replaces the output buffer, e.g. after the user edits the result.
func (w *Workspace) SetOutput(s string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.output = s
}

func (w *Workspace) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Workspace) stateLocked() State {
	return State{Input: w.input, Output: w.output, Status: w.status}
}

// History returns the actions of this session, oldest first.
func (w *Workspace) History() []*models.Action {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]*models.Action, len(w.history))
	copy(out, w.history)
	return out
}

// Convert rewrites the input into the output buffer. With auto-copy on,
// the result is copied after the buffers are updated; a copy failure marks
// the action as failed but keeps the converted output.
func (w *Workspace) Convert() *models.Action {
	action, out, clip, autoCopy := w.convert()
	if !autoCopy {
		return action
	}

	err := w.copyTo(clip, out)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		action.Fail(err)
	}
	// A newer action owns the status line.
	if w.latest() != action {
		return action
	}
	if err != nil {
		w.status = fmt.Sprintf("%s; %s: %v", w.status, config.StatusCopyFailed, err)
	} else {
		w.status += "; " + strings.ToLower(config.StatusCopied)
	}
	return action
}

func (w *Workspace) convert() (*models.Action, string, Clipboard, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	out, stats := text.ConvertWithStats(w.input)
	inCode := markdown.DelimitersInCode(w.input)
	if w.stripAfterConvert {
		out = text.StripBlankLines(out)
	}
	w.output = out

	action := models.NewAction(models.ActionConvert, w.input, out)
	action.DisplayPairs = stats.Display
	action.InlinePairs = stats.Inline
	action.PairsInCode = inCode
	w.status = ConvertStatus(stats, inCode)
	w.record(action)

	w.log.Debug("convert %s: %d pairs (%d display, %d inline), %d in code",
		action.ID, action.Pairs(), stats.Display, stats.Inline, inCode)
	return action, out, w.clipboard, w.autoCopy && out != ""
}

// StripBlankLines strips the output, or the input when the output is empty,
// and stores the result in the output buffer.
func (w *Workspace) StripBlankLines() *models.Action {
	w.mu.Lock()
	defer w.mu.Unlock()

	target := w.output
	if target == "" {
		target = w.input
	}
	w.output = text.StripBlankLines(target)
	w.status = config.StatusStripped

	action := models.NewAction(models.ActionStripBlank, target, w.output)
	w.record(action)
	w.log.Debug("strip %s: %d -> %d runes", action.ID, action.InputRunes, action.OutputRunes)
	return action
}

// CopyResult copies the output buffer to the clipboard.
// An empty output leaves the clipboard untouched.
func (w *Workspace) CopyResult() (*models.Action, error) {
	output, clip := w.copySource()

	action := models.NewAction(models.ActionCopy, output, output)
	status := config.StatusNothingToCopy
	var err error
	if output != "" {
		if err = w.copyTo(clip, output); err != nil {
			action.Fail(err)
			status = fmt.Sprintf("%s: %v", config.StatusCopyFailed, err)
		} else {
			status = config.StatusCopied
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.record(action)
	return action, err
}

// Clear empties both buffers.
func (w *Workspace) Clear() *models.Action {
	w.mu.Lock()
	defer w.mu.Unlock()

	action := models.NewAction(models.ActionClear, w.input, "")
	w.input = ""
	w.output = ""
	w.status = config.StatusCleared
	w.record(action)
	w.log.Debug("clear %s", action.ID)
	return action
}

func (w *Workspace) copySource() (string, Clipboard) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.output, w.clipboard
}

// copyTo runs without the workspace lock held.
func (w *Workspace) copyTo(clip Clipboard, content string) error {
	if clip == nil {
		w.log.Warn("copy requested without a clipboard")
		return ErrNoClipboard
	}
	if err := clip.Copy(content); err != nil {
		w.log.Err(err, "clipboard copy failed")
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func (w *Workspace) record(action *models.Action) {
	w.history = append(w.history, action)
	w.trimHistory()
}

func (w *Workspace) latest() *models.Action {
	if len(w.history) == 0 {
		return nil
	}
	return w.history[len(w.history)-1]
}

func (w *Workspace) trimHistory() {
	if over := len(w.history) - w.historyLimit; over > 0 {
		w.history = append(w.history[:0:0], w.history[over:]...)
	}
}

// ConvertStatus formats the status line after a conversion.
func ConvertStatus(stats text.Stats, inCode int) string {
	var b strings.Builder
	b.WriteString(config.StatusConverted)

	switch stats.Total() {
	case 0:
		b.WriteString(": no formulas found")
	case 1:
		b.WriteString(": 1 formula")
	default:
		fmt.Fprintf(&b, ": %d formulas", stats.Total())
	}
	if stats.Total() > 0 {
		fmt.Fprintf(&b, " (%d display, %d inline)", stats.Display, stats.Inline)
	}

	switch inCode {
	case 0:
	case 1:
		b.WriteString(", 1 delimiter was inside code")
	default:
		fmt.Fprintf(&b, ", %d delimiters were inside code", inCode)
	}
	return b.String()
}
