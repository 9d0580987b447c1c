// Package clipboard publishes serialized snippets to the system clipboard
// and drives the transient "copied" indicator.
package clipboard

import (
	"fmt"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"

	apperrors "github.com/shhac/docsnip/internal/errors"
)

// DefaultResetDelay is how long the copied indicator stays set.
const DefaultResetDelay = 2 * time.Second

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// FyneWriter writes through the clipboard of a Fyne application.
type FyneWriter struct {
	App fyne.App
}

// WriteText implements Writer. Driver panics are turned into errors.
func (w FyneWriter) WriteText(text string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", apperrors.ErrClipboardUnavailable, r)
		}
	}()

	if w.App == nil {
		return apperrors.ErrClipboardUnavailable
	}
	cb := w.App.Clipboard()
	if cb == nil {
		return apperrors.ErrClipboardUnavailable
	}
	cb.SetContent(text)
	return nil
}

// Scheduler runs fn after d and returns a function that cancels it.
type Scheduler func(d time.Duration, fn func()) (cancel func())

// mainThreadAfter runs fn on the Fyne main goroutine after d.
func mainThreadAfter(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, func() { fyne.Do(fn) })
	return func() { t.Stop() }
}

// Publisher copies text when the gate is open and flips the indicator.
type Publisher struct {
	writer     Writer
	logger     *slog.Logger
	resetDelay time.Duration
	schedule   Scheduler
	pending    map[binding.Bool]func()
}

// NewPublisher creates a Publisher with the default reset delay.
func NewPublisher(writer Writer, logger *slog.Logger) *Publisher {
	return &Publisher{
		writer:     writer,
		logger:     logger,
		resetDelay: DefaultResetDelay,
		schedule:   mainThreadAfter,
		pending:    make(map[binding.Bool]func()),
	}
}

// SetResetDelay changes how long the indicator stays set. Non-positive
// values restore the default.
func (p *Publisher) SetResetDelay(d time.Duration) {
	if d <= 0 {
		d = DefaultResetDelay
	}
	p.resetDelay = d
}

// ResetDelay returns the current indicator delay.
func (p *Publisher) ResetDelay() time.Duration {
	return p.resetDelay
}

// SetScheduler replaces the timer used to reset indicators.
func (p *Publisher) SetScheduler(s Scheduler) {
	p.schedule = s
}

// Publish writes text to the clipboard when valid is true and sets copied
// until the reset delay elapses. A clipboard failure is logged and clears
// copied. It reports whether the text reached the clipboard.
func (p *Publisher) Publish(text string, valid bool, copied binding.Bool) bool {
	if !valid {
		return false
	}

	if err := p.writer.WriteText(text); err != nil {
		p.logger.Error("failed to copy snippet to clipboard", slog.Any("error", err))
		if copied != nil {
			if cancel, ok := p.pending[copied]; ok {
				cancel()
				delete(p.pending, copied)
			}
			_ = copied.Set(false)
		}
		return false
	}

	p.logger.Debug("snippet copied to clipboard", slog.Int("length", len(text)))

	if copied == nil {
		return true
	}
	if cancel, ok := p.pending[copied]; ok {
		cancel()
	}
	_ = copied.Set(true)
	p.pending[copied] = p.schedule(p.resetDelay, func() {
		_ = copied.Set(false)
	})
	return true
}
