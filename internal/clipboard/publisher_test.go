package clipboard

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"
	apperrors "github.com/shhac/docsnip/internal/errors"
	"github.com/shhac/docsnip/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	writes []string
	err    error
}

func (f *fakeWriter) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

// fakeTimers records scheduled resets so tests can fire them by hand.
type fakeTimers struct {
	delays    []time.Duration
	fns       []func()
	cancelled int
}

func (f *fakeTimers) schedule(d time.Duration, fn func()) func() {
	f.delays = append(f.delays, d)
	f.fns = append(f.fns, fn)
	return func() { f.cancelled++ }
}

func newTestPublisher(w Writer) (*Publisher, *fakeTimers) {
	p := NewPublisher(w, logging.NewNopLogger())
	timers := &fakeTimers{}
	p.SetScheduler(timers.schedule)
	return p, timers
}

func TestPublish_InvalidIsNoOp(t *testing.T) {
	w := &fakeWriter{}
	p, timers := newTestPublisher(w)
	copied := binding.NewBool()

	assert.False(t, p.Publish("snippet", false, copied))
	assert.Empty(t, w.writes)
	assert.Empty(t, timers.fns)

	v, _ := copied.Get()
	assert.False(t, v)
}

func TestPublish_WritesAndResetsIndicator(t *testing.T) {
	w := &fakeWriter{}
	p, timers := newTestPublisher(w)
	copied := binding.NewBool()

	require.True(t, p.Publish("{% buttonlist items=[] /%}", true, copied))
	assert.Equal(t, []string{"{% buttonlist items=[] /%}"}, w.writes)

	v, _ := copied.Get()
	assert.True(t, v)
	require.Len(t, timers.fns, 1)
	assert.Equal(t, DefaultResetDelay, timers.delays[0])

	timers.fns[0]()
	v, _ = copied.Get()
	assert.False(t, v)
}

func TestPublish_SecondCopyRestartsDelay(t *testing.T) {
	w := &fakeWriter{}
	p, timers := newTestPublisher(w)
	copied := binding.NewBool()

	p.Publish("a", true, copied)
	p.Publish("a", true, copied)

	assert.Equal(t, []string{"a", "a"}, w.writes)
	assert.Len(t, timers.fns, 2)
	assert.Equal(t, 1, timers.cancelled)
}

func TestPublish_ClipboardFailureIsSwallowed(t *testing.T) {
	w := &fakeWriter{err: apperrors.ErrClipboardUnavailable}
	p, timers := newTestPublisher(w)
	copied := binding.NewBool()

	assert.False(t, p.Publish("a", true, copied))
	assert.Empty(t, timers.fns)

	v, _ := copied.Get()
	assert.False(t, v)
}

func TestPublish_FailureAfterCopyClearsIndicator(t *testing.T) {
	w := &fakeWriter{}
	p, timers := newTestPublisher(w)
	copied := binding.NewBool()

	require.True(t, p.Publish("a", true, copied))
	v, _ := copied.Get()
	require.True(t, v)

	w.err = apperrors.ErrClipboardUnavailable
	assert.False(t, p.Publish("b", true, copied))
	assert.Equal(t, 1, timers.cancelled)

	v, _ = copied.Get()
	assert.False(t, v)

	// A later successful copy schedules a fresh reset without cancelling again.
	w.err = nil
	require.True(t, p.Publish("c", true, copied))
	assert.Equal(t, 1, timers.cancelled)
	assert.Len(t, timers.fns, 2)
}

func TestPublish_NilIndicator(t *testing.T) {
	w := &fakeWriter{}
	p, timers := newTestPublisher(w)

	assert.True(t, p.Publish("a", true, nil))
	assert.Empty(t, timers.fns)
}

func TestSetResetDelay(t *testing.T) {
	p := NewPublisher(&fakeWriter{}, logging.NewNopLogger())

	p.SetResetDelay(500 * time.Millisecond)
	assert.Equal(t, 500*time.Millisecond, p.ResetDelay())

	p.SetResetDelay(0)
	assert.Equal(t, DefaultResetDelay, p.ResetDelay())
}

func TestFyneWriter(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	w := FyneWriter{App: app}
	require.NoError(t, w.WriteText("hello"))
	assert.Equal(t, "hello", app.Clipboard().Content())
}

func TestFyneWriter_NoApp(t *testing.T) {
	err := FyneWriter{}.WriteText("hello")
	assert.True(t, errors.Is(err, apperrors.ErrClipboardUnavailable))
}
