//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"testing"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

type fakeXError struct{}

func (fakeXError) SequenceId() uint16 { return 1 }
func (fakeXError) BadId() uint32      { return 0 }
func (fakeXError) Error() string      { return "BadWindow" }

func eventSource(events ...xgb.Event) func() (xgb.Event, xgb.Error) {
	return func() (xgb.Event, xgb.Error) {
		if len(events) == 0 {
			return nil, nil
		}
		ev := events[0]
		events = events[1:]
		return ev, nil
	}
}

func TestAwaitNotifySkipsOtherProperties(t *testing.T) {
	const want, other xproto.Atom = 300, 301
	next := eventSource(
		xproto.PropertyNotifyEvent{Atom: want},
		xproto.SelectionNotifyEvent{Property: other, Target: 1},
		xproto.SelectionNotifyEvent{Property: want, Target: 2},
	)
	e, err := awaitNotify(next, want)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if e.Target != 2 {
		t.Fatalf("got notify for target %d, want 2", e.Target)
	}
}

func TestAwaitNotifyReturnsRefusal(t *testing.T) {
	e, err := awaitNotify(eventSource(xproto.SelectionNotifyEvent{Property: xproto.AtomNone}), 300)
	if err != nil {
		t.Fatalf("await: %v", err)
	}
	if e.Property != xproto.AtomNone {
		t.Fatalf("property = %d, want AtomNone", e.Property)
	}
}

func TestAwaitNotifyClosedConnection(t *testing.T) {
	next := eventSource(xproto.SelectionNotifyEvent{Property: 301})
	if _, err := awaitNotify(next, 300); !errors.Is(err, errConnClosed) {
		t.Fatalf("expected errConnClosed, got %v", err)
	}
}

func TestAwaitNotifyXError(t *testing.T) {
	next := func() (xgb.Event, xgb.Error) { return nil, fakeXError{} }
	_, err := awaitNotify(next, 300)
	if err == nil || err.Error() != "BadWindow" {
		t.Fatalf("expected BadWindow, got %v", err)
	}
}
