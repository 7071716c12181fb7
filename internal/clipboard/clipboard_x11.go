//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

// Package clipboard copies wall patterns to and from the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Without cgo the clipboard is served directly over the X11 selection
// protocol. The owning window lives for the rest of the process.

var (
	errConnClosed        = errors.New("x11 connection closed")
	errTargetUnavailable = errors.New("clipboard target unavailable")
)

var (
	initOnce sync.Once
	initErr  error
	owner    *selectionOwner
)

func ensureInit() error {
	initOnce.Do(func() {
		if !hasDisplay() {
			initErr = errNoDisplay
			return
		}
		s := &selectionOwner{}
		if err := s.open(); err != nil {
			initErr = err
			return
		}
		owner = s
	})
	return initErr
}

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// WriteText takes ownership of the CLIPBOARD selection and serves text.
func WriteText(text string) error {
	if err := ensureInit(); err != nil {
		return err
	}
	owner.mu.Lock()
	owner.text = []byte(text)
	owner.mu.Unlock()
	return xproto.SetSelectionOwnerChecked(owner.conn, owner.window, owner.atoms.clipboard, xproto.TimeCurrentTime).Check()
}

// ReadText returns UTF-8 text data from the clipboard.
func ReadText() (string, error) {
	if err := ensureInit(); err != nil {
		return "", err
	}
	data, err := owner.request(owner.atoms.utf8)
	if err != nil {
		if data, err = owner.request(xproto.AtomString); err != nil {
			return "", err
		}
	}
	// Some applications include a trailing NUL in STRING replies.
	if n := len(data); n > 0 && data[n-1] == 0 {
		data = data[:n-1]
	}
	if len(data) == 0 {
		return "", fmt.Errorf("clipboard does not contain text data")
	}
	return string(data), nil
}

type atoms struct {
	clipboard xproto.Atom
	targets   xproto.Atom
	utf8      xproto.Atom
	textPlain xproto.Atom
	property  xproto.Atom
}

type selectionOwner struct {
	conn   *xgb.Conn
	window xproto.Window
	atoms  atoms

	mu   sync.Mutex
	text []byte
}

func (s *selectionOwner) open() error {
	conn, err := xgb.NewConn()
	if err != nil {
		return err
	}
	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return err
	}
	mask := []uint32{xproto.EventMaskPropertyChange}
	if err := xproto.CreateWindowChecked(conn, screen.RootDepth, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual, xproto.CwEventMask, mask).Check(); err != nil {
		conn.Close()
		return err
	}
	a, err := internAtoms(conn)
	if err != nil {
		xproto.DestroyWindow(conn, window)
		conn.Close()
		return err
	}
	s.conn, s.window, s.atoms = conn, window, a
	go s.serve()
	return nil
}

func internAtoms(conn *xgb.Conn) (atoms, error) {
	names := []string{"CLIPBOARD", "TARGETS", "UTF8_STRING", "text/plain;charset=utf-8", "TILEWALL_CLIPBOARD"}
	ids := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			return atoms{}, fmt.Errorf("intern %s: %w", name, err)
		}
		ids[i] = reply.Atom
	}
	return atoms{clipboard: ids[0], targets: ids[1], utf8: ids[2], textPlain: ids[3], property: ids[4]}, nil
}

func (s *selectionOwner) serve() {
	for {
		ev, err := s.conn.WaitForEvent()
		if err != nil || ev == nil {
			return
		}
		switch e := ev.(type) {
		case xproto.SelectionRequestEvent:
			s.reply(e)
		case xproto.SelectionClearEvent:
			s.mu.Lock()
			s.text = nil
			s.mu.Unlock()
		}
	}
}

func (s *selectionOwner) reply(e xproto.SelectionRequestEvent) {
	property := e.Property
	if property == xproto.AtomNone {
		property = e.Target
	}

	s.mu.Lock()
	text := s.text
	s.mu.Unlock()

	switch e.Target {
	case s.atoms.targets:
		targets := []xproto.Atom{s.atoms.targets, s.atoms.utf8, xproto.AtomString, s.atoms.textPlain}
		buf := make([]byte, len(targets)*4)
		for i, a := range targets {
			xgb.Put32(buf[i*4:], uint32(a))
		}
		xproto.ChangeProperty(s.conn, xproto.PropModeReplace, e.Requestor, property, xproto.AtomAtom, 32, uint32(len(targets)), buf)
	case s.atoms.utf8, xproto.AtomString, s.atoms.textPlain:
		if len(text) == 0 {
			property = xproto.AtomNone
			break
		}
		xproto.ChangeProperty(s.conn, xproto.PropModeReplace, e.Requestor, property, s.atoms.utf8, 8, uint32(len(text)), text)
	default:
		property = xproto.AtomNone
	}

	notify := xproto.SelectionNotifyEvent{
		Time:      e.Time,
		Requestor: e.Requestor,
		Selection: e.Selection,
		Target:    e.Target,
		Property:  property,
	}
	_ = xproto.SendEvent(s.conn, false, e.Requestor, 0, string(notify.Bytes()))
}

// request converts the CLIPBOARD selection to target on a private
// connection and waits for the owner's answer.
func (s *selectionOwner) request(target xproto.Atom) ([]byte, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}
	if err := xproto.CreateWindowChecked(conn, 0, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOnly, 0, xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		return nil, err
	}
	defer xproto.DestroyWindow(conn, window)

	if err := xproto.ConvertSelectionChecked(conn, window, s.atoms.clipboard, target, s.atoms.property, xproto.TimeCurrentTime).Check(); err != nil {
		return nil, err
	}
	e, err := awaitNotify(conn.WaitForEvent, s.atoms.property)
	if err != nil {
		return nil, err
	}
	if e.Property == xproto.AtomNone {
		return nil, errTargetUnavailable
	}
	reply, err := xproto.GetProperty(conn, true, window, s.atoms.property, xproto.GetPropertyTypeAny, 0, (1<<31)-1).Reply()
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), reply.Value...), nil
}

// awaitNotify reads events from next until the SelectionNotify that
// answers a conversion into property arrives. A refusal carries
// AtomNone and is returned as well.
func awaitNotify(next func() (xgb.Event, xgb.Error), property xproto.Atom) (xproto.SelectionNotifyEvent, error) {
	for {
		ev, xerr := next()
		if xerr != nil {
			return xproto.SelectionNotifyEvent{}, xerr
		}
		if ev == nil {
			return xproto.SelectionNotifyEvent{}, errConnClosed
		}
		switch e := ev.(type) {
		case xproto.SelectionNotifyEvent:
			if e.Property != xproto.AtomNone && e.Property != property {
				continue
			}
			return e, nil
		}
	}
}
