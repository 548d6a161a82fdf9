package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dshills/keyline/internal/display"
	"github.com/dshills/keyline/internal/editor"
	"github.com/dshills/keyline/internal/input/stream"
	"github.com/dshills/keyline/internal/terminal"
)

// Backend names.
const (
	BackendAuto   = "auto"
	BackendTcell  = "tcell"
	BackendStream = "stream"
)

// backend is a key source and display pair.
type backend interface {
	editor.Input
	editor.Display

	// Println shows a line of output above the prompt.
	Println(s string)

	// Close restores the terminal.
	Close() error
}

// streamBackend decodes bytes from a reader and echoes ANSI to a writer.
type streamBackend struct {
	*stream.Reader
	*stream.Echo
	restore func() error
}

func (b *streamBackend) Close() error {
	if b.restore != nil {
		restore := b.restore
		b.restore = nil
		return restore()
	}
	return nil
}

// tcellBackend drives a full tcell screen.
type tcellBackend struct {
	*terminal.Terminal
}

func (b *tcellBackend) Close() error {
	b.Shutdown()
	return nil
}

// resolveBackend picks the backend for "auto": tcell when a screen was
// supplied or stdin is a terminal, the stream decoder otherwise.
func resolveBackend(opts Options) string {
	name := opts.Backend
	if name != "" && name != BackendAuto {
		return name
	}
	if opts.Screen != nil {
		return BackendTcell
	}
	if opts.Input == nil && term.IsTerminal(int(os.Stdin.Fd())) {
		return BackendTcell
	}
	return BackendStream
}

func newBackend(opts Options, bell display.BellStyle, logger *Logger) (backend, error) {
	switch name := resolveBackend(opts); name {
	case BackendTcell:
		topts := []terminal.Option{terminal.WithBell(bell)}
		if opts.Screen != nil {
			topts = append(topts, terminal.WithScreen(opts.Screen))
		}
		t, err := terminal.New(topts...)
		if err != nil {
			return nil, err
		}
		if err := t.Init(); err != nil {
			return nil, err
		}
		logger.Debug("using tcell backend")
		return &tcellBackend{Terminal: t}, nil

	case BackendStream:
		var in io.Reader = os.Stdin
		if opts.Input != nil {
			in = opts.Input
		}
		var out io.Writer = os.Stdout
		if opts.Output != nil {
			out = opts.Output
		}

		r := stream.NewReader(in)
		b := &streamBackend{Reader: r, Echo: stream.NewEcho(out, stream.WithBell(bell))}
		restore, err := r.MakeRaw()
		switch {
		case err == nil:
			b.restore = restore
		case errors.Is(err, stream.ErrNotTerminal):
		default:
			return nil, err
		}
		logger.Debug("using stream backend (raw=%t)", b.restore != nil)
		return b, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
}
