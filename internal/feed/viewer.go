package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/example/feedviewer/internal/config"
	"github.com/example/feedviewer/internal/logging"
)

// Surface is the image element frames are painted into.
type Surface interface {
	SetSrc(src string)
}

// Page looks up the display surface. A missing element is reported as nil.
type Page interface {
	QueryImageByAlt(alt string) Surface
}

// Stream is a receive-only view of the feed connection.
type Stream interface {
	Receive() (string, error)
	Close() error
}

type DialFunc func(ctx context.Context, url string) (Stream, error)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type State int32

const (
	Connecting State = iota
	Open
	Closed
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

var ErrNotStarted = errors.New("feed: viewer not started")

type Option func(*Viewer)

func WithLogger(l Logger) Option {
	return func(v *Viewer) {
		v.log = l
	}
}

// Viewer binds one feed stream to one display surface.
type Viewer struct {
	cfg  config.Config
	page Page
	dial DialFunc
	log  Logger

	once    sync.Once
	started atomic.Bool
	state   atomic.Int32
	surface Surface
	done    chan struct{}
	err     error
}

func New(cfg config.Config, page Page, dial DialFunc, opts ...Option) *Viewer {
	v := &Viewer{
		cfg:  cfg,
		page: page,
		dial: dial,
		log:  logging.Default(),
		done: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Start locates the surface and opens the stream. Only the first call has
// any effect. Cancelling ctx tears the stream down.
func (v *Viewer) Start(ctx context.Context) {
	v.once.Do(func() {
		if v.page != nil {
			v.surface = v.page.QueryImageByAlt(v.cfg.SurfaceAlt)
		}
		v.started.Store(true)
		go v.run(ctx)
	})
}

// Wait blocks until the close event has been handled and returns the error
// that ended the stream. Clean closes and cancellation report nil.
func (v *Viewer) Wait() error {
	if !v.started.Load() {
		return ErrNotStarted
	}
	<-v.done
	return v.err
}

func (v *Viewer) Done() <-chan struct{} {
	return v.done
}

func (v *Viewer) State() State {
	return State(v.state.Load())
}

func (v *Viewer) run(ctx context.Context) {
	defer close(v.done)

	stream, err := v.dial(ctx, v.cfg.FeedURL)
	if err != nil {
		if ctx.Err() == nil {
			v.err = fmt.Errorf("dial %s: %w", v.cfg.FeedURL, err)
		}
		v.onClose(v.err)
		return
	}

	stop := context.AfterFunc(ctx, func() {
		stream.Close()
	})
	defer stop()

	v.onOpen()
	for {
		payload, err := stream.Receive()
		if err != nil {
			stream.Close()
			if ctx.Err() == nil && !isCleanClose(err) {
				v.err = fmt.Errorf("receive: %w", err)
			}
			v.onClose(v.err)
			return
		}
		v.onMessage(FrameMessage{Payload: payload})
	}
}

func (v *Viewer) onOpen() {
	v.state.Store(int32(Open))
	v.log.Infof("WebSocket connection opened.")
}

func (v *Viewer) onMessage(msg FrameMessage) {
	if v.surface == nil {
		return
	}
	v.surface.SetSrc(DataURI(msg))
}

func (v *Viewer) onClose(err error) {
	v.state.Store(int32(Closed))
	if err != nil {
		v.log.Errorf("WebSocket closed: %v", err)
		return
	}
	v.log.Errorf("WebSocket closed")
}

func isCleanClose(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}
