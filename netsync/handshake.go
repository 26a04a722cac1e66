package netsync

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Kind is the role requested from the relay.
type Kind int

const (
	// KindConnect registers this game as a source others can spectate.
	KindConnect Kind = iota
	// KindListen follows another player's game.
	KindListen
)

func (k Kind) String() string {
	if k == KindListen {
		return "listen"
	}
	return "connect"
}

// Result is the outcome of one handshake attempt. Session is set only on
// success.
type Result struct {
	Kind    Kind
	Session *Session
	Err     error
}

// Handshaker runs at most one handshake at a time on a background goroutine
// and hands the result back through a buffered channel.
type Handshaker struct {
	dial    Dialer
	addr    string
	timeout time.Duration

	inFlight atomic.Bool
	results  chan Result

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewHandshaker(dial Dialer, addr string, timeout time.Duration) *Handshaker {
	return &Handshaker{
		dial:    dial,
		addr:    addr,
		timeout: timeout,
		results: make(chan Result, 1),
	}
}

// Start begins a handshake. It returns false when one is already running.
func (h *Handshaker) Start(parent context.Context, kind Kind, secret string) bool {
	if !h.inFlight.CompareAndSwap(false, true) {
		return false
	}
	ctx, cancel := context.WithCancel(parent)
	h.mu.Lock()
	h.cancel = cancel
	h.mu.Unlock()

	go func() {
		defer cancel()
		res := h.run(ctx, kind, secret)
		if ctx.Err() != nil && res.Session != nil {
			_ = res.Session.Close()
			res = Result{Kind: kind, Err: ctx.Err()}
		}
		h.results <- res
		h.inFlight.Store(false)
	}()
	return true
}

// Poll returns a finished result without blocking.
func (h *Handshaker) Poll() (Result, bool) {
	select {
	case res := <-h.results:
		return res, true
	default:
		return Result{}, false
	}
}

// Cancel aborts a running handshake. Its result is still delivered.
func (h *Handshaker) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		h.cancel()
	}
}

func (h *Handshaker) run(ctx context.Context, kind Kind, secret string) Result {
	sess, err := Dial(ctx, h.dial, h.addr)
	if err != nil {
		return Result{Kind: kind, Err: err}
	}
	// unblock the read below if the attempt is cancelled
	stop := context.AfterFunc(ctx, func() { _ = sess.Close() })
	defer stop()

	if h.timeout > 0 {
		_ = sess.SetDeadline(time.Now().Add(h.timeout))
	}
	line := ConnectLine(secret)
	if kind == KindListen {
		line = ListenLine(secret)
	}
	if err := sess.WriteLine(line); err != nil {
		_ = sess.Close()
		return Result{Kind: kind, Err: err}
	}
	status, err := sess.ReadStatus()
	if err != nil {
		_ = sess.Close()
		return Result{Kind: kind, Err: err}
	}
	switch status {
	case StatusSuccess:
	case StatusInvalidToken:
		_ = sess.Close()
		return Result{Kind: kind, Err: ErrInvalidToken}
	default:
		_ = sess.Close()
		return Result{Kind: kind, Err: ErrServer}
	}
	_ = sess.SetDeadline(time.Time{})
	return Result{Kind: kind, Session: sess}
}
