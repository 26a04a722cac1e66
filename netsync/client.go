package netsync

import (
	"context"
	"errors"
	"time"
)

// EventKind classifies what Client.Poll observed.
type EventKind int

const (
	// EventConnected means a handshake succeeded.
	EventConnected EventKind = iota
	// EventRejected means the server answered with a refusal.
	EventRejected
	// EventFailed means the handshake could not complete.
	EventFailed
	// EventLost means an established spectator stream broke.
	EventLost
)

// Event is a state change the game loop reacts to.
type Event struct {
	Kind      EventKind
	Handshake Kind
	Err       error
}

// Message is the dialog text for the event, empty for EventConnected.
func (e Event) Message() string {
	if e.Kind == EventConnected {
		return ""
	}
	return Describe(e.Handshake, e.Err)
}

// Client owns the session with the relay server. All methods except the
// follower's reads run on the game goroutine.
type Client struct {
	hs      *Handshaker
	session *Session
	kind    Kind

	samples  *Mailbox[Sample]
	lost     chan error
	stopRead chan struct{}
}

func NewClient(dial Dialer, addr string, timeout time.Duration) *Client {
	return &Client{hs: NewHandshaker(dial, addr, timeout)}
}

func (c *Client) Connected() bool {
	return c != nil && c.session != nil
}

// StartHandshake begins connecting in the background. It returns false when an
// attempt is already running.
func (c *Client) StartHandshake(kind Kind, secret string) bool {
	if c == nil {
		return false
	}
	return c.hs.Start(context.Background(), kind, secret)
}

// Send publishes this player's position. A failed write drops the session.
func (c *Client) Send(s Sample) error {
	if !c.Connected() {
		return ErrNotConnected
	}
	if err := c.session.WriteLine(SendLine(s)); err != nil {
		c.drop()
		return err
	}
	return nil
}

// Latest returns the newest sample received while spectating, if any arrived
// since the last call.
func (c *Client) Latest() (Sample, bool) {
	if c == nil || c.samples == nil {
		return Sample{}, false
	}
	return c.samples.Take()
}

// Poll reports at most one pending event without blocking.
func (c *Client) Poll() (Event, bool) {
	if c == nil {
		return Event{}, false
	}
	if res, ok := c.hs.Poll(); ok {
		return c.finish(res), true
	}
	if c.lost != nil {
		select {
		case err := <-c.lost:
			kind := c.kind
			c.drop()
			return Event{Kind: EventLost, Handshake: kind, Err: err}, true
		default:
		}
	}
	return Event{}, false
}

func (c *Client) finish(res Result) Event {
	if res.Err != nil {
		kind := EventFailed
		if errors.Is(res.Err, ErrInvalidToken) || errors.Is(res.Err, ErrServer) {
			kind = EventRejected
		}
		return Event{Kind: kind, Handshake: res.Kind, Err: res.Err}
	}
	c.drop()
	c.session = res.Session
	c.kind = res.Kind
	if res.Kind == KindListen {
		c.lost = make(chan error, 1)
		c.stopRead = make(chan struct{})
		c.samples = &Mailbox[Sample]{}
		go follow(res.Session, c.samples, c.lost, c.stopRead)
	}
	return Event{Kind: EventConnected, Handshake: res.Kind}
}

// drop closes the current session and stops its follower.
func (c *Client) drop() {
	if c.stopRead != nil {
		close(c.stopRead)
		c.stopRead = nil
	}
	c.lost = nil
	c.samples = nil
	if c.session != nil {
		_ = c.session.Close()
		c.session = nil
	}
}

// Close cancels any running handshake and closes the session.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	c.hs.Cancel()
	c.drop()
	// a handshake that completed concurrently leaves its session behind
	if res, ok := c.hs.Poll(); ok && res.Session != nil {
		_ = res.Session.Close()
	}
	return nil
}

// follow reads samples until the session breaks or stop is closed.
func follow(sess *Session, box *Mailbox[Sample], lost chan<- error, stop <-chan struct{}) {
	for {
		line, err := sess.ReadLine()
		if err != nil {
			select {
			case <-stop:
			case lost <- err:
			}
			return
		}
		s, err := Unserialize(line)
		if err != nil {
			continue
		}
		box.Put(s)
	}
}
