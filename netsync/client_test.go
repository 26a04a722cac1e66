package netsync

import (
	"bufio"
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

// pipeServer answers one handshake over net.Pipe and hands back its end of
// the connection.
func pipeServer(t *testing.T, status string) (Dialer, <-chan net.Conn) {
	t.Helper()
	return pipeReply(t, status+"|")
}

// pipeReply writes reply verbatim after the handshake line.
func pipeReply(t *testing.T, reply string) (Dialer, <-chan net.Conn) {
	t.Helper()
	conns := make(chan net.Conn, 1)
	dial := func(ctx context.Context, addr string) (net.Conn, error) {
		client, server := net.Pipe()
		go func() {
			sc := bufio.NewScanner(server)
			sc.Split(ScanMessages)
			if !sc.Scan() {
				return
			}
			_, _ = server.Write([]byte(reply))
			conns <- server
		}()
		return client, nil
	}
	return dial, conns
}

func failingDialer(err error) Dialer {
	return func(ctx context.Context, addr string) (net.Conn, error) {
		return nil, err
	}
}

func waitEvent(t *testing.T, c *Client) Event {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if ev, ok := c.Poll(); ok {
			return ev
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no event delivered")
	return Event{}
}

func TestClientConnect(t *testing.T) {
	dial, conns := pipeServer(t, StatusSuccess)
	c := NewClient(dial, "relay", time.Second)
	defer c.Close()

	if !c.StartHandshake(KindConnect, "secret") {
		t.Fatalf("first handshake should start")
	}
	ev := waitEvent(t, c)
	if ev.Kind != EventConnected || ev.Message() != "" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if !c.Connected() {
		t.Fatalf("client should be connected")
	}
	server := <-conns

	got := make(chan string, 1)
	go func() {
		sc := bufio.NewScanner(server)
		sc.Split(ScanMessages)
		if sc.Scan() {
			got <- sc.Text()
		}
	}()
	if err := c.Send(Sample{Stage: 2, X: 430.5, Y: 512}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if line := <-got; line != "send 2 430.5 512" {
		t.Fatalf("server read %q", line)
	}
}

func TestClientSendFailureDropsSession(t *testing.T) {
	dial, conns := pipeServer(t, StatusSuccess)
	c := NewClient(dial, "relay", time.Second)
	defer c.Close()

	c.StartHandshake(KindConnect, "secret")
	if ev := waitEvent(t, c); ev.Kind != EventConnected {
		t.Fatalf("unexpected event %+v", ev)
	}
	(<-conns).Close()

	err := c.Send(Sample{Stage: 1, X: 1, Y: 1})
	var nerr *Error
	if !errors.As(err, &nerr) || nerr.Place != PlaceWrite {
		t.Fatalf("expected write error, got %v", err)
	}
	if c.Connected() {
		t.Fatalf("failed write should drop the session")
	}
	if !errors.Is(c.Send(Sample{}), ErrNotConnected) {
		t.Fatalf("send without session should report ErrNotConnected")
	}
}

func TestClientHandshakeOutcomes(t *testing.T) {
	cases := []struct {
		name    string
		kind    Kind
		status  string
		dialErr error
		want    EventKind
		message string
	}{
		{"invalid_token", KindListen, StatusInvalidToken, nil, EventRejected, "Invalid token (try observing again)"},
		{"server_error", KindConnect, "boom", nil, EventRejected, "Internal server error"},
		{"dial_failure", KindConnect, "", errors.New("refused"), EventFailed, "Cannot connect to the server (-1 at 1)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dial, _ := pipeServer(t, c.status)
			if c.dialErr != nil {
				dial = failingDialer(c.dialErr)
			}
			client := NewClient(dial, "relay", time.Second)
			defer client.Close()

			client.StartHandshake(c.kind, "secret")
			ev := waitEvent(t, client)
			if ev.Kind != c.want || ev.Message() != c.message {
				t.Fatalf("got %+v (%q)", ev, ev.Message())
			}
			if client.Connected() {
				t.Fatalf("failed handshake must not leave a session")
			}
		})
	}
}

func TestClientRejectsConcurrentHandshake(t *testing.T) {
	block := make(chan struct{})
	dial := func(ctx context.Context, addr string) (net.Conn, error) {
		select {
		case <-block:
		case <-ctx.Done():
		}
		return nil, errors.New("unreachable")
	}
	c := NewClient(dial, "relay", time.Second)
	if !c.StartHandshake(KindConnect, "a") {
		t.Fatalf("first handshake should start")
	}
	if c.StartHandshake(KindConnect, "b") {
		t.Fatalf("second handshake should be refused while one is running")
	}
	close(block)
	waitEvent(t, c)
	c.Close()
}

func TestClientSpectatorStream(t *testing.T) {
	dial, conns := pipeServer(t, StatusSuccess)
	c := NewClient(dial, "relay", time.Second)
	defer c.Close()

	c.StartHandshake(KindListen, "other")
	if ev := waitEvent(t, c); ev.Kind != EventConnected || ev.Handshake != KindListen {
		t.Fatalf("unexpected event %+v", ev)
	}
	server := <-conns
	if _, err := server.Write([]byte("1 10 20|garbage|3 30 40|")); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for {
		if s, ok := c.Latest(); ok && s.Stage == 3 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("newest sample never arrived")
		}
		time.Sleep(time.Millisecond)
	}

	server.Close()
	ev := waitEvent(t, c)
	if ev.Kind != EventLost {
		t.Fatalf("expected lost event, got %+v", ev)
	}
	if ev.Message() != "Error while communicating with the server (-1 at 3)" {
		t.Fatalf("unexpected message %q", ev.Message())
	}
	if c.Connected() {
		t.Fatalf("lost stream should drop the session")
	}
}

func TestClientAcceptsUnterminatedStatus(t *testing.T) {
	dial, conns := pipeReply(t, StatusSuccess)
	c := NewClient(dial, "relay", time.Second)
	defer c.Close()

	c.StartHandshake(KindListen, "secret")
	if ev := waitEvent(t, c); ev.Kind != EventConnected {
		t.Fatalf("unexpected event %+v", ev)
	}
	server := <-conns
	defer server.Close()

	if _, err := server.Write([]byte("3 12 40|")); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if s, ok := c.Latest(); ok {
			if s != (Sample{Stage: 3, X: 12, Y: 40}) {
				t.Fatalf("got sample %+v", s)
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("no sample after an unterminated status")
}

func TestClientCloseAbortsHandshake(t *testing.T) {
	closed := make(chan struct{})
	dial := func(ctx context.Context, addr string) (net.Conn, error) {
		client, server := net.Pipe()
		go func() {
			defer close(closed)
			sc := bufio.NewScanner(server)
			sc.Split(ScanMessages)
			// never answer; the next read fails once the client hangs up
			for sc.Scan() {
			}
		}()
		return client, nil
	}
	c := NewClient(dial, "relay", time.Minute)
	if !c.StartHandshake(KindConnect, "secret") {
		t.Fatalf("handshake should start")
	}
	time.Sleep(10 * time.Millisecond)
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatalf("handshake connection still open after Close")
	}
	if c.Connected() {
		t.Fatalf("closed client reports connected")
	}
}
