package netsync

import (
	"bufio"
	"context"
	"io"
	"net"
	"sync"
	"time"
)

const maxMessage = 4 * 1024

// Session is an established connection to the relay server.
type Session struct {
	conn    net.Conn
	scanner *bufio.Scanner
	wmu     sync.Mutex
	once    sync.Once
	// status switches the scanner to ScanStatus for the handshake reply
	status bool
}

// Dialer opens the transport for a session.
type Dialer func(ctx context.Context, addr string) (net.Conn, error)

func TCPDialer(timeout time.Duration) Dialer {
	d := &net.Dialer{Timeout: timeout}
	return func(ctx context.Context, addr string) (net.Conn, error) {
		return d.DialContext(ctx, "tcp", addr)
	}
}

func Dial(ctx context.Context, dial Dialer, addr string) (*Session, error) {
	conn, err := dial(ctx, addr)
	if err != nil {
		return nil, wrap(PlaceDial, err)
	}
	return NewSession(conn), nil
}

func NewSession(conn net.Conn) *Session {
	s := &Session{conn: conn}
	s.scanner = bufio.NewScanner(conn)
	s.scanner.Buffer(make([]byte, 0, 256), maxMessage)
	s.scanner.Split(s.split)
	return s
}

func (s *Session) split(data []byte, atEOF bool) (int, []byte, error) {
	if s.status {
		return ScanStatus(data, atEOF)
	}
	return ScanMessages(data, atEOF)
}

// WriteLine writes one already-terminated protocol line. Safe for concurrent
// use with ReadLine.
func (s *Session) WriteLine(line string) error {
	s.wmu.Lock()
	defer s.wmu.Unlock()
	if _, err := io.WriteString(s.conn, line); err != nil {
		return wrap(PlaceWrite, err)
	}
	return nil
}

// ReadLine blocks for the next message. Only one goroutine may read.
func (s *Session) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	err := s.scanner.Err()
	if err == nil {
		err = io.EOF
	}
	return "", wrap(PlaceRead, err)
}

// ReadStatus blocks for the server's answer to a handshake line. The relay
// may send it without a terminator, so whatever the first read returns counts
// as the whole answer.
func (s *Session) ReadStatus() (string, error) {
	s.status = true
	defer func() { s.status = false }()
	return s.ReadLine()
}

func (s *Session) SetDeadline(t time.Time) error {
	return s.conn.SetDeadline(t)
}

func (s *Session) Close() error {
	var err error
	s.once.Do(func() {
		err = s.conn.Close()
	})
	return err
}
