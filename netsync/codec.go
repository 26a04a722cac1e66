package netsync

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Server responses to a handshake line.
const (
	StatusSuccess      = "success"
	StatusInvalidToken = "invalid_token"
)

const terminator = '|'

// Sample is one position update relayed between players.
type Sample struct {
	Stage int
	X, Y  float64
}

// Serialize renders a sample as "<stage> <x> <y>" using the shortest
// representation of each coordinate.
func Serialize(stage int, x, y float64) string {
	return strconv.Itoa(stage) + " " +
		strconv.FormatFloat(x, 'f', -1, 64) + " " +
		strconv.FormatFloat(y, 'f', -1, 64)
}

func Unserialize(s string) (Sample, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Sample{}, fmt.Errorf("netsync: malformed sample %q", s)
	}
	stage, err := strconv.Atoi(fields[0])
	if err != nil {
		return Sample{}, fmt.Errorf("netsync: parse stage %q: %w", fields[0], err)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("netsync: parse x %q: %w", fields[1], err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Sample{}, fmt.Errorf("netsync: parse y %q: %w", fields[2], err)
	}
	if !finite(x) || !finite(y) {
		return Sample{}, fmt.Errorf("netsync: non-finite position in %q", s)
	}
	return Sample{Stage: stage, X: x, Y: y}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s Sample) String() string {
	return Serialize(s.Stage, s.X, s.Y)
}

func ConnectLine(secret string) string {
	return "connect " + secret + string(terminator)
}

func ListenLine(secret string) string {
	return "listen " + secret + string(terminator)
}

func SendLine(s Sample) string {
	return "send " + s.String() + string(terminator)
}

// ScanMessages is a bufio.SplitFunc that yields messages terminated by '|' or
// a newline. Empty messages are skipped.
func ScanMessages(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isTerminator(data[start]) {
		start++
	}
	if i := bytes.IndexAny(data[start:], "|\n"); i >= 0 {
		return start + i + 1, bytes.TrimRight(data[start:start+i], "\r"), nil
	}
	if atEOF {
		if start < len(data) {
			return len(data), bytes.TrimRight(data[start:], "\r"), nil
		}
		return len(data), nil, nil
	}
	return start, nil, nil
}

// ScanStatus is ScanMessages for a handshake reply: when the buffered data
// holds no terminator, all of it is taken as the message.
func ScanStatus(data []byte, atEOF bool) (advance int, token []byte, err error) {
	advance, token, err = ScanMessages(data, atEOF)
	if token != nil || err != nil || advance >= len(data) {
		return advance, token, err
	}
	return len(data), bytes.TrimRight(data[advance:], "\r"), nil
}

var (
	_ bufio.SplitFunc = ScanMessages
	_ bufio.SplitFunc = ScanStatus
)

func isTerminator(b byte) bool {
	return b == terminator || b == '\n'
}
