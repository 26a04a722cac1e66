package assets

import (
	"encoding/binary"
	"math"
)

const (
	SampleRate = 44100
	// bytes per stereo frame of 16-bit samples
	frameBytes = 4
)

// melody in semitones above A3, one entry per eighth note
var melody = []int{0, 3, 7, 12, 7, 3, 5, 8, 12, 15, 12, 8, 3, 7, 10, 15}

const noteSeconds = 0.18

// MusicPCM synthesizes the looping background theme as 16-bit little-endian
// stereo PCM at SampleRate.
func MusicPCM() []byte {
	perNote := int(noteSeconds * SampleRate)
	buf := make([]byte, len(melody)*perNote*frameBytes)
	for n, semis := range melody {
		freq := 220 * math.Pow(2, float64(semis)/12)
		for i := 0; i < perNote; i++ {
			// linear decay keeps note boundaries from clicking
			env := 1 - float64(i)/float64(perNote)
			phase := 2 * math.Pi * freq * float64(i) / SampleRate
			v := int16(math.Sin(phase) * env * 0.25 * math.MaxInt16)
			off := (n*perNote + i) * frameBytes
			binary.LittleEndian.PutUint16(buf[off:], uint16(v))
			binary.LittleEndian.PutUint16(buf[off+2:], uint16(v))
		}
	}
	return buf
}
