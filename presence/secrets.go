package presence

import (
	"crypto/rand"
	"math/big"
	"sync"

	"golang.design/x/clipboard"
)

const (
	secretLength   = 24
	secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Secrets identify this game session to the presence service and the relay.
type Secrets struct {
	Match    string
	Join     string
	Spectate string
}

func NewSecrets() Secrets {
	return Secrets{
		Match:    RandomString(secretLength),
		Join:     RandomString(secretLength),
		Spectate: RandomString(secretLength),
	}
}

// RandomString returns n characters drawn from letters and digits.
func RandomString(n int) string {
	max := big.NewInt(int64(len(secretAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = secretAlphabet[idx.Int64()]
	}
	return string(b)
}

// Clipboard shares the spectate secret so a friend can follow this game.
type Clipboard struct {
	once sync.Once
	err  error
}

func (c *Clipboard) Copy(s string) error {
	c.once.Do(func() {
		c.err = clipboard.Init()
	})
	if c.err != nil {
		return c.err
	}
	clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
