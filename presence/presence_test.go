package presence

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hugolgst/rich-go/client"
)

type fakeBackend struct {
	mu       sync.Mutex
	loginErr error
	sent     []client.Activity
	loggedIn bool
	out      bool
}

func (f *fakeBackend) Login(string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loggedIn = f.loginErr == nil
	return f.loginErr
}

func (f *fakeBackend) SetActivity(a client.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, a)
	return nil
}

func (f *fakeBackend) Logout() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.out = true
}

func (f *fakeBackend) last() (client.Activity, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		return client.Activity{}, 0
	}
	return f.sent[len(f.sent)-1], len(f.sent)
}

func TestDiscordPublishesLatest(t *testing.T) {
	fb := &fakeBackend{}
	secrets := Secrets{Match: "m", Join: "j", Spectate: "s"}
	d := newDiscord("app", secrets, nil, fb)
	if err := d.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	d.Update(Activity{State: "In Main Menu", Details: "Wasting some time"})
	d.Update(Activity{State: "In Game", Details: "Stage 1"})

	deadline := time.Now().Add(5 * time.Second)
	for {
		a, _ := fb.last()
		if a.Details == "Stage 1" {
			if a.Secrets == nil || a.Secrets.Spectate != "s" {
				t.Fatalf("secrets not attached: %+v", a.Secrets)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("latest activity never published")
		}
		time.Sleep(time.Millisecond)
	}

	d.Shutdown()
	d.Shutdown()
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if !fb.out {
		t.Fatalf("shutdown should log out")
	}
}

func TestDiscordLoginFailureIsReported(t *testing.T) {
	fb := &fakeBackend{loginErr: errors.New("no discord")}
	d := newDiscord("app", Secrets{}, nil, fb)
	d.Init()
	d.Shutdown()

	select {
	case err := <-d.errs:
		if err == nil {
			t.Fatalf("expected login error")
		}
	default:
		t.Fatalf("login error was not reported")
	}
	d.RunTasks()
	d.Update(Activity{State: "ignored"})
}

func TestNilAndNop(t *testing.T) {
	var d *Discord
	d.Update(Activity{})
	d.RunTasks()
	d.Shutdown()

	var s Service = Nop{}
	if err := s.Init(); err != nil {
		t.Fatalf("Nop.Init: %v", err)
	}
}

func TestNewSecrets(t *testing.T) {
	s := NewSecrets()
	for _, v := range []string{s.Match, s.Join, s.Spectate} {
		if len(v) != secretLength {
			t.Fatalf("secret %q has length %d", v, len(v))
		}
	}
	if s.Match == s.Spectate {
		t.Fatalf("secrets should differ")
	}
}
