package presence

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hugolgst/rich-go/client"
)

// Activity is what other players see about this game.
type Activity struct {
	State   string
	Details string
}

// Service publishes the player's activity. Calls never block the game loop.
type Service interface {
	Init() error
	Update(a Activity)
	RunTasks()
	Shutdown()
}

// Nop is a Service that publishes nothing.
type Nop struct{}

func (Nop) Init() error     { return nil }
func (Nop) Update(Activity) {}
func (Nop) RunTasks()       {}
func (Nop) Shutdown()       {}

type backend interface {
	Login(appID string) error
	SetActivity(a client.Activity) error
	Logout()
}

type richBackend struct{}

func (richBackend) Login(appID string) error            { return client.Login(appID) }
func (richBackend) SetActivity(a client.Activity) error { return client.SetActivity(a) }
func (richBackend) Logout()                             { client.Logout() }

// Discord publishes activity over the Discord IPC socket. IPC calls run on a
// worker goroutine; only the newest pending activity is sent.
type Discord struct {
	appID   string
	secrets Secrets
	log     *log.Logger
	backend backend

	pending chan Activity
	errs    chan error
	done    chan struct{}
	start   time.Time
	once    sync.Once
	wg      sync.WaitGroup
}

func NewDiscord(appID string, secrets Secrets, logger *log.Logger) *Discord {
	return newDiscord(appID, secrets, logger, richBackend{})
}

func newDiscord(appID string, secrets Secrets, logger *log.Logger, b backend) *Discord {
	return &Discord{
		appID:   appID,
		secrets: secrets,
		log:     logger,
		backend: b,
		pending: make(chan Activity, 1),
		errs:    make(chan error, 8),
		done:    make(chan struct{}),
	}
}

// Init starts the worker. Login happens on the worker, so a missing Discord
// client shows up later through RunTasks rather than here.
func (d *Discord) Init() error {
	if d == nil {
		return nil
	}
	d.start = time.Now()
	d.wg.Add(1)
	go d.run()
	return nil
}

// Update queues a, replacing any activity not yet sent.
func (d *Discord) Update(a Activity) {
	if d == nil {
		return
	}
	for {
		select {
		case d.pending <- a:
			return
		default:
		}
		select {
		case <-d.pending:
		default:
		}
	}
}

// RunTasks logs errors reported by the worker since the last call.
func (d *Discord) RunTasks() {
	if d == nil {
		return
	}
	for {
		select {
		case err := <-d.errs:
			if d.log != nil {
				d.log.Debug("presence update failed", "error", err)
			}
		default:
			return
		}
	}
}

func (d *Discord) Shutdown() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		close(d.done)
		d.wg.Wait()
	})
}

func (d *Discord) run() {
	defer d.wg.Done()
	if err := d.backend.Login(d.appID); err != nil {
		d.report(err)
		return
	}
	defer d.backend.Logout()
	for {
		select {
		case a := <-d.pending:
			if err := d.backend.SetActivity(d.activity(a)); err != nil {
				d.report(err)
			}
		case <-d.done:
			return
		}
	}
}

func (d *Discord) activity(a Activity) client.Activity {
	start := d.start
	return client.Activity{
		State:      a.State,
		Details:    a.Details,
		LargeImage: "logo",
		LargeText:  "stagerunner",
		Timestamps: &client.Timestamps{Start: &start},
		Party: &client.Party{
			ID:         d.secrets.Match,
			Players:    1,
			MaxPlayers: 1,
		},
		Secrets: &client.Secrets{
			Match:    d.secrets.Match,
			Join:     d.secrets.Join,
			Spectate: d.secrets.Spectate,
		},
	}
}

func (d *Discord) report(err error) {
	select {
	case d.errs <- err:
	default:
	}
}
