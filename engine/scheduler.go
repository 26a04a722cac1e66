package engine

// System advances one concern of the simulation by a tick.
type System interface {
	Update(ctx *Context)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

// Update runs every system in order. It stops early once a system moves the
// engine off the game screen.
func (s *Scheduler) Update(ctx *Context) {
	if s == nil {
		return
	}
	for _, system := range s.systems {
		if ctx.Mode != ModeGame {
			return
		}
		system.Update(ctx)
	}
}
