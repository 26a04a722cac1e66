package engine

import "github.com/milk9111/stagerunner/netsync"

// HandleNetEvent turns a relay event into a mode change.
func (c *Context) HandleNetEvent(ev netsync.Event) {
	switch ev.Kind {
	case netsync.EventConnected:
		if ev.Handshake == netsync.KindListen {
			c.Log.Info("spectating another player")
			c.Spectating = true
			c.Demo = false
			c.Playing = true
			c.Transition.Release()
			c.Mode = ModeGame
			return
		}
		c.Log.Info("connected to relay")
		if c.Mode == ModeDialog {
			c.Mode = ModeMenu
		}
	case netsync.EventLost:
		c.Log.Warn("relay stream lost", "error", ev.Err)
		c.Spectating = false
		c.ShowDialog(ev.Message(), "OK")
		c.Connect()
	default:
		c.Log.Warn("relay handshake failed", "kind", ev.Handshake, "error", ev.Err)
		c.ShowDialog(ev.Message(), "OK")
	}
}
