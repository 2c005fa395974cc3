// Package app assembles the services and registers their event handlers.
package app

import (
	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/realtime"
)

// setupEventBus registers all event handlers with the event bus.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	if bus == nil {
		return
	}

	// Account changes invalidate the cached gateway credentials.
	for _, t := range []string{events.AccountActivated, events.AccountDeactivated} {
		bus.Register(t, a.TransactionService.HandleAccountEvent)
	}

	realtime.Relay(bus, a.Hub)
	a.Deps.Logger.Info("event handlers registered")
}
