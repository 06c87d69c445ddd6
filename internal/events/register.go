// Package events wires the Discord gateway events into the quota engine and
// the guild utilities (sticky messages, member counter).
package events

import (
	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/logger"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
)

// Handlers carries the dependencies every event handler needs. The quota
// service and the stores are passed in explicitly; handlers never reach for
// globals.
type Handlers struct {
	client *discord.ExtendedClient
	svc    *quota.Service
	stores *database.Stores
}

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, svc *quota.Service, stores *database.Stores) *Handlers {
	logger.System("Registering bot events...", "Events")

	h := &Handlers{
		client: client,
		svc:    svc,
		stores: stores,
	}

	h.registerReadyEvents()
	h.registerGuildEvents()
	h.registerMessageEvents()
	h.registerMemberEvents()

	logger.Success("All events registered", "Events")
	return h
}
