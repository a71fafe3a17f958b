package handlers

import (
	"fleetforge-server/services"
	"fleetforge-server/store"
)

// Shared dependencies used by all handlers.
var (
	Carts   *store.CartStore
	Catalog *store.Catalog
	Relay   *services.FormRelay
)

// InitializeHandlers wires the stores and services the handlers depend on.
func InitializeHandlers(carts *store.CartStore, catalog *store.Catalog, relay *services.FormRelay) {
	Carts = carts
	Catalog = catalog
	Relay = relay
}
