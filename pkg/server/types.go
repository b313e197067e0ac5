package server

import (
	"github.com/hopecreatives/officialhope/pkg/content"
	"github.com/hopecreatives/officialhope/pkg/links"
	"github.com/hopecreatives/officialhope/pkg/tracking"
)

// WebServer holds the storefront dependencies shared by all client handlers.
// Tracking may be nil when no broker is configured.
type WebServer struct {
	Source   content.Source
	Links    links.WhatsApp
	Tracking tracking.Tracking

	// Shown on the default shop surface, category routes override them.
	StoreTitle       string
	StoreDescription string
	FallbackImage    string
}
