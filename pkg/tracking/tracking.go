package tracking

import (
	"net/http"

	"github.com/hopecreatives/officialhope/pkg/types"
)

// Tracking receives storefront interaction events. Implementations must never
// block a request; publishing failures are logged and dropped.
type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackSearch(sessionId string, filters types.FilterSnapshot, results int, r *http.Request)
	TrackProductView(sessionId string, slug string)
	TrackIntent(sessionId string, slug string, action string, quantity int)
}
