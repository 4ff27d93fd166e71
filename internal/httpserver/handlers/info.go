// filepath: internal/httpserver/handlers/info.go
package handlers

import (
	"net/http"
	"sort"

	"mediabridge/internal/models"
)

const serviceName = "mediabridge"

// GetInfo reports the service version, start time and registered channels.
// This is a public endpoint.
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.Channels))
	for name := range h.Channels {
		names = append(names, name)
	}
	sort.Strings(names)

	respondWithJSON(w, http.StatusOK, models.Info{
		ServiceName: serviceName,
		Version:     h.Version,
		UptimeSince: h.StartTime,
		Channels:    names,
	})
}
