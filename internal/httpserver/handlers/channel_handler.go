// filepath: internal/httpserver/handlers/channel_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"mediabridge/internal/channel"
	"mediabridge/internal/logging"

	"github.com/gorilla/mux"
)

const maxCallBodyBytes = 1 << 20

// InvokeChannel decodes a method call, hands it to the named channel and
// writes the recorded reply.
func (h *Handlers) InvokeChannel(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["channel"]
	ch, ok := h.Channels[name]
	if !ok {
		respondWithError(w, http.StatusNotFound, "Channel not found")
		return
	}

	var call channel.MethodCall
	r.Body = http.MaxBytesReader(w, r.Body, maxCallBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if call.Method == "" {
		respondWithError(w, http.StatusBadRequest, "Missing method name")
		return
	}

	rec := &channel.Recorder{}
	ch.Handle(r.Context(), call, rec)

	switch rec.Reply.Kind {
	case channel.ReplySuccess:
		respondWithJSON(w, http.StatusOK, SuccessResponse{Result: rec.Reply.Value})
	case channel.ReplyError:
		respondWithJSON(w, http.StatusOK, ChannelErrorResponse{Error: ChannelError{
			Code:    rec.Reply.Code,
			Message: rec.Reply.Message,
			Details: rec.Reply.Details,
		}})
	case channel.ReplyNotImplemented:
		respondWithJSON(w, http.StatusNotImplemented, NotImplementedResponse{NotImplemented: true})
	default:
		logging.Log.WithField("channel", name).Errorf("InvokeChannel: no reply for method %q", call.Method)
		respondWithError(w, http.StatusInternalServerError, "Channel handler did not reply")
	}
}
