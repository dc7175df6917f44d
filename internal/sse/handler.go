package sse

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/WolfJourney_Go/internal/logger"
)

var streamHeaders = map[string]string{
	"Content-Type":      "text/event-stream",
	"Cache-Control":     "no-cache",
	"Connection":        "keep-alive",
	"X-Accel-Buffering": "no",
}

// stream writes framed events to one response and flushes each
type stream struct {
	w   http.ResponseWriter
	rc  *http.ResponseController
	log *slog.Logger
}

func (s stream) send(evt Event) error {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		// unencodable payloads are skipped, the stream stays open
		s.log.Warn(LogMsgWriteError, "type", evt.Type, "error", err)
		return nil
	}
	if _, err := s.w.Write(msg); err != nil {
		return err
	}
	return s.rc.Flush()
}

// Handler streams hub events to one browser tab. ?types=a,b limits the event
// types; a Last-Event-ID header replays what the tab missed while away.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var eventTypes []string
		if raw := r.URL.Query().Get(TypesQueryParam); raw != "" {
			eventTypes = strings.Split(raw, ",")
		}
		lastEventID := r.Header.Get(HeaderLastEventID)

		client := hub.Register(eventTypes, lastEventID)
		if client == nil {
			http.Error(w, LogMsgHubStopped, http.StatusServiceUnavailable)
			return
		}
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		for k, v := range streamHeaders {
			w.Header().Set(k, v)
		}
		out := stream{w: w, rc: http.NewResponseController(w), log: log}
		if err := out.rc.Flush(); errors.Is(err, http.ErrNotSupported) {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}
		// the stream outlives the server's write timeout
		_ = out.rc.SetWriteDeadline(time.Time{})
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes, "last_event_id", lastEventID)

		err := out.send(Event{
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		})

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for err == nil {
			select {
			case <-r.Context().Done():
				return
			case evt, open := <-client.EventChannel:
				if !open {
					return
				}
				err = out.send(evt)
			case <-ticker.C:
				err = out.send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()})
			}
		}
		log.Debug(LogMsgWriteError, "client_id", client.ID, "error", err)
	}
}
