package sse

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WolfJourney_Go/internal/metrics"
)

// Event is one message on the stream. ID is the broadcast sequence number and
// is empty for events the stream generates itself.
type Event struct {
	ID        string      `json:"id,omitempty"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected browser tab
type Client struct {
	ID           string
	EventChannel chan Event
	// nil receives every type
	EventFilter map[string]bool
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Hub fans broadcast events out to clients and keeps the latest event of each
// type so a client that reconnects catches up on session and game progress.
type Hub struct {
	mu       sync.Mutex
	clients  map[string]*Client
	latest   map[string]Event
	stopped  bool
	seq      atomic.Uint64
	events   chan Event
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHub creates a hub; call Start before broadcasting
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		latest:   make(map[string]Event),
		events:   make(chan Event, BroadcastBufferSize),
		shutdown: make(chan struct{}),
	}
}

// Start runs the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case evt := <-h.events:
				h.deliver(evt)
			case <-h.shutdown:
				return
			}
		}
	}()
}

// Stop ends delivery and closes every client channel. Safe to call twice.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.stopped = true
		for id, client := range h.clients {
			close(client.EventChannel)
			delete(h.clients, id)
		}
		h.mu.Unlock()
		metrics.SSEClients.Set(0)
	})
}

// Register connects a client. Retained events newer than lastEventID and
// matching the filter are queued for it first. Returns nil after Stop.
func (h *Hub) Register(eventTypes []string, lastEventID string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.EventFilter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.EventFilter[t] = true
		}
	}
	// unparsable ids replay everything retained
	after, _ := strconv.ParseUint(lastEventID, 10, 64)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return nil
	}
	for _, evt := range h.replayLocked(client, after) {
		client.EventChannel <- evt
	}
	h.clients[client.ID] = client
	metrics.SSEClients.Inc()
	return client
}

// replayLocked returns retained events for client in broadcast order
func (h *Hub) replayLocked(client *Client, after uint64) []Event {
	var out []Event
	for eventType, evt := range h.latest {
		if !client.wants(eventType) || sequence(evt) <= after {
			continue
		}
		out = append(out, evt)
	}
	sort.Slice(out, func(i, j int) bool { return sequence(out[i]) < sequence(out[j]) })
	if len(out) > cap(client.EventChannel) {
		out = out[len(out)-cap(client.EventChannel):]
	}
	return out
}

// Unregister disconnects a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	client, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(client.EventChannel)
	delete(h.clients, clientID)
	metrics.SSEClients.Dec()
}

// Broadcast stamps the next sequence number on an event and queues it. The
// event is dropped when the delivery buffer is full.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	evt := Event{
		ID:        strconv.FormatUint(h.seq.Add(1), 10),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
	select {
	case h.events <- evt:
	default:
		slog.Warn(LogMsgEventDropped, "type", eventType, "id", evt.ID)
	}
}

func (h *Hub) deliver(evt Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest[evt.Type] = evt
	for _, client := range h.clients {
		if !client.wants(evt.Type) {
			continue
		}
		// a slow tab misses live events and catches up on reconnect
		select {
		case client.EventChannel <- evt:
		default:
			slog.Debug(LogMsgClientLagging, "client_id", client.ID, "type", evt.Type)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event in text/event-stream framing. The id
// line is written only for sequenced events so keepalives leave the
// browser's Last-Event-ID untouched.
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if evt.ID != "" {
		buf.WriteString("id: " + evt.ID + "\n")
	}
	buf.WriteString("event: " + evt.Type + "\n")
	buf.WriteString("data: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}

func sequence(evt Event) uint64 {
	n, _ := strconv.ParseUint(evt.ID, 10, 64)
	return n
}
