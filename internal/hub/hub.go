package hub

import (
	"context"
	"ctchen222/Cat-Match/internal/events"
	"ctchen222/Cat-Match/pkg/proto"
	"encoding/json"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("hub")

// Hub keeps the websocket clients of this instance, grouped by user, and
// pushes match notifications to them. With a Redis client, events go through
// Redis pub/sub so every instance sees them; without one they are delivered
// in-process.
type Hub struct {
	rdb        *redis.Client
	clients    map[int64]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	deliver    chan events.MatchMadePayload
	done       chan struct{}
}

// NewHub creates a new hub. rdb may be nil.
func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		rdb:        rdb,
		clients:    make(map[int64]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan events.MatchMadePayload, 64),
		done:       make(chan struct{}),
	}
}

// Run owns the client registry until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.runEventSubscriber(ctx)
	}

	defer func() {
		close(h.done)
		for _, set := range h.clients {
			for c := range set {
				close(c.send)
			}
		}
		h.clients = nil
		slog.Info("Hub stopped")
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			set, ok := h.clients[c.UserID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[c.UserID] = set
			}
			set[c] = struct{}{}
			slog.Debug("Client registered", "user.id", c.UserID, "user.clients", len(set))

		case c := <-h.unregister:
			h.remove(c)

		case payload := <-h.deliver:
			h.notify(payload)
		}
	}
}

// Publish implements events.Publisher.
func (h *Hub) Publish(ctx context.Context, event events.Event) error {
	ctx, span := tracer.Start(ctx, "hub.Publish", trace.WithAttributes(
		attribute.String("event.type", event.Type),
	))
	defer span.End()

	if h.rdb == nil {
		h.dispatch(ctx, event)
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := h.rdb.Publish(ctx, events.EventsChannel, data).Err(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to publish event")
		return err
	}
	return nil
}

// Register returns the register channel.
func (h *Hub) Register() chan<- *Client {
	return h.register
}

// Unregister returns the unregister channel.
func (h *Hub) Unregister() chan<- *Client {
	return h.unregister
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

func (h *Hub) remove(c *Client) {
	set, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
	slog.Debug("Client unregistered", "user.id", c.UserID)
}

func (h *Hub) notify(p events.MatchMadePayload) {
	h.send(p.MainOwnerID, &proto.ServerToClientMessage{
		Type:         events.TypeMatchMade,
		CatID:        p.MainCatID,
		MatchedCatID: p.LikedCatID,
	})
	h.send(p.LikedOwnerID, &proto.ServerToClientMessage{
		Type:         events.TypeMatchMade,
		CatID:        p.LikedCatID,
		MatchedCatID: p.MainCatID,
	})
}

// send queues message for every client of userID. Clients that cannot keep
// up are dropped.
func (h *Hub) send(userID int64, message *proto.ServerToClientMessage) {
	set := h.clients[userID]
	if len(set) == 0 {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		slog.Error("error marshalling message", "error", err)
		return
	}
	for c := range set {
		select {
		case c.send <- data:
		default:
			slog.Warn("Client send buffer full, dropping client", "user.id", userID)
			h.remove(c)
		}
	}
}
