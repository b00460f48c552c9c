package events

import (
	"context"
	"encoding/json"
)

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

// Event types
const (
	TypeMatchMade = "match_made"
)

// Event represents a global message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// MatchMadePayload is the payload for the "match_made" event: a like from
// MainCatID to LikedCatID closed a mutual pair.
type MatchMadePayload struct {
	MainCatID    int64 `json:"main_cat_id"`
	LikedCatID   int64 `json:"liked_cat_id"`
	MainOwnerID  int64 `json:"main_owner_id"`
	LikedOwnerID int64 `json:"liked_owner_id"`
}

// NewMatchMade wraps p into an Event.
func NewMatchMade(p MatchMadePayload) (Event, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: TypeMatchMade, Payload: payload}, nil
}

// Publisher delivers events to whoever is listening, locally or across instances.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
