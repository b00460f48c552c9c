package hub

import (
	"context"
	"ctchen222/Cat-Match/internal/events"
	"encoding/json"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (h *Hub) runEventSubscriber(ctx context.Context) {
	slog.InfoContext(ctx, "Event subscriber started", "channel", events.EventsChannel)
	pubsub := h.rdb.Subscribe(ctx, events.EventsChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			slog.Info("Event subscriber stopped")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.handleMessage(ctx, msg.Payload)
		}
	}
}

func (h *Hub) handleMessage(ctx context.Context, raw string) {
	ctx, span := tracer.Start(ctx, "hub.handleEvent", trace.WithAttributes(
		attribute.String("event.channel", events.EventsChannel),
	))
	defer span.End()

	var event events.Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		slog.ErrorContext(ctx, "Could not unmarshal global event", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not unmarshal global event")
		return
	}
	h.dispatch(ctx, event)
}

func (h *Hub) dispatch(ctx context.Context, event events.Event) {
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("event.type", event.Type))

	switch event.Type {
	case events.TypeMatchMade:
		var payload events.MatchMadePayload
		if err := json.Unmarshal(event.Payload, &payload); err != nil {
			slog.ErrorContext(ctx, "Could not unmarshal match_made payload", "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Could not unmarshal match_made payload")
			return
		}
		select {
		case h.deliver <- payload:
		case <-h.done:
		case <-ctx.Done():
		}
	default:
		slog.WarnContext(ctx, "Unknown event type", "event.type", event.Type)
	}
}
