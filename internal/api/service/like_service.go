package service

import (
	"context"
	"ctchen222/Cat-Match/internal/api/repository"
	"ctchen222/Cat-Match/internal/api/response"
	"ctchen222/Cat-Match/internal/events"
	"ctchen222/Cat-Match/internal/match"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// LikeService records likes between cats.
type LikeService interface {
	// AddLike records mainCatID → likedCatID on behalf of actorID, who must own
	// mainCatID. matched reports whether this like closed a mutual pair.
	AddLike(ctx context.Context, actorID, mainCatID, likedCatID int64) (matched bool, err error)
}

type likeService struct {
	catRepo   repository.CatRepository
	likeRepo  repository.LikeRepository
	publisher events.Publisher

	likes   metric.Int64Counter
	matches metric.Int64Counter
}

// NewLikeService creates a new LikeService. A nil publisher drops match events.
func NewLikeService(catRepo repository.CatRepository, likeRepo repository.LikeRepository, publisher events.Publisher) LikeService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	meter := otel.Meter("service.like")
	likes, err := meter.Int64Counter("catmatch.likes", metric.WithDescription("Likes recorded"))
	if err != nil {
		slog.Error("Failed to create likes counter", "error", err)
		likes = noop.Int64Counter{}
	}
	matches, err := meter.Int64Counter("catmatch.matches", metric.WithDescription("Mutual likes formed"))
	if err != nil {
		slog.Error("Failed to create matches counter", "error", err)
		matches = noop.Int64Counter{}
	}

	return &likeService{
		catRepo:   catRepo,
		likeRepo:  likeRepo,
		publisher: publisher,
		likes:     likes,
		matches:   matches,
	}
}

func (s *likeService) AddLike(ctx context.Context, actorID, mainCatID, likedCatID int64) (bool, error) {
	ctx, span := tracer.Start(ctx, "LikeService.AddLike", trace.WithAttributes(
		attribute.Int64("user.id", actorID),
		attribute.Int64("like.main_cat_id", mainCatID),
		attribute.Int64("like.liked_cat_id", likedCatID),
	))
	defer span.End()

	if mainCatID == likedCatID {
		return false, fmt.Errorf("cat %d cannot like itself: %w", mainCatID, response.ErrBadRequest)
	}

	mainOwnerID, found, err := s.catRepo.GetOwnerID(ctx, mainCatID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, fmt.Errorf("cat %d: %w", mainCatID, response.ErrNotFound)
	}
	if mainOwnerID != actorID {
		return false, fmt.Errorf("cat %d belongs to another user: %w", mainCatID, response.ErrForbidden)
	}

	likedOwnerID, found, err := s.catRepo.GetOwnerID(ctx, likedCatID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, fmt.Errorf("cat %d: %w", likedCatID, response.ErrNotFound)
	}

	inserted, err := s.likeRepo.AddLike(ctx, mainCatID, likedCatID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to add like")
		return false, err
	}
	if !inserted {
		return false, nil
	}
	s.likes.Add(ctx, 1)

	asked, err := s.likeRepo.AskedBy(ctx, mainCatID)
	if err != nil {
		return false, err
	}
	if !match.IsMatch(likedCatID, asked) {
		return false, nil
	}

	s.matches.Add(ctx, 1)
	span.SetAttributes(attribute.Bool("like.matched", true))
	slog.InfoContext(ctx, "Match made", "main_cat.id", mainCatID, "liked_cat.id", likedCatID)

	event, err := events.NewMatchMade(events.MatchMadePayload{
		MainCatID:    mainCatID,
		LikedCatID:   likedCatID,
		MainOwnerID:  mainOwnerID,
		LikedOwnerID: likedOwnerID,
	})
	if err == nil {
		err = s.publisher.Publish(ctx, event)
	}
	if err != nil {
		// The like is already stored.
		slog.WarnContext(ctx, "Failed to publish match_made event", "error", err)
		span.RecordError(err)
	}
	return true, nil
}
