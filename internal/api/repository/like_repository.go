package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LikeRepository defines the interface for like data operations.
type LikeRepository interface {
	// AddLike records mainCatID → likedCatID. Recording an existing pair is a
	// no-op reported by inserted == false.
	AddLike(ctx context.Context, mainCatID, likedCatID int64) (inserted bool, err error)
	// LikedBy returns the cats catID likes.
	LikedBy(ctx context.Context, catID int64) ([]int64, error)
	// AskedBy returns the cats that like catID.
	AskedBy(ctx context.Context, catID int64) ([]int64, error)
}

type sqliteLikeRepository struct {
	db *sqlx.DB
}

// NewLikeRepository creates a new SQLite-based LikeRepository.
func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &sqliteLikeRepository{db: db}
}

func (r *sqliteLikeRepository) AddLike(ctx context.Context, mainCatID, likedCatID int64) (bool, error) {
	ctx, span := tracer.Start(ctx, "LikeRepository.AddLike", trace.WithAttributes(
		attribute.Int64("like.main_cat_id", mainCatID),
		attribute.Int64("like.liked_cat_id", likedCatID),
	))
	defer span.End()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO likes (main_cat_id, liked_cat_id) VALUES (?, ?) ON CONFLICT(main_cat_id, liked_cat_id) DO NOTHING`,
		mainCatID, likedCatID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}
	return n > 0, nil
}

func (r *sqliteLikeRepository) LikedBy(ctx context.Context, catID int64) ([]int64, error) {
	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, `SELECT liked_cat_id FROM likes WHERE main_cat_id = ?`, catID); err != nil {
		return nil, fmt.Errorf("failed to get liked cats: %w", err)
	}
	return ids, nil
}

func (r *sqliteLikeRepository) AskedBy(ctx context.Context, catID int64) ([]int64, error) {
	ids := []int64{}
	if err := r.db.SelectContext(ctx, &ids, `SELECT main_cat_id FROM likes WHERE liked_cat_id = ?`, catID); err != nil {
		return nil, fmt.Errorf("failed to get asking cats: %w", err)
	}
	return ids, nil
}
