package repository

import (
	"context"
	"ctchen222/Cat-Match/internal/api/models"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// BreedRepository reads the fixed breed lookup.
type BreedRepository interface {
	ListBreeds(ctx context.Context) ([]models.Breed, error)
	GetBreedByName(ctx context.Context, name string) (*models.Breed, error)
}

type sqliteBreedRepository struct {
	db *sqlx.DB
}

func NewBreedRepository(db *sqlx.DB) BreedRepository {
	return &sqliteBreedRepository{db: db}
}

func (r *sqliteBreedRepository) ListBreeds(ctx context.Context) ([]models.Breed, error) {
	breeds := []models.Breed{}
	if err := r.db.SelectContext(ctx, &breeds, `SELECT id, name FROM breeds ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to list breeds: %w", err)
	}
	return breeds, nil
}

// GetBreedByName returns (nil, nil) when no breed has that name.
func (r *sqliteBreedRepository) GetBreedByName(ctx context.Context, name string) (*models.Breed, error) {
	var breed models.Breed
	err := r.db.GetContext(ctx, &breed, `SELECT id, name FROM breeds WHERE name = ?`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get breed by name: %w", err)
	}
	return &breed, nil
}
