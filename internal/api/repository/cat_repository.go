package repository

import (
	"context"
	"ctchen222/Cat-Match/internal/api/models"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("repository.cat")

// A cat is visible only through its earliest photo; cats without one never
// match the inner join.
const catSelect = `
	SELECT
		cats.id,
		cats.name,
		breeds.name AS breed,
		photos.photo_name AS photo,
		COALESCE(cats.gender, '') AS gender,
		cats.city,
		cats.comments AS detail,
		%s
	FROM
		cats
	INNER JOIN
		breeds
	ON
		cats.breed_id = breeds.id
	INNER JOIN
		photos
	ON
		photos.id = (SELECT MIN(p.id) FROM photos p WHERE p.cat_id = cats.id)
`

var (
	publicCatSelect  = fmt.Sprintf(catSelect, "'' AS owner_phone")
	contactCatSelect = fmt.Sprintf(catSelect, "COALESCE(cats.owner_phone, '') AS owner_phone")
	profileCatSelect = fmt.Sprintf(catSelect, "COALESCE(cats.owner_phone, '') AS owner_phone, cats.birth_date, cats.user_id, cats.breed_id")
)

// CatRepository defines the interface for cat data operations.
type CatRepository interface {
	ListCats(ctx context.Context, search string, limit int) ([]models.CatSummary, error)
	ListCatsByOwner(ctx context.Context, userID int64) ([]models.CatSummary, error)
	GetCatProfile(ctx context.Context, id int64) (*models.CatProfile, error)
	GetCatsByIDs(ctx context.Context, ids []int64) ([]models.CatSummary, error)
	ListCandidates(ctx context.Context, breedID, ownerID int64, exclude []int64) ([]models.CatSummary, error)
	GetOwnerID(ctx context.Context, catID int64) (ownerID int64, found bool, err error)
	CreateCat(ctx context.Context, cat *models.NewCat, photoName string) (int64, error)
	DeleteCat(ctx context.Context, catID int64) (photoNames []string, err error)
}

type sqliteCatRepository struct {
	db *sqlx.DB
}

// NewCatRepository creates a new SQLite-based CatRepository.
func NewCatRepository(db *sqlx.DB) CatRepository {
	return &sqliteCatRepository{db: db}
}

// ListCats returns up to limit cats whose name contains search,
// case-insensitively. An empty search lists everything.
func (r *sqliteCatRepository) ListCats(ctx context.Context, search string, limit int) ([]models.CatSummary, error) {
	ctx, span := tracer.Start(ctx, "CatRepository.ListCats", trace.WithAttributes(
		attribute.String("search", search),
		attribute.Int("limit", limit),
	))
	defer span.End()

	cats := []models.CatSummary{}
	var err error
	if search != "" {
		query := publicCatSelect + ` WHERE cats.name LIKE ? ESCAPE '\' ORDER BY cats.id LIMIT ?`
		err = r.db.SelectContext(ctx, &cats, query, "%"+escapeLike(search)+"%", limit)
	} else {
		query := publicCatSelect + ` ORDER BY cats.id LIMIT ?`
		err = r.db.SelectContext(ctx, &cats, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list cats: %w", err)
	}
	return cats, nil
}

// ListCatsByOwner returns every visible cat of one user.
func (r *sqliteCatRepository) ListCatsByOwner(ctx context.Context, userID int64) ([]models.CatSummary, error) {
	ctx, span := tracer.Start(ctx, "CatRepository.ListCatsByOwner", trace.WithAttributes(
		attribute.Int64("user.id", userID),
	))
	defer span.End()

	cats := []models.CatSummary{}
	query := contactCatSelect + ` WHERE cats.user_id = ? ORDER BY cats.id`
	if err := r.db.SelectContext(ctx, &cats, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list cats of user: %w", err)
	}
	return cats, nil
}

// GetCatProfile returns (nil, nil) when the cat does not exist or has no photo.
func (r *sqliteCatRepository) GetCatProfile(ctx context.Context, id int64) (*models.CatProfile, error) {
	ctx, span := tracer.Start(ctx, "CatRepository.GetCatProfile", trace.WithAttributes(
		attribute.Int64("cat.id", id),
	))
	defer span.End()

	query := profileCatSelect + ` WHERE cats.id = ?`

	var cat models.CatProfile
	if err := r.db.GetContext(ctx, &cat, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cat profile: %w", err)
	}
	return &cat, nil
}

// GetCatsByIDs returns the visible cats among ids. No query is issued for an
// empty id list.
func (r *sqliteCatRepository) GetCatsByIDs(ctx context.Context, ids []int64) ([]models.CatSummary, error) {
	cats := []models.CatSummary{}
	if len(ids) == 0 {
		return cats, nil
	}

	ctx, span := tracer.Start(ctx, "CatRepository.GetCatsByIDs", trace.WithAttributes(
		attribute.Int("ids.count", len(ids)),
	))
	defer span.End()

	query, args, err := sqlx.In(contactCatSelect+` WHERE cats.id IN (?) ORDER BY cats.id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build cats query: %w", err)
	}
	if err := r.db.SelectContext(ctx, &cats, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get cats by ids: %w", err)
	}
	return cats, nil
}

// ListCandidates returns same-breed cats of other owners, leaving out exclude.
func (r *sqliteCatRepository) ListCandidates(ctx context.Context, breedID, ownerID int64, exclude []int64) ([]models.CatSummary, error) {
	ctx, span := tracer.Start(ctx, "CatRepository.ListCandidates", trace.WithAttributes(
		attribute.Int64("breed.id", breedID),
		attribute.Int64("user.id", ownerID),
		attribute.Int("exclude.count", len(exclude)),
	))
	defer span.End()

	query := publicCatSelect + ` WHERE cats.breed_id = ? AND cats.user_id != ?`
	args := []any{breedID, ownerID}
	if len(exclude) > 0 {
		query += ` AND cats.id NOT IN (?)`
		args = append(args, exclude)
	}
	query += ` ORDER BY cats.id`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to build candidates query: %w", err)
	}

	cats := []models.CatSummary{}
	if err := r.db.SelectContext(ctx, &cats, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return cats, nil
}

// GetOwnerID looks the cat up regardless of photos.
func (r *sqliteCatRepository) GetOwnerID(ctx context.Context, catID int64) (int64, bool, error) {
	var ownerID int64
	err := r.db.GetContext(ctx, &ownerID, `SELECT user_id FROM cats WHERE id = ?`, catID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get cat owner: %w", err)
	}
	return ownerID, true, nil
}

// CreateCat inserts the cat and, when photoName is set, its photo row in one
// transaction. The photo row references the id of the inserted cat.
func (r *sqliteCatRepository) CreateCat(ctx context.Context, cat *models.NewCat, photoName string) (int64, error) {
	ctx, span := tracer.Start(ctx, "CatRepository.CreateCat")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO
			cats (name, breed_id, birth_date, gender, owner_phone, user_id, city, comments)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?)`,
		cat.Name, cat.BreedID, cat.BirthDate, string(cat.Gender), cat.OwnerPhone, cat.UserID, cat.City, cat.Comments,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cat: %w", err)
	}
	catID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new cat id: %w", err)
	}

	if photoName != "" {
		if _, err := tx.ExecContext(ctx, `INSERT INTO photos (cat_id, photo_name) VALUES (?, ?)`, catID, photoName); err != nil {
			return 0, fmt.Errorf("failed to insert photo: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit cat: %w", err)
	}
	span.SetAttributes(attribute.Int64("cat.id", catID))
	return catID, nil
}

// DeleteCat removes the likes touching the cat, its photo rows and the cat
// row in one transaction, and returns the names of the removed photos.
func (r *sqliteCatRepository) DeleteCat(ctx context.Context, catID int64) ([]string, error) {
	ctx, span := tracer.Start(ctx, "CatRepository.DeleteCat", trace.WithAttributes(
		attribute.Int64("cat.id", catID),
	))
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM likes WHERE main_cat_id = ? OR liked_cat_id = ?`, catID, catID); err != nil {
		return nil, fmt.Errorf("failed to delete likes: %w", err)
	}

	photoNames := []string{}
	if err := tx.SelectContext(ctx, &photoNames, `SELECT photo_name FROM photos WHERE cat_id = ?`, catID); err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE cat_id = ?`, catID); err != nil {
		return nil, fmt.Errorf("failed to delete photos: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cats WHERE id = ?`, catID); err != nil {
		return nil, fmt.Errorf("failed to delete cat: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cat deletion: %w", err)
	}
	return photoNames, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
