package service

import (
	"context"
	"ctchen222/Cat-Match/internal/api/models"
	"ctchen222/Cat-Match/internal/api/repository"
	"ctchen222/Cat-Match/internal/api/response"
	"ctchen222/Cat-Match/internal/match"
	"ctchen222/Cat-Match/internal/storage"
	"ctchen222/Cat-Match/internal/validator"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ListingLimit caps the public listing.
const ListingLimit = 100

var tracer = otel.Tracer("service")

// PhotoUpload is an uploaded photo file.
type PhotoUpload struct {
	Filename string
	Content  io.Reader
}

// CatService defines the interface for cat-related business logic.
type CatService interface {
	List(ctx context.Context, search string) ([]models.CatSummary, error)
	ListByOwner(ctx context.Context, userID int64) ([]models.CatSummary, error)
	Breeds(ctx context.Context) ([]models.Breed, error)
	Create(ctx context.Context, ownerID int64, req *models.CreateCatRequest, photo *PhotoUpload) (int64, error)
	Delete(ctx context.Context, actorID, catID int64) error
	// Profile returns the cat and, when viewerID owns it, its relations.
	Profile(ctx context.Context, viewerID, catID int64) (*models.CatProfile, *models.CatRelations, error)
	// Relations is Profile restricted to the owner.
	Relations(ctx context.Context, viewerID, catID int64) (*models.CatRelations, error)
}

type catService struct {
	catRepo   repository.CatRepository
	breedRepo repository.BreedRepository
	likeRepo  repository.LikeRepository
	photos    storage.PhotoStore
}

// NewCatService creates a new CatService.
func NewCatService(catRepo repository.CatRepository, breedRepo repository.BreedRepository, likeRepo repository.LikeRepository, photos storage.PhotoStore) CatService {
	return &catService{
		catRepo:   catRepo,
		breedRepo: breedRepo,
		likeRepo:  likeRepo,
		photos:    photos,
	}
}

func (s *catService) List(ctx context.Context, search string) ([]models.CatSummary, error) {
	return s.catRepo.ListCats(ctx, strings.TrimSpace(search), ListingLimit)
}

func (s *catService) ListByOwner(ctx context.Context, userID int64) ([]models.CatSummary, error) {
	return s.catRepo.ListCatsByOwner(ctx, userID)
}

func (s *catService) Breeds(ctx context.Context) ([]models.Breed, error) {
	return s.breedRepo.ListBreeds(ctx)
}

// Create validates the form, stores the photo and inserts the cat. The photo
// file is removed again when the insert fails.
func (s *catService) Create(ctx context.Context, ownerID int64, req *models.CreateCatRequest, photo *PhotoUpload) (int64, error) {
	ctx, span := tracer.Start(ctx, "CatService.Create", trace.WithAttributes(
		attribute.Int64("user.id", ownerID),
	))
	defer span.End()

	trimCatRequest(req)
	fields := models.FieldErrors(validator.FieldErrors(req))

	var breed *models.Breed
	if _, bad := fields["breed"]; !bad && req.Breed != "" {
		var err error
		breed, err = s.breedRepo.GetBreedByName(ctx, req.Breed)
		if err != nil {
			return 0, err
		}
		if breed == nil {
			if fields == nil {
				fields = models.FieldErrors{}
			}
			fields["breed"] = "Unknown breed"
		}
	}
	if len(fields) > 0 {
		return 0, &models.ValidationError{Fields: fields}
	}

	var photoName string
	if photo != nil {
		name, err := s.photos.Save(ctx, photo.Filename, photo.Content)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to save photo")
			return 0, err
		}
		photoName = name
	}

	catID, err := s.catRepo.CreateCat(ctx, &models.NewCat{
		Name:       req.Name,
		BreedID:    breed.ID,
		BirthDate:  req.DateOfBirth,
		Gender:     models.Gender(req.Gender),
		OwnerPhone: req.ContactPhone,
		UserID:     ownerID,
		City:       req.City,
		Comments:   req.Comments,
	}, photoName)
	if err != nil {
		if photoName != "" {
			s.photos.Remove(ctx, photoName)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create cat")
		return 0, err
	}

	slog.InfoContext(ctx, "Cat created", "cat.id", catID, "user.id", ownerID, "photo", photoName != "")
	return catID, nil
}

// Delete removes the cat with its likes and photos. Only the owner may delete.
func (s *catService) Delete(ctx context.Context, actorID, catID int64) error {
	ctx, span := tracer.Start(ctx, "CatService.Delete", trace.WithAttributes(
		attribute.Int64("user.id", actorID),
		attribute.Int64("cat.id", catID),
	))
	defer span.End()

	if err := s.requireOwner(ctx, actorID, catID); err != nil {
		return err
	}

	photoNames, err := s.catRepo.DeleteCat(ctx, catID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete cat")
		return err
	}
	for _, name := range photoNames {
		s.photos.Remove(ctx, name)
	}

	slog.InfoContext(ctx, "Cat deleted", "cat.id", catID, "user.id", actorID, "photos", len(photoNames))
	return nil
}

func (s *catService) Profile(ctx context.Context, viewerID, catID int64) (*models.CatProfile, *models.CatRelations, error) {
	cat, err := s.catRepo.GetCatProfile(ctx, catID)
	if err != nil {
		return nil, nil, err
	}
	if cat == nil {
		return nil, nil, fmt.Errorf("cat %d: %w", catID, response.ErrNotFound)
	}
	if cat.UserID != viewerID {
		return cat, nil, nil
	}

	relations, err := s.relations(ctx, cat)
	if err != nil {
		return nil, nil, err
	}
	return cat, relations, nil
}

func (s *catService) Relations(ctx context.Context, viewerID, catID int64) (*models.CatRelations, error) {
	cat, relations, err := s.Profile(ctx, viewerID, catID)
	if err != nil {
		return nil, err
	}
	if relations == nil {
		return nil, fmt.Errorf("cat %d belongs to another user: %w", cat.ID, response.ErrForbidden)
	}
	return relations, nil
}

func (s *catService) relations(ctx context.Context, cat *models.CatProfile) (*models.CatRelations, error) {
	ctx, span := tracer.Start(ctx, "CatService.relations", trace.WithAttributes(
		attribute.Int64("cat.id", cat.ID),
	))
	defer span.End()

	liked, err := s.likeRepo.LikedBy(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	asked, err := s.likeRepo.AskedBy(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	rel := match.Classify(liked, asked)

	out := &models.CatRelations{Cat: *cat}
	if out.Liked, err = s.catRepo.GetCatsByIDs(ctx, rel.OnlyLiked); err != nil {
		return nil, err
	}
	if out.Asked, err = s.catRepo.GetCatsByIDs(ctx, rel.OnlyAsked); err != nil {
		return nil, err
	}
	if out.Matched, err = s.catRepo.GetCatsByIDs(ctx, rel.Matched); err != nil {
		return nil, err
	}
	if out.Candidates, err = s.catRepo.ListCandidates(ctx, cat.BreedID, cat.UserID, rel.Interacted); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("relations.liked", len(out.Liked)),
		attribute.Int("relations.asked", len(out.Asked)),
		attribute.Int("relations.matched", len(out.Matched)),
		attribute.Int("relations.candidates", len(out.Candidates)),
	)
	return out, nil
}

func (s *catService) requireOwner(ctx context.Context, actorID, catID int64) error {
	ownerID, found, err := s.catRepo.GetOwnerID(ctx, catID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("cat %d: %w", catID, response.ErrNotFound)
	}
	if ownerID != actorID {
		return fmt.Errorf("cat %d belongs to another user: %w", catID, response.ErrForbidden)
	}
	return nil
}

func trimCatRequest(req *models.CreateCatRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Breed = strings.TrimSpace(req.Breed)
	req.Gender = strings.TrimSpace(req.Gender)
	req.City = strings.TrimSpace(req.City)
	req.ContactPhone = strings.TrimSpace(req.ContactPhone)
	req.DateOfBirth = strings.TrimSpace(req.DateOfBirth)
	req.Comments = strings.TrimSpace(req.Comments)
}
