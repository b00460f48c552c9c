package models

// Gender is the two-value domain code stored on a cat, plus unspecified.
type Gender string

const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderUnspecified Gender = "U"
)

// Label returns the display label. Unrecognized codes map to "".
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return ""
	}
}

// Breed is a row of the fixed breed lookup.
type Breed struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// CatSummary is one cat joined with its breed name and first photo.
type CatSummary struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Breed      string `db:"breed" json:"breed"`
	Photo      string `db:"photo" json:"photo"`
	Gender     Gender `db:"gender" json:"gender"`
	City       string `db:"city" json:"city"`
	Detail     string `db:"detail" json:"detail"`
	OwnerPhone string `db:"owner_phone" json:"owner_phone,omitempty"`
}

// GenderLabel is used by the templates.
func (c CatSummary) GenderLabel() string {
	return c.Gender.Label()
}

// CatProfile is the full profile of one cat.
type CatProfile struct {
	CatSummary
	BirthDate string `db:"birth_date" json:"birth_date"`
	UserID    int64  `db:"user_id" json:"user_id"`
	BreedID   int64  `db:"breed_id" json:"breed_id"`
}

// CatRelations is what the owner sees on a cat's profile.
type CatRelations struct {
	Cat        CatProfile   `json:"cat"`
	Liked      []CatSummary `json:"liked"`
	Asked      []CatSummary `json:"asked"`
	Matched    []CatSummary `json:"matched"`
	Candidates []CatSummary `json:"candidates"`
}

// NewCat is a cat ready to be inserted.
type NewCat struct {
	Name       string
	BreedID    int64
	BirthDate  string
	Gender     Gender
	OwnerPhone string
	UserID     int64
	City       string
	Comments   string
}

// CreateCatRequest is the new-cat form. The photo is bound separately.
type CreateCatRequest struct {
	Name         string `form:"name" validate:"required,max=100"`
	Breed        string `form:"breed" validate:"required"`
	Gender       string `form:"gender" validate:"required,oneof=M F U"`
	City         string `form:"city" validate:"required,max=100"`
	ContactPhone string `form:"contact_phone" validate:"required,phone10"`
	DateOfBirth  string `form:"date_of_birth" validate:"required,isodate"`
	Comments     string `form:"comments" validate:"max=2000"`
}

// Photo is a stored photo file of a cat.
type Photo struct {
	ID        int64  `db:"id"`
	CatID     int64  `db:"cat_id"`
	PhotoName string `db:"photo_name"`
}

// Like is a directed expression of interest from MainCatID towards LikedCatID.
type Like struct {
	MainCatID  int64 `db:"main_cat_id" json:"main_cat_id"`
	LikedCatID int64 `db:"liked_cat_id" json:"liked_cat_id"`
}
