package controller

import (
	"ctchen222/Cat-Match/internal/api/models"
	"ctchen222/Cat-Match/internal/api/service"
	"ctchen222/Cat-Match/internal/middleware"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// maxPhotoSize bounds the multipart body of the new-cat form.
const maxPhotoSize = 10 << 20

// CatController serves the cat pages.
type CatController struct {
	catService service.CatService
}

// NewCatController creates a new CatController.
func NewCatController(catService service.CatService) *CatController {
	return &CatController{catService: catService}
}

// Index is the public listing with optional search.
func (cc *CatController) Index(c *gin.Context) {
	search := c.Query("search")
	cats, err := cc.catService.List(c.Request.Context(), search)
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "index", gin.H{"Cats": cats, "Search": search})
}

// Account lists the cats of the logged-in user.
func (cc *CatController) Account(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	cats, err := cc.catService.ListByOwner(c.Request.Context(), identity.UserID)
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, http.StatusOK, "account", gin.H{"Cats": cats})
}

// NewForm shows the new-cat form.
func (cc *CatController) NewForm(c *gin.Context) {
	cc.renderNewForm(c, http.StatusOK, &models.CreateCatRequest{Gender: string(models.GenderUnspecified)}, models.FieldErrors{})
}

// Create stores a new cat with its optional photo.
func (cc *CatController) Create(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoSize)

	var req models.CreateCatRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, badRequest(err))
		return
	}

	var photo *service.PhotoUpload
	header, err := c.FormFile("photo")
	switch {
	case err == nil && header.Filename != "":
		f, err := header.Open()
		if err != nil {
			renderError(c, badRequest(err))
			return
		}
		defer f.Close()
		photo = &service.PhotoUpload{Filename: header.Filename, Content: f}
	case err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		renderError(c, badRequest(err))
		return
	}

	if _, err := cc.catService.Create(c.Request.Context(), identity.UserID, &req, photo); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			cc.renderNewForm(c, http.StatusBadRequest, &req, verr.Fields)
			return
		}
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/account")
}

func (cc *CatController) renderNewForm(c *gin.Context, status int, req *models.CreateCatRequest, fields models.FieldErrors) {
	breeds, err := cc.catService.Breeds(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	render(c, status, "new_cat", gin.H{"Form": req, "Errors": fields, "Breeds": breeds})
}

// Profile shows a cat. Its owner also sees likes, matches and candidates.
func (cc *CatController) Profile(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	catID, err := idParam(c, "id")
	if err != nil {
		renderError(c, err)
		return
	}

	cat, relations, err := cc.catService.Profile(c.Request.Context(), identity.UserID, catID)
	if err != nil {
		renderError(c, err)
		return
	}
	data := gin.H{"Cat": cat}
	if relations != nil {
		data["Relations"] = relations
	}
	render(c, http.StatusOK, "cat_profile", data)
}

// Delete removes one of the user's cats.
func (cc *CatController) Delete(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	catID, err := idParam(c, "cat_id")
	if err != nil {
		renderError(c, err)
		return
	}

	if err := cc.catService.Delete(c.Request.Context(), identity.UserID, catID); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/account")
}
