package controller

import (
	"ctchen222/Cat-Match/internal/api/response"
	"ctchen222/Cat-Match/internal/api/service"
	"ctchen222/Cat-Match/internal/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// APIController mirrors the listing and the owner view as JSON.
type APIController struct {
	catService service.CatService
	db         *sqlx.DB
}

// NewAPIController creates a new APIController.
func NewAPIController(catService service.CatService, db *sqlx.DB) *APIController {
	return &APIController{catService: catService, db: db}
}

// ListCats handles GET /api/cats?search=.
func (ac *APIController) ListCats(c *gin.Context) {
	cats, err := ac.catService.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		jsonError(c, err)
		return
	}
	response.SuccessResponseList(c, cats)
}

// Relations handles GET /api/cats/:id/relations for the cat's owner.
func (ac *APIController) Relations(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	catID, err := idParam(c, "id")
	if err != nil {
		jsonError(c, err)
		return
	}

	relations, err := ac.catService.Relations(c.Request.Context(), identity.UserID, catID)
	if err != nil {
		jsonError(c, err)
		return
	}
	response.SuccessResponse(c, relations)
}

// Health pings the database.
func (ac *APIController) Health(c *gin.Context) {
	if err := ac.db.PingContext(c.Request.Context()); err != nil {
		response.ErrorResponse(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.SuccessResponse(c, gin.H{"status": "ok"})
}
