package controller

import (
	"ctchen222/Cat-Match/internal/api/service"
	"ctchen222/Cat-Match/internal/middleware"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LikeController records likes from the profile page.
type LikeController struct {
	likeService service.LikeService
}

// NewLikeController creates a new LikeController.
func NewLikeController(likeService service.LikeService) *LikeController {
	return &LikeController{likeService: likeService}
}

// AddMaybe records a like from cat_id to liked_cat_id and returns to the profile.
func (lc *LikeController) AddMaybe(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	catID, err := idParam(c, "cat_id")
	if err != nil {
		renderError(c, err)
		return
	}
	likedCatID, err := idParam(c, "liked_cat_id")
	if err != nil {
		renderError(c, err)
		return
	}

	if _, err := lc.likeService.AddLike(c.Request.Context(), identity.UserID, catID, likedCatID); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/cats/%d", catID))
}
