package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"posterapi/internal/domains/artist/model"
	"posterapi/internal/domains/artist/service"
	"posterapi/internal/shared/response"
)

type ArtistHandler struct {
	service service.Service
}

func NewArtistHandler(svc service.Service) *ArtistHandler {
	return &ArtistHandler{service: svc}
}

// GetAll handles GET /artists.
func (h *ArtistHandler) GetAll(c *gin.Context) {
	artists, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	resp := make([]model.ArtistResponse, 0, len(artists))
	for i := range artists {
		resp = append(resp, *artists[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"artists": resp})
}

// GetByID handles GET /artists/:id, returning the artist together with its
// social links and poster list.
func (h *ArtistHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, model.ErrArtistNotFound.Message)
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var social *model.SocialResponse
	if detail.Social != nil {
		social = detail.Social.ToResponse(detail.Artist)
	}

	posters := detail.Posters
	if posters == nil {
		posters = make([]model.ArtistPoster, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"artist":  detail.Artist.ToResponse(),
		"social":  social,
		"posters": posters,
	})
}

// Create handles POST /artists/: strict artist creation plus social links.
func (h *ArtistHandler) Create(c *gin.Context) {
	var req model.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "No data provided.")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	result, err := h.service.CreateWithSocial(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "New artist added.",
		"artist":  result.Social.ToResponse(result.Owner),
	})
}

// ReplaceSocial handles POST /artists/:id, swapping the social row wholesale.
func (h *ArtistHandler) ReplaceSocial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, model.ErrArtistNotFound.Message)
		return
	}

	var req model.SocialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "No data provided.")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	artist, social, err := h.service.ReplaceSocial(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artist social links updated.",
		"artist":  artist.ToResponse(),
		"social":  social.ToResponse(artist),
	})
}

func (h *ArtistHandler) writeError(c *gin.Context, err error) {
	var ae *model.ArtistError
	if errors.As(err, &ae) {
		response.Error(c, model.ToHTTPStatus(err), ae.Message)
		return
	}

	var verr validation.Error
	if errors.As(err, &verr) {
		response.ValidationError(c, err)
		return
	}

	response.Error(c, http.StatusInternalServerError, "Internal server error.")
}
