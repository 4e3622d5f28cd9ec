package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	artistmodel "posterapi/internal/domains/artist/model"
	"posterapi/internal/domains/poster/model"
	"posterapi/internal/domains/poster/service"
	"posterapi/internal/shared/response"
)

type PosterHandler struct {
	service service.Service
}

func NewPosterHandler(svc service.Service) *PosterHandler {
	return &PosterHandler{service: svc}
}

// GetAll handles GET /posters/ with the reduced id/title/year shape.
func (h *PosterHandler) GetAll(c *gin.Context) {
	posters, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error.")
		return
	}

	items := make([]model.PosterListItem, 0, len(posters))
	for i := range posters {
		items = append(items, posters[i].ToListItem())
	}

	c.JSON(http.StatusOK, gin.H{"posters": items})
}

// GetByID handles GET /posters/:id with the full field set.
func (h *PosterHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, model.ErrPosterNotFound.Message)
		return
	}

	poster, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"poster": poster.ToResponse()})
}

// Create handles POST /posters/: the artist is resolved by name, reused when
// it already exists.
func (h *PosterHandler) Create(c *gin.Context) {
	var req model.CreatePosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "No data provided.")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	poster, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "New poster added.",
		"poster":  poster.ToResponse(),
	})
}

// CreateForArtist handles POST /artists/:id/poster for an existing artist.
func (h *PosterHandler) CreateForArtist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, artistmodel.ErrArtistNotFound.Message)
		return
	}

	var req model.AddPosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "No data provided.")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	poster, err := h.service.CreateForArtist(c.Request.Context(), id, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "New poster added.",
		"poster":  poster.ToResponse(),
	})
}

func (h *PosterHandler) writeError(c *gin.Context, err error) {
	var pe *model.PosterError
	if errors.As(err, &pe) {
		response.Error(c, model.ToHTTPStatus(err), pe.Message)
		return
	}

	var ae *artistmodel.ArtistError
	if errors.As(err, &ae) {
		response.Error(c, artistmodel.ToHTTPStatus(err), ae.Message)
		return
	}

	var verr validation.Error
	if errors.As(err, &verr) {
		response.ValidationError(c, err)
		return
	}

	response.Error(c, http.StatusInternalServerError, "Internal server error.")
}
