package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posterapi/internal/domains/artist/model"
	"posterapi/internal/domains/artist/service"
)

type stubService struct {
	getAll           func(ctx context.Context) ([]model.Artist, error)
	getDetail        func(ctx context.Context, id uuid.UUID) (*model.ArtistDetail, error)
	createWithSocial func(ctx context.Context, req *model.CreateArtistRequest) (*service.CreateResult, error)
	replaceSocial    func(ctx context.Context, artistID uuid.UUID, req *model.SocialRequest) (*model.Artist, *model.Social, error)
}

func (s *stubService) GetAll(ctx context.Context) ([]model.Artist, error) {
	return s.getAll(ctx)
}

func (s *stubService) GetDetail(ctx context.Context, id uuid.UUID) (*model.ArtistDetail, error) {
	return s.getDetail(ctx, id)
}

func (s *stubService) CreateWithSocial(ctx context.Context, req *model.CreateArtistRequest) (*service.CreateResult, error) {
	return s.createWithSocial(ctx, req)
}

func (s *stubService) ReplaceSocial(ctx context.Context, artistID uuid.UUID, req *model.SocialRequest) (*model.Artist, *model.Social, error) {
	return s.replaceSocial(ctx, artistID, req)
}

func newTestRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArtistHandler(svc)
	r := gin.New()
	r.GET("/artists", h.GetAll)
	r.POST("/artists/", h.Create)
	r.GET("/artists/:id", h.GetByID)
	r.POST("/artists/:id", h.ReplaceSocial)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body []byte) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestCreateArtist(t *testing.T) {
	owner := &model.Artist{ID: uuid.New(), FirstName: "Jane", LastName: "Doe"}
	svc := &stubService{
		createWithSocial: func(ctx context.Context, req *model.CreateArtistRequest) (*service.CreateResult, error) {
			return &service.CreateResult{
				Social: &model.Social{ArtistID: owner.ID, Website: req.Website},
				Owner:  owner,
			}, nil
		},
	}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodPost, "/artists/",
		[]byte(`{"artist":"Jane Doe","website":"https://jane.example"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "New artist added.", body["message"])

	artist, ok := body["artist"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://jane.example", artist["website"])

	nested, ok := artist["artist"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Doe, Jane", nested["formatted_name"])
}

func TestCreateArtistNoBody(t *testing.T) {
	r := newTestRouter(&stubService{})

	w, body := doJSON(t, r, http.MethodPost, "/artists/", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No data provided.", body["Error"])
}

func TestCreateArtistUnsplittableName(t *testing.T) {
	r := newTestRouter(&stubService{})

	w, body := doJSON(t, r, http.MethodPost, "/artists/", []byte(`{"artist":"Prince"}`))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errs, ok := body["errors"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, errs, "artist")
}

func TestCreateArtistDuplicate(t *testing.T) {
	svc := &stubService{
		createWithSocial: func(ctx context.Context, req *model.CreateArtistRequest) (*service.CreateResult, error) {
			return nil, model.ErrArtistExists
		},
	}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodPost, "/artists/", []byte(`{"artist":"Jane Doe"}`))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Artist data already exist.", body["Error"])
}

func TestGetArtistByID(t *testing.T) {
	artist := &model.Artist{ID: uuid.New(), FirstName: "Jane", LastName: "Doe"}
	svc := &stubService{
		getDetail: func(ctx context.Context, id uuid.UUID) (*model.ArtistDetail, error) {
			return &model.ArtistDetail{Artist: artist}, nil
		},
	}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodGet, "/artists/"+artist.ID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	got, ok := body["artist"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Doe, Jane", got["formatted_name"])
	assert.Nil(t, body["social"])

	// No posters still serializes as an empty list, not null.
	posters, ok := body["posters"].([]any)
	require.True(t, ok)
	assert.Empty(t, posters)
}

func TestGetArtistByIDInvalidID(t *testing.T) {
	r := newTestRouter(&stubService{})

	w, body := doJSON(t, r, http.MethodGet, "/artists/not-a-uuid", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Artist could not be found.", body["Error"])
}

func TestGetArtistByIDUnknown(t *testing.T) {
	svc := &stubService{
		getDetail: func(ctx context.Context, id uuid.UUID) (*model.ArtistDetail, error) {
			return nil, model.ErrArtistNotFound
		},
	}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodGet, "/artists/"+uuid.NewString(), nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Artist could not be found.", body["Error"])
}

func TestReplaceSocial(t *testing.T) {
	artist := &model.Artist{ID: uuid.New(), FirstName: "Jane", LastName: "Doe"}
	svc := &stubService{
		replaceSocial: func(ctx context.Context, artistID uuid.UUID, req *model.SocialRequest) (*model.Artist, *model.Social, error) {
			return artist, &model.Social{ArtistID: artistID, Website: req.Website}, nil
		},
	}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodPost, "/artists/"+artist.ID.String(),
		[]byte(`{"website":"https://new.example"}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Artist social links updated.", body["message"])

	social, ok := body["social"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://new.example", social["website"])
}

func TestGetAllArtists(t *testing.T) {
	svc := &stubService{
		getAll: func(ctx context.Context) ([]model.Artist, error) {
			return []model.Artist{
				{ID: uuid.New(), FirstName: "Jane", LastName: "Doe"},
				{ID: uuid.New(), FirstName: "John", LastName: "Smith"},
			}, nil
		},
	}
	r := newTestRouter(svc)

	w, body := doJSON(t, r, http.MethodGet, "/artists", nil)

	require.Equal(t, http.StatusOK, w.Code)
	artists, ok := body["artists"].([]any)
	require.True(t, ok)
	assert.Len(t, artists, 2)
}
