package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abertanha/movie-diary/internal/models"
	"github.com/abertanha/movie-diary/internal/services"
)

func TestSuggestMoviesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	t.Run("success returns the suggestion envelope", func(t *testing.T) {
		mockSvc := NewMockSuggester(ctrl)
		mockSvc.EXPECT().
			Search(gomock.Any(), "matrix").
			Return(&models.SuggestionEnvelope{
				Data: models.SuggestionResults{
					Results: []models.Suggestion{{Titulo: "Matrix", Ano: "1999"}},
				},
			}, nil)

		handler := NewSuggestMoviesHandler(mockSvc, authedTokener(ctrl, userID))

		req := httptest.NewRequest(http.MethodGet, "/movie/tmdb/movie?titulo=matrix", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var envelope models.SuggestionEnvelope
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		require.Len(t, envelope.Data.Results, 1)
		assert.Equal(t, "Matrix", envelope.Data.Results[0].Titulo)
	})

	t.Run("missing titulo returns 400", func(t *testing.T) {
		mockSvc := NewMockSuggester(ctrl)
		handler := NewSuggestMoviesHandler(mockSvc, authedTokener(ctrl, userID))

		req := httptest.NewRequest(http.MethodGet, "/movie/tmdb/movie", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resp MovieErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Query parameter titulo is required", resp.Error)
	})

	t.Run("metadata API failure returns 424", func(t *testing.T) {
		mockSvc := NewMockSuggester(ctrl)
		mockSvc.EXPECT().
			Search(gomock.Any(), "matrix").
			Return(nil, services.ErrMetadataUnavailable)

		handler := NewSuggestMoviesHandler(mockSvc, authedTokener(ctrl, userID))

		req := httptest.NewRequest(http.MethodGet, "/movie/tmdb/movie?titulo=matrix", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusFailedDependency, rr.Code)

		var resp MovieErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to fetch movie metadata", resp.Error)
	})

	t.Run("unexpected error returns 500", func(t *testing.T) {
		mockSvc := NewMockSuggester(ctrl)
		mockSvc.EXPECT().
			Search(gomock.Any(), "matrix").
			Return(nil, errors.New("boom"))

		handler := NewSuggestMoviesHandler(mockSvc, authedTokener(ctrl, userID))

		req := httptest.NewRequest(http.MethodGet, "/movie/tmdb/movie?titulo=matrix", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("unauthorized returns 401", func(t *testing.T) {
		mockSvc := NewMockSuggester(ctrl)
		handler := NewSuggestMoviesHandler(mockSvc, deniedTokener(ctrl))

		req := httptest.NewRequest(http.MethodGet, "/movie/tmdb/movie?titulo=matrix", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
