package adaptor

import (
	"encoding/json"
	"net/http"

	"cinetheque/internal/dto/request"
	"cinetheque/internal/usecase"
	"cinetheque/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies/ (public)
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 20,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 20)

	movies, err := h.service.GetMovies(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /movies/{id}/ (public, viewer-aware)
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	// Viewer identity is optional; anonymous viewers get user_liked=false
	// and user_rating=null.
	var viewerID *uuid.UUID
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		viewerID = &userID
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID, viewerID)
	if err != nil {
		respondServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// CreateMovie handles POST /admin/movies (admin only)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "success", movie)
}

// UpdateMovie handles PUT /admin/movies/{id} (admin only)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), movieID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// DeleteMovie handles DELETE /admin/movies/{id} (admin only)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	movieID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	if err := h.service.DeleteMovie(r.Context(), movieID); err != nil {
		respondServiceError(w, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
