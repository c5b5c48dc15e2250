package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"cinetheque/internal/dto/request"
	"cinetheque/internal/usecase"
	"cinetheque/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InteractionHandler struct {
	service usecase.InteractionService
	log     *zap.Logger
}

func NewInteractionHandler(service usecase.InteractionService, log *zap.Logger) *InteractionHandler {
	return &InteractionHandler{
		service: service,
		log:     log.With(zap.String("handler", "interaction")),
	}
}

// ToggleLike handles POST /{movieID}/likes/ (protected)
func (h *InteractionHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, err := uuid.Parse(chi.URLParam(r, "movieID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	// An empty body toggles; {"liked": bool} sets the state explicitly.
	var req request.LikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	like, err := h.service.ToggleLike(r.Context(), userID, movieID, req.Liked)
	if err != nil {
		respondServiceError(w, h.log, err, "toggle like")
		return
	}

	utils.ResponseSuccess(w, "success", like)
}

// SetRating handles POST /{movieID}/ratings/ (protected)
func (h *InteractionHandler) SetRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, err := uuid.Parse(chi.URLParam(r, "movieID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	var req request.RatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rating, err := h.service.SetRating(r.Context(), userID, movieID, req.Score)
	if err != nil {
		respondServiceError(w, h.log, err, "set rating")
		return
	}

	utils.ResponseSuccess(w, "success", rating)
}

// GetComments handles GET /{movieID}/comments/ (public)
func (h *InteractionHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	movieID, err := uuid.Parse(chi.URLParam(r, "movieID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 20,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 20)

	comments, err := h.service.GetComments(r.Context(), movieID, req)
	if err != nil {
		respondServiceError(w, h.log, err, "get comments")
		return
	}

	utils.ResponseSuccess(w, "success", comments)
}

// CreateComment handles POST /{movieID}/comments/ (protected)
func (h *InteractionHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movieID, err := uuid.Parse(chi.URLParam(r, "movieID"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid movie ID", nil)
		return
	}

	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.AddComment(r.Context(), userID, movieID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create comment")
		return
	}

	utils.ResponseCreated(w, "success", comment)
}
