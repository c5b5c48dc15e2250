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

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// GetActors handles GET /actors/ (public)
func (h *ActorHandler) GetActors(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 20,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 20)

	actors, err := h.service.GetActors(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "get actors")
		return
	}

	utils.ResponseSuccess(w, "success", actors)
}

// GetActorByID handles GET /actors/{id}/ (public)
func (h *ActorHandler) GetActorByID(w http.ResponseWriter, r *http.Request) {
	actorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid actor ID", nil)
		return
	}

	actor, err := h.service.GetActorByID(r.Context(), actorID)
	if err != nil {
		respondServiceError(w, h.log, err, "get actor by ID")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// CreateActor handles POST /admin/actors (admin only)
func (h *ActorHandler) CreateActor(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	actor, err := h.service.CreateActor(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "success", actor)
}

// UpdateActor handles PUT /admin/actors/{id} (admin only)
func (h *ActorHandler) UpdateActor(w http.ResponseWriter, r *http.Request) {
	actorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid actor ID", nil)
		return
	}

	var req request.ActorUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	actor, err := h.service.UpdateActor(r.Context(), actorID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update actor")
		return
	}

	utils.ResponseSuccess(w, "success", actor)
}

// DeleteActor handles DELETE /admin/actors/{id} (admin only)
func (h *ActorHandler) DeleteActor(w http.ResponseWriter, r *http.Request) {
	actorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid actor ID", nil)
		return
	}

	if err := h.service.DeleteActor(r.Context(), actorID); err != nil {
		respondServiceError(w, h.log, err, "delete actor")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
