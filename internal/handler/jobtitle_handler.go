package handler

import (
	"log/slog"
	"net/http"

	"github.com/sampleemps-api/internal/domain"
	"github.com/sampleemps-api/internal/dto"
	"github.com/sampleemps-api/internal/service"
)

type JobTitleHandler struct {
	base
	jobService service.JobTitleService
}

func NewJobTitleHandler(jobService service.JobTitleService, logger *slog.Logger) *JobTitleHandler {
	return &JobTitleHandler{
		base:       newBase(logger),
		jobService: jobService,
	}
}

func (h *JobTitleHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	titles, err := h.jobService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.JobTitleResponse, len(titles))
	for i := range titles {
		resp[i] = toJobTitleResponse(&titles[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *JobTitleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r, "jobtitleid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation Error", err.Error())
		return
	}

	jt, err := h.jobService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toJobTitleResponse(jt))
}

func (h *JobTitleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobTitleRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	jt, err := h.jobService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondCreated(w, r, jt.ID)
}

func toJobTitleResponse(jt *domain.JobTitle) dto.JobTitleResponse {
	return dto.JobTitleResponse{ID: jt.ID, Title: jt.Title}
}
