package handler

import (
	"log/slog"
	"net/http"

	"github.com/sampleemps-api/internal/domain"
	"github.com/sampleemps-api/internal/dto"
	"github.com/sampleemps-api/internal/service"
)

type DepartmentHandler struct {
	base
	deptService service.DepartmentService
}

func NewDepartmentHandler(deptService service.DepartmentService, logger *slog.Logger) *DepartmentHandler {
	return &DepartmentHandler{
		base:        newBase(logger),
		deptService: deptService,
	}
}

func (h *DepartmentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	departments, err := h.deptService.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.DepartmentResponse, len(departments))
	for i := range departments {
		resp[i] = toDepartmentResponse(&departments[i])
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DepartmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := h.extractID(r, "departmentid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation Error", err.Error())
		return
	}

	dept, err := h.deptService.GetByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	dept, err := h.deptService.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondCreated(w, r, dept.ID)
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt,
	}
}
