package handler

import (
	"log/slog"
	"net/http"

	"github.com/sampleemps-api/internal/domain"
	"github.com/sampleemps-api/internal/dto"
	"github.com/sampleemps-api/internal/service"
)

type EmployeeHandler struct {
	base
	empService service.EmployeeService
}

func NewEmployeeHandler(empService service.EmployeeService, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		base:       newBase(logger),
		empService: empService,
	}
}

func (h *EmployeeHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.FindAll(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toEmployeeResponses(employees))
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	emp, err := h.empService.FindByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) ListByName(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.FindByNameContaining(r.Context(), h.pathParam(r, "subname"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toEmployeeResponses(employees))
}

func (h *EmployeeHandler) ListByEmail(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.FindByEmailContaining(r.Context(), h.pathParam(r, "subemail"))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, toEmployeeResponses(employees))
}

// Create добавляет сотрудника; employeeid из тела игнорируется
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	emp, err := h.empService.Save(r.Context(), toEmployee(&req, 0))
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.respondCreated(w, r, emp.ID)
}

// Replace - PUT: полная замена сотрудника
func (h *EmployeeHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	var req dto.EmployeeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.empService.Save(r.Context(), toEmployee(&req, id)); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Update - PATCH: меняются только переданные поля
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	if _, err := h.empService.Update(r.Context(), &req, id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.employeeID(w, r)
	if !ok {
		return
	}

	if err := h.empService.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *EmployeeHandler) JobCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.empService.GetEmpNameCountJobs(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	resp := make([]dto.EmpNameCountJobsResponse, len(counts))
	for i, c := range counts {
		resp[i] = dto.EmpNameCountJobsResponse{Name: c.Name, JobCount: c.JobCount}
	}
	h.respondJSON(w, http.StatusOK, resp)
}

func (h *EmployeeHandler) DeleteJobTitle(w http.ResponseWriter, r *http.Request) {
	params, ok := h.jobTitleParams(w, r, false)
	if !ok {
		return
	}

	if err := h.empService.DeleteEmpJobTitle(r.Context(), params.EmployeeID, params.JobTitleID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *EmployeeHandler) AddJobTitle(w http.ResponseWriter, r *http.Request) {
	params, ok := h.jobTitleParams(w, r, true)
	if !ok {
		return
	}

	if err := h.empService.AddEmpJobTitle(r.Context(), params.EmployeeID, params.JobTitleID, params.Manager); err != nil {
		h.handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *EmployeeHandler) employeeID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := h.extractID(r, "employeeid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation Error", err.Error())
		return 0, false
	}
	return id, true
}

func (h *EmployeeHandler) jobTitleParams(w http.ResponseWriter, r *http.Request, withManager bool) (dto.EmployeeJobTitleParams, bool) {
	var params dto.EmployeeJobTitleParams

	employeeID, ok := h.employeeID(w, r)
	if !ok {
		return params, false
	}

	jobTitleID, err := h.extractID(r, "jobtitleid")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Validation Error", err.Error())
		return params, false
	}

	params.EmployeeID = employeeID
	params.JobTitleID = jobTitleID

	if !withManager {
		return params, true
	}

	params.Manager = h.pathParam(r, "manager")
	return params, h.validate(w, &params)
}

func toEmployee(req *dto.EmployeeRequest, id int64) *domain.Employee {
	emp := &domain.Employee{
		ID:           id,
		Name:         req.Name,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
	}
	for _, jt := range req.JobTitles {
		emp.JobTitles = append(emp.JobTitles, domain.EmployeeJobTitle{
			JobTitleID: jt.JobTitleID,
			Manager:    jt.Manager,
		})
	}
	return emp
}

func toEmployeeResponses(employees []domain.Employee) []dto.EmployeeResponse {
	resp := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		resp[i] = toEmployeeResponse(&employees[i])
	}
	return resp
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		Email:        emp.Email,
		DepartmentID: emp.DepartmentID,
		JobTitles:    make([]dto.EmployeeJobTitleResponse, len(emp.JobTitles)),
	}

	if emp.Department != nil {
		resp.DepartmentName = emp.Department.Name
	}

	for i, link := range emp.JobTitles {
		item := dto.EmployeeJobTitleResponse{
			JobTitleID: link.JobTitleID,
			Manager:    link.Manager,
		}
		if link.JobTitle != nil {
			item.Title = link.JobTitle.Title
		}
		resp.JobTitles[i] = item
	}

	return resp
}
