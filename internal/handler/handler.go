package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/sampleemps-api/internal/domain"
	"github.com/sampleemps-api/internal/dto"
)

// base содержит общие для всех хендлеров зависимости и хелперы ответа
type base struct {
	validator *validator.Validate
	logger    *slog.Logger
}

func newBase(logger *slog.Logger) base {
	v := validator.New()
	// В сообщениях об ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	// строка из одних пробелов после trim в сервисе стала бы пустой
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return base{validator: v, logger: logger}
}

func (h *base) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return h.validate(w, dst)
}

func (h *base) validate(w http.ResponseWriter, v any) bool {
	if err := h.validator.Struct(v); err != nil {
		h.respondValidationError(w, err)
		return false
	}
	return true
}

// extractID читает положительный целочисленный параметр пути
func (h *base) extractID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return id, nil
}

// pathParam возвращает декодированный строковый параметр пути
func (h *base) pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	// chi матчит по RawPath, если он есть, и тогда значение ещё закодировано
	if r.URL.RawPath != "" {
		if decoded, err := url.PathUnescape(value); err == nil {
			return decoded
		}
	}
	return value
}

func (h *base) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrJobTitleNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrEmployeeJobTitleNotFound):
		h.respondError(w, http.StatusNotFound, "Resource Not Found", err.Error())
	case errors.Is(err, domain.ErrDuplicateJobTitle),
		errors.Is(err, domain.ErrDuplicateDepartmentName):
		h.respondError(w, http.StatusConflict, "Conflict", err.Error())
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Internal Server Error", "internal server error")
	}
}

func (h *base) respondJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func (h *base) respondCreated(w http.ResponseWriter, r *http.Request, id int64) {
	location := strings.TrimSuffix(r.URL.Path, "/") + "/" + strconv.FormatInt(id, 10)
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

func (h *base) respondError(w http.ResponseWriter, status int, title, detail string) {
	h.respondJSON(w, status, dto.ErrorDetail{
		Title:     title,
		Status:    status,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}

func (h *base) respondValidationError(w http.ResponseWriter, err error) {
	resp := dto.ErrorDetail{
		Title:     "Validation Error",
		Status:    http.StatusBadRequest,
		Detail:    "request failed validation",
		Timestamp: time.Now().UTC(),
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			resp.Errors = append(resp.Errors, dto.ValidationError{
				Code:    fe.Tag(),
				Message: fmt.Sprintf("%s failed on the '%s' rule", fe.Namespace(), fe.Tag()),
			})
		}
	} else {
		resp.DeveloperMessage = err.Error()
	}

	h.respondJSON(w, http.StatusBadRequest, resp)
}
