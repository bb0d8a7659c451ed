package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/sampleemps-api/api"
	"github.com/sampleemps-api/internal/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger проверяет доступность хранилища для /health
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterOptions - необязательные настройки роутера
type RouterOptions struct {
	MetricsPath    string
	AllowedOrigins []string
}

// Router настраивает маршруты API
type Router struct {
	mux         *chi.Mux
	logger      *slog.Logger
	db          Pinger
	opts        RouterOptions
	employees   *EmployeeHandler
	jobTitles   *JobTitleHandler
	departments *DepartmentHandler
}

// NewRouter создаёт новый роутер
func NewRouter(
	employees *EmployeeHandler,
	jobTitles *JobTitleHandler,
	departments *DepartmentHandler,
	db Pinger,
	logger *slog.Logger,
	opts RouterOptions,
) *Router {
	return &Router{
		mux:         chi.NewRouter(),
		logger:      logger,
		db:          db,
		opts:        opts,
		employees:   employees,
		jobTitles:   jobTitles,
		departments: departments,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	r.mux.Use(
		middleware.RequestID,
		middleware.Recoverer(r.logger),
		middleware.Logger(r.logger),
		middleware.Metrics,
		middleware.ContentType,
	)

	r.mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		r.employees.respondError(w, http.StatusNotFound, "Not Found", "no route for "+req.URL.Path)
	})
	r.mux.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		r.employees.respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed", req.Method+" is not supported for "+req.URL.Path)
	})

	r.mux.Route("/employees", func(er chi.Router) {
		er.Get("/employees", r.employees.ListAll)
		er.Get("/employeename/{subname}", r.employees.ListByName)
		er.Get("/employeeemail/{subemail}", r.employees.ListByEmail)
		er.Get("/job/counts", r.employees.JobCounts)

		er.Post("/employee", r.employees.Create)
		er.Get("/employee/{employeeid}", r.employees.GetByID)
		er.Put("/employee/{employeeid}", r.employees.Replace)
		er.Patch("/employee/{employeeid}", r.employees.Update)
		er.Delete("/employee/{employeeid}", r.employees.Delete)

		er.Delete("/employee/{employeeid}/jobtitle/{jobtitleid}", r.employees.DeleteJobTitle)
		er.Post("/employee/{employeeid}/jobtitle/{jobtitleid}/manager/{manager}", r.employees.AddJobTitle)
	})

	r.mux.Route("/jobtitles", func(jr chi.Router) {
		jr.Get("/jobtitles", r.jobTitles.ListAll)
		jr.Post("/jobtitle", r.jobTitles.Create)
		jr.Get("/jobtitle/{jobtitleid}", r.jobTitles.GetByID)
	})

	r.mux.Route("/departments", func(dr chi.Router) {
		dr.Get("/departments", r.departments.ListAll)
		dr.Post("/department", r.departments.Create)
		dr.Get("/department/{departmentid}", r.departments.GetByID)
	})

	r.mux.Get("/health", r.health)

	if r.opts.MetricsPath != "" {
		r.mux.Method(http.MethodGet, r.opts.MetricsPath, promhttp.Handler())
	}

	r.mux.Get("/openapi.yml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(api.OpenAPISpec)
	})
	r.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/openapi.yml")))

	if len(r.opts.AllowedOrigins) == 0 {
		return r.mux
	}

	return cors.New(cors.Options{
		AllowedOrigins: r.opts.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{"Location", middleware.RequestIDHeader},
	}).Handler(r.mux)
}

// Routes возвращает chi-роутер для обхода таблицы маршрутов
func (r *Router) Routes() chi.Routes {
	return r.mux
}

func (r *Router) health(w http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
	defer cancel()

	if err := r.db.PingContext(ctx); err != nil {
		r.logger.Error("health check failed", slog.Any("error", err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"unavailable"}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
