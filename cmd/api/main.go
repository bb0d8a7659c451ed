package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sampleemps-api/internal/config"
	"github.com/sampleemps-api/internal/database"
	"github.com/sampleemps-api/internal/repository"
	"github.com/sampleemps-api/internal/service"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sampleemps",
	Short: "Sample employees API",
	Long:  `Manages employees, job titles and the managers assigned to each employee job title.`,
	// без подкоманды запускаем сервер
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "directory containing config.yml")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app - общие зависимости для всех подкоманд
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB

	empRepo  repository.EmployeeRepository
	jobRepo  repository.JobTitleRepository
	deptRepo repository.DepartmentRepository

	empService  service.EmployeeService
	jobService  service.JobTitleService
	deptService service.DepartmentService
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	gormLevel := gormlogger.Warn
	if cfg.Log.Level == "debug" {
		gormLevel = gormlogger.Info
	}

	db, err := database.Open(cfg.Database, gormLevel)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		empRepo:  repository.NewEmployeeRepository(db),
		jobRepo:  repository.NewJobTitleRepository(db),
		deptRepo: repository.NewDepartmentRepository(db),
	}
	a.empService = service.NewEmployeeService(a.empRepo, a.jobRepo, a.deptRepo)
	a.jobService = service.NewJobTitleService(a.jobRepo)
	a.deptService = service.NewDepartmentService(a.deptRepo)

	return a, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (a *app) migrate(rollback bool) error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return database.Migrate(sqlDB, a.cfg.Database.Driver, rollback)
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
