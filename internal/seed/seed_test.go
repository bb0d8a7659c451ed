package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/sampleemps-api/internal/config"
	"github.com/sampleemps-api/internal/database"
	"github.com/sampleemps-api/internal/repository"
	"github.com/sampleemps-api/internal/seed"
	"github.com/sampleemps-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestSeeder_RunIsIdempotentAndClears(t *testing.T) {
	ctx := context.Background()

	db, err := database.Open(config.DatabaseConfig{
		Driver:          database.DriverSQLite,
		Path:            ":memory:",
		ConnectAttempts: 1,
	}, gormlogger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(sqlDB, database.DriverSQLite, false))

	empRepo := repository.NewEmployeeRepository(db)
	jobRepo := repository.NewJobTitleRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	empService := service.NewEmployeeService(empRepo, jobRepo, deptRepo)

	seeder := seed.NewSeeder(db,
		empService,
		service.NewJobTitleService(jobRepo),
		service.NewDepartmentService(deptRepo),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	require.NoError(t, seeder.Run(ctx, false))
	require.NoError(t, seeder.Run(ctx, false))

	all, err := empService.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	counts, err := empService.GetEmpNameCountJobs(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 3)
	assert.Equal(t, "CINNAMON", counts[0].Name)
	assert.EqualValues(t, 2, counts[0].JobCount)
	assert.EqualValues(t, 0, counts[2].JobCount)

	require.NoError(t, seeder.Run(ctx, true))

	all, err = empService.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
