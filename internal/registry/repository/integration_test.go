package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/repository"
	"github.com/GoSim-25-26J-441/registry-backend/internal/storage/postgres"
)

// setupTestPostgres migrates a real database and empties the registry tables.
// Skips the test if TEST_DB_DSN is not set.
func setupTestPostgres(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping PostgreSQL integration test")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	require.NoError(t, postgres.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE projects, users, institutions RESTART IDENTITY`)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	t.Cleanup(func() { db.Close() })
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPostgres_RegistryLifecycle(t *testing.T) {
	db := setupTestPostgres(t)
	ctx := context.Background()
	institutions := repository.NewInstitutionRepository(db)
	users := repository.NewUserRepository(db)
	projects := repository.NewProjectRepository(db)

	address := "123 Main St"
	inst, err := institutions.Create(ctx, &domain.CreateInstitutionRequest{
		Name:         "Sample Institution",
		Address:      &address,
		CreationDate: date(2024, 1, 1),
	})
	require.NoError(t, err)
	assert.Equal(t, date(2024, 1, 1), inst.CreationDate)

	u, err := users.Create(ctx, &domain.CreateUserRequest{
		Name: "John", LastName: "Doe", RUT: "12345678-9", BirthDate: date(1990, 1, 1),
	})
	require.NoError(t, err)

	_, err = users.Create(ctx, &domain.CreateUserRequest{
		Name: "Jane", LastName: "Roe", RUT: "12345678-9", BirthDate: date(1991, 1, 1),
	})
	assert.True(t, errors.Is(err, domain.ErrConflict), "duplicate rut: %v", err)

	_, err = projects.Create(ctx, &domain.CreateProjectRequest{
		Name: "Orphan", StartDate: date(2024, 1, 1), EndDate: date(2024, 2, 1), InstitutionID: inst.ID, UserID: u.ID + 100,
	})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve), "missing user: %v", err)
	assert.Equal(t, "user_id", ve.Field)

	p, err := projects.Create(ctx, &domain.CreateProjectRequest{
		Name: "Sample Project", StartDate: date(2023, 12, 1), EndDate: date(2024, 1, 1), InstitutionID: inst.ID, UserID: u.ID,
	})
	require.NoError(t, err)

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)

	found, err := users.FindBy(ctx, "rut", "12345678-9")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	assert.True(t, errors.Is(institutions.Delete(ctx, inst.ID), domain.ErrConflict))
	require.NoError(t, projects.Delete(ctx, p.ID))
	require.NoError(t, institutions.Delete(ctx, inst.ID))
	assert.True(t, errors.Is(institutions.Delete(ctx, inst.ID), domain.ErrNotFound))
}
