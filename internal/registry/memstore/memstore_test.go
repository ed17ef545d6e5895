package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func seed(t *testing.T, s *Store) (*domain.Institution, *domain.User) {
	t.Helper()
	ctx := context.Background()
	inst, err := s.Institutions().Create(ctx, &domain.CreateInstitutionRequest{
		Name:         "Sample Institution",
		Address:      strPtr("123 Main St"),
		CreationDate: day(2024, time.January, 1),
	})
	require.NoError(t, err)
	u, err := s.Users().Create(ctx, &domain.CreateUserRequest{
		Name:      "John",
		LastName:  "Doe",
		RUT:       "12345678-9",
		BirthDate: day(1990, time.January, 1),
	})
	require.NoError(t, err)
	return inst, u
}

func TestInstitutions_CRUD(t *testing.T) {
	ctx := context.Background()
	s := New()
	inst, _ := seed(t, s)
	assert.Equal(t, int64(1), inst.ID)

	got, err := s.Institutions().GetByID(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sample Institution", got.Name)

	updated, err := s.Institutions().Update(ctx, inst.ID, &domain.UpdateInstitutionRequest{Name: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "123 Main St", *updated.Address)

	require.NoError(t, s.Institutions().Delete(ctx, inst.ID))
	_, err = s.Institutions().GetByID(ctx, inst.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	err = s.Institutions().Delete(ctx, inst.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestInstitutions_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	s := New()
	for _, name := range []string{"A", "B", "C"} {
		_, err := s.Institutions().Create(ctx, &domain.CreateInstitutionRequest{Name: name, CreationDate: day(2024, 1, 1)})
		require.NoError(t, err)
	}
	items, err := s.Institutions().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{items[0].Name, items[1].Name, items[2].Name})
}

func TestUsers_UniqueRUT(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, u := seed(t, s)

	_, err := s.Users().Create(ctx, &domain.CreateUserRequest{Name: "Jane", LastName: "Roe", RUT: u.RUT, BirthDate: day(1991, 2, 2)})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	other, err := s.Users().Create(ctx, &domain.CreateUserRequest{Name: "Jane", LastName: "Roe", RUT: "11111111-1", BirthDate: day(1991, 2, 2)})
	require.NoError(t, err)

	_, err = s.Users().Update(ctx, other.ID, &domain.UpdateUserRequest{RUT: strPtr(u.RUT)})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	// keeping one's own rut is not a conflict
	_, err = s.Users().Update(ctx, u.ID, &domain.UpdateUserRequest{RUT: strPtr(u.RUT)})
	assert.NoError(t, err)
}

func TestUsers_FindBy(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, u := seed(t, s)

	got, err := s.Users().FindBy(ctx, "rut", "12345678-9")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = s.Users().FindBy(ctx, "last_name", "Doe")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Users().FindBy(ctx, "rut", "99999999-9")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = s.Users().FindBy(ctx, "password", "x")
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, domain.CodeUnknownField, ve.Code)
}

func TestProjects_ReferencesChecked(t *testing.T) {
	ctx := context.Background()
	s := New()
	inst, u := seed(t, s)

	_, err := s.Projects().Create(ctx, &domain.CreateProjectRequest{
		Name: "P", StartDate: day(2024, 1, 1), EndDate: day(2024, 2, 1), InstitutionID: 99, UserID: u.ID,
	})
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "institution_id", ve.Field)
	assert.Equal(t, domain.CodeUnknownReference, ve.Code)

	_, err = s.Projects().Create(ctx, &domain.CreateProjectRequest{
		Name: "P", StartDate: day(2024, 1, 1), EndDate: day(2024, 2, 1), InstitutionID: inst.ID, UserID: 99,
	})
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "user_id", ve.Field)

	p, err := s.Projects().Create(ctx, &domain.CreateProjectRequest{
		Name: "P", StartDate: day(2024, 1, 1), EndDate: day(2024, 2, 1), InstitutionID: inst.ID, UserID: u.ID,
	})
	require.NoError(t, err)

	bad := int64(42)
	_, err = s.Projects().Update(ctx, p.ID, &domain.UpdateProjectRequest{UserID: &bad})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	stored, err := s.Projects().GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.UserID, "failed update must not change the row")
}

func TestDelete_RestrictedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	s := New()
	inst, u := seed(t, s)
	p, err := s.Projects().Create(ctx, &domain.CreateProjectRequest{
		Name: "P", StartDate: day(2024, 1, 1), EndDate: day(2024, 2, 1), InstitutionID: inst.ID, UserID: u.ID,
	})
	require.NoError(t, err)

	assert.True(t, errors.Is(s.Institutions().Delete(ctx, inst.ID), domain.ErrConflict))
	assert.True(t, errors.Is(s.Users().Delete(ctx, u.ID), domain.ErrConflict))

	require.NoError(t, s.Projects().Delete(ctx, p.ID))
	assert.NoError(t, s.Institutions().Delete(ctx, inst.ID))
	assert.NoError(t, s.Users().Delete(ctx, u.ID))
}

func TestProjects_ListByOwner(t *testing.T) {
	ctx := context.Background()
	s := New()
	inst, u := seed(t, s)
	other, err := s.Institutions().Create(ctx, &domain.CreateInstitutionRequest{Name: "Other", CreationDate: day(2024, 1, 1)})
	require.NoError(t, err)

	for _, instID := range []int64{inst.ID, other.ID, inst.ID} {
		_, err := s.Projects().Create(ctx, &domain.CreateProjectRequest{
			Name: "P", StartDate: day(2024, 1, 1), EndDate: day(2024, 2, 1), InstitutionID: instID, UserID: u.ID,
		})
		require.NoError(t, err)
	}

	byInst, err := s.Projects().ListByInstitution(ctx, inst.ID)
	require.NoError(t, err)
	require.Len(t, byInst, 2)
	assert.Equal(t, int64(1), byInst[0].ID)
	assert.Equal(t, int64(3), byInst[1].ID)

	byUser, err := s.Projects().ListByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, byUser, 3)

	none, err := s.Projects().ListByUser(ctx, 404)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
