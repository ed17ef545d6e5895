package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestParseDate(t *testing.T) {
	t.Run("parses YYYY-MM-DD", func(t *testing.T) {
		d, err := ParseDate("creation_date", "2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), d)
		assert.Equal(t, "2024-01-01", FormatDate(d))
	})

	t.Run("blank is required", func(t *testing.T) {
		_, err := ParseDate("creation_date", " ")
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, CodeRequired, ve.Code)
		assert.Equal(t, "creation_date", ve.Field)
	})

	t.Run("wrong layout is invalid format", func(t *testing.T) {
		_, err := ParseDate("end_date", "01/02/2024")
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, CodeInvalidFormat, ve.Code)
		assert.True(t, errors.Is(err, ErrValidation))
	})

	t.Run("first day of year one is out of range", func(t *testing.T) {
		_, err := ParseDate("birth_date", "0001-01-01")
		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, CodeInvalidFormat, ve.Code)
		assert.Equal(t, "birth_date", ve.Field)

		d, err := ParseDate("birth_date", "0001-01-02")
		require.NoError(t, err)
		assert.False(t, d.IsZero())
	})
}

func TestErrorsMatchSentinels(t *testing.T) {
	nf := NewNotFound(EntityInstitution, 7)
	assert.True(t, errors.Is(nf, ErrNotFound))
	assert.Equal(t, "Institution not found", nf.Error())
	assert.Equal(t, "7", nf.Key)

	cause := errors.New("pq: duplicate key")
	c := NewConflict(EntityUser, "rut already registered", cause)
	assert.True(t, errors.Is(c, ErrConflict))
	assert.True(t, errors.Is(c, cause))

	wrapped := errors.Join(errors.New("ctx"), NewRequired("name"))
	assert.True(t, errors.Is(wrapped, ErrValidation))
}

func TestCreateInstitutionRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := &CreateInstitutionRequest{Name: "Sample", CreationDate: time.Now()}
		assert.NoError(t, req.Validate())
	})

	t.Run("collects every missing field", func(t *testing.T) {
		req := &CreateInstitutionRequest{Name: "  "}
		err := req.Validate()
		require.Error(t, err)

		var errs ValidationErrors
		require.True(t, errors.As(err, &errs))
		require.Len(t, errs, 2)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "creation_date", errs[1].Field)
	})
}

func TestCreateUserRequest_Validate(t *testing.T) {
	base := CreateUserRequest{
		Name:      "Jane",
		LastName:  "Doe",
		RUT:       "12345678-9",
		BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("valid", func(t *testing.T) {
		req := base
		assert.NoError(t, req.Validate())
	})

	t.Run("rut longer than 12 characters", func(t *testing.T) {
		req := base
		req.RUT = "1234567890123"
		var errs ValidationErrors
		require.True(t, errors.As(req.Validate(), &errs))
		assert.Equal(t, CodeTooLong, errs[0].Code)
	})

	t.Run("negative age", func(t *testing.T) {
		req := base
		req.Age = intPtr(-1)
		var errs ValidationErrors
		require.True(t, errors.As(req.Validate(), &errs))
		assert.Equal(t, "age", errs[0].Field)
	})
}

func TestCreateProjectRequest_Validate(t *testing.T) {
	req := &CreateProjectRequest{Name: "P"}
	var errs ValidationErrors
	require.True(t, errors.As(req.Validate(), &errs))

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"start_date", "end_date", "institution_id", "user_id"}, fields)
}

func TestUpdateRequests_ApplyOnlySuppliedFields(t *testing.T) {
	t.Run("institution", func(t *testing.T) {
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		inst := &Institution{ID: 1, Name: "Old", Description: strPtr("desc"), Address: strPtr("addr"), CreationDate: created}

		req := &UpdateInstitutionRequest{Name: strPtr("New")}
		require.NoError(t, req.Validate())
		req.Apply(inst)

		assert.Equal(t, "New", inst.Name)
		assert.Equal(t, "desc", *inst.Description)
		assert.Equal(t, "addr", *inst.Address)
		assert.Equal(t, created, inst.CreationDate)
	})

	t.Run("user", func(t *testing.T) {
		u := &User{Name: "Jane", LastName: "Doe", RUT: "1-9", Age: intPtr(30)}
		req := &UpdateUserRequest{Position: strPtr("Lead")}
		req.Apply(u)

		assert.Equal(t, "Jane", u.Name)
		assert.Equal(t, "Lead", *u.Position)
		assert.Equal(t, 30, *u.Age)
	})

	t.Run("project", func(t *testing.T) {
		p := &Project{Name: "P", InstitutionID: 1, UserID: 2}
		inst := int64(5)
		req := &UpdateProjectRequest{InstitutionID: &inst}
		req.Apply(p)

		assert.Equal(t, int64(5), p.InstitutionID)
		assert.Equal(t, int64(2), p.UserID)
		assert.Equal(t, "P", p.Name)
	})

	t.Run("blank name rejected on update", func(t *testing.T) {
		req := &UpdateInstitutionRequest{Name: strPtr("")}
		assert.True(t, errors.Is(req.Validate(), ErrValidation))
	})
}
