package domain

import (
	"strings"
	"unicode/utf8"
)

func requireText(errs ValidationErrors, field, v string) ValidationErrors {
	if strings.TrimSpace(v) == "" {
		return append(errs, NewRequired(field))
	}
	return errs
}

func checkRUT(errs ValidationErrors, rut string) ValidationErrors {
	if strings.TrimSpace(rut) == "" {
		return append(errs, NewRequired("rut"))
	}
	if utf8.RuneCountInString(rut) > MaxRUTLength {
		return append(errs, NewTooLong("rut", MaxRUTLength))
	}
	return errs
}

func checkAge(errs ValidationErrors, age *int) ValidationErrors {
	if age != nil && *age < 0 {
		return append(errs, NewInvalidFormat("age", "must not be negative", nil))
	}
	return errs
}

func (r *CreateInstitutionRequest) Validate() error {
	var errs ValidationErrors
	errs = requireText(errs, "name", r.Name)
	if r.CreationDate.IsZero() {
		errs = append(errs, NewRequired("creation_date"))
	}
	return errs.Err()
}

func (r *UpdateInstitutionRequest) Validate() error {
	var errs ValidationErrors
	if r.Name != nil {
		errs = requireText(errs, "name", *r.Name)
	}
	return errs.Err()
}

func (r *CreateUserRequest) Validate() error {
	var errs ValidationErrors
	errs = requireText(errs, "name", r.Name)
	errs = requireText(errs, "last_name", r.LastName)
	errs = checkRUT(errs, r.RUT)
	if r.BirthDate.IsZero() {
		errs = append(errs, NewRequired("birth_date"))
	}
	errs = checkAge(errs, r.Age)
	return errs.Err()
}

func (r *UpdateUserRequest) Validate() error {
	var errs ValidationErrors
	if r.Name != nil {
		errs = requireText(errs, "name", *r.Name)
	}
	if r.LastName != nil {
		errs = requireText(errs, "last_name", *r.LastName)
	}
	if r.RUT != nil {
		errs = checkRUT(errs, *r.RUT)
	}
	errs = checkAge(errs, r.Age)
	return errs.Err()
}

func (r *CreateProjectRequest) Validate() error {
	var errs ValidationErrors
	errs = requireText(errs, "name", r.Name)
	if r.StartDate.IsZero() {
		errs = append(errs, NewRequired("start_date"))
	}
	if r.EndDate.IsZero() {
		errs = append(errs, NewRequired("end_date"))
	}
	if r.InstitutionID <= 0 {
		errs = append(errs, NewRequired("institution_id"))
	}
	if r.UserID <= 0 {
		errs = append(errs, NewRequired("user_id"))
	}
	return errs.Err()
}

func (r *UpdateProjectRequest) Validate() error {
	var errs ValidationErrors
	if r.Name != nil {
		errs = requireText(errs, "name", *r.Name)
	}
	if r.InstitutionID != nil && *r.InstitutionID <= 0 {
		errs = append(errs, NewInvalidFormat("institution_id", "must be a positive id", nil))
	}
	if r.UserID != nil && *r.UserID <= 0 {
		errs = append(errs, NewInvalidFormat("user_id", "must be a positive id", nil))
	}
	return errs.Err()
}
