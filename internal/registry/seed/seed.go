// Package seed loads the sample institution, user and project.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
)

// SampleRUT identifies the seeded user; its presence marks the data as loaded.
const SampleRUT = "12345678-9"

func strPtr(s string) *string { return &s }

// DefaultData inserts the sample rows dated today unless the sample user
// already exists. It reports whether anything was written.
func DefaultData(ctx context.Context, institutions service.InstitutionStore, users service.UserStore, projects service.ProjectStore, today time.Time) (bool, error) {
	_, err := users.FindBy(ctx, "rut", SampleRUT)
	if err == nil {
		log.Printf("[info] seed skipped: user rut=%s already present", SampleRUT)
		return false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return false, fmt.Errorf("seed lookup: %w", err)
	}

	today = domain.DateOf(today)
	age := 35

	inst, err := institutions.Create(ctx, &domain.CreateInstitutionRequest{
		Name:         "Sample Institution",
		Description:  strPtr("A sample institution"),
		Address:      strPtr("123 Main St"),
		CreationDate: today,
	})
	if err != nil {
		return false, fmt.Errorf("seed institution: %w", err)
	}

	u, err := users.Create(ctx, &domain.CreateUserRequest{
		Name:      "John",
		LastName:  "Doe",
		RUT:       SampleRUT,
		BirthDate: today,
		Position:  strPtr("Manager"),
		Age:       &age,
	})
	if err != nil {
		return false, fmt.Errorf("seed user: %w", err)
	}

	p, err := projects.Create(ctx, &domain.CreateProjectRequest{
		Name:          "Sample Project",
		Description:   strPtr("A sample project"),
		StartDate:     today,
		EndDate:       today,
		InstitutionID: inst.ID,
		UserID:        u.ID,
	})
	if err != nil {
		return false, fmt.Errorf("seed project: %w", err)
	}

	log.Printf("[info] seed loaded institution=%d user=%d project=%d", inst.ID, u.ID, p.ID)
	return true, nil
}
