package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/repository"
)

func TestSchema_ConstraintNamesMatchGateway(t *testing.T) {
	all := strings.Join(Schema, "\n")

	// the gateway classifies errors by these names
	for _, name := range []string{repository.ConstraintUsersRUT, repository.ConstraintProjectInstitution, repository.ConstraintProjectUser} {
		assert.Contains(t, all, name)
	}
	assert.Equal(t, 2, strings.Count(all, "ON DELETE RESTRICT"))
}

func TestSchema_Idempotent(t *testing.T) {
	for _, stmt := range Schema {
		assert.Contains(t, stmt, "IF NOT EXISTS", stmt)
	}
}
