package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/memstore"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/service"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newSweep(t *testing.T) *OverdueSweep {
	t.Helper()
	ctx := context.Background()
	s := memstore.New()

	inst, err := s.Institutions().Create(ctx, &domain.CreateInstitutionRequest{Name: "Inst", CreationDate: day(2024, 1, 1)})
	require.NoError(t, err)
	u, err := s.Users().Create(ctx, &domain.CreateUserRequest{Name: "John", LastName: "Doe", RUT: "12345678-9", BirthDate: day(1990, 1, 1)})
	require.NoError(t, err)

	for _, end := range []time.Time{day(2024, 1, 1), day(2024, 1, 2), day(2023, 6, 30)} {
		_, err := s.Projects().Create(ctx, &domain.CreateProjectRequest{
			Name: "P", StartDate: day(2023, 1, 1), EndDate: end, InstitutionID: inst.ID, UserID: u.ID,
		})
		require.NoError(t, err)
	}

	clock := service.Clock{Now: func() time.Time { return day(2024, 1, 2) }, Location: time.UTC}
	return NewOverdueSweep(service.NewProjectService(s.Projects(), clock))
}

func TestOverdueSweep_Run(t *testing.T) {
	sweep := newSweep(t)

	overdue, err := sweep.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, overdue, 2)
	assert.Equal(t, int64(1), overdue[0].ID)
	assert.Equal(t, -1, overdue[0].DaysLeft)
	assert.Equal(t, int64(3), overdue[1].ID)
}

func TestScheduler_Start(t *testing.T) {
	s := NewScheduler(newSweep(t), nil)

	assert.Error(t, s.Start("not a cron spec"))

	require.NoError(t, s.Start(""))
	entries := s.cron.Entries()
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Next.IsZero())

	<-s.Stop().Done()
}
