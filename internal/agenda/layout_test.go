package agenda

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

func TestLayout(t *testing.T) {
	layout, err := NewLayout("08:00", "19:00", 30, []string{"Equipe"})
	require.NoError(t, err)
	assert.Len(t, layout.Slots, 22)

	pros := []*domain.Professional{
		{Name: "Carlos", IsActive: true},
		{Name: "Ana", IsActive: true},
		{Name: "Bia", IsActive: false},
		{Name: "Ana", IsActive: true},
	}
	columns := layout.Columns(pros)
	assert.Equal(t, []string{"Ana", "Carlos"}, columns)
	assert.Equal(t, []string{"Equipe"}, layout.Columns(nil))

	assert.True(t, layout.Contains(domain.Placement{ProfessionalName: "Carlos", Time: "10:30"}, columns))
	assert.False(t, layout.Contains(domain.Placement{ProfessionalName: "Bia", Time: "10:30"}, columns))
	assert.False(t, layout.Contains(domain.Placement{ProfessionalName: "Ana", Time: "19:00"}, columns))
	assert.False(t, layout.Contains(domain.Placement{ProfessionalName: "Ana", Time: "10:15"}, columns))
	for _, label := range []types.TimeString{"+9:30", "9:30", "10:30xyz", " 10:30"} {
		assert.False(t, layout.Contains(domain.Placement{ProfessionalName: "Carlos", Time: label}, columns), "label=%q", label)
	}

	_, err = NewLayout("19:00", "08:00", 0, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidSlotRange)
}

type sliceSource struct {
	list  []*domain.Appointment
	err   error
	calls int
}

func (s *sliceSource) GetByDate(context.Context, domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.calls++
	return s.list, s.err
}

func TestBoard_LoadAndEnsureLoaded(t *testing.T) {
	ctx := context.Background()
	a := appointment(1, "Ana", "09:00", domain.StatusScheduled)
	src := &sliceSource{list: []*domain.Appointment{&a}}
	b := NewBoard(PolicyReject, nil, nil, nopLogger{})

	assert.False(t, b.IsLoaded(day))
	require.NoError(t, b.EnsureLoaded(ctx, day, src))
	require.NoError(t, b.EnsureLoaded(ctx, day, src))
	assert.Equal(t, 1, src.calls)
	assert.True(t, b.IsLoaded(day))
	assert.Len(t, b.Appointments(day), 1)

	failing := &sliceSource{err: errors.New("db down")}
	other := day.AddDate(0, 0, 1)
	assert.Error(t, b.EnsureLoaded(ctx, other, failing))
	assert.False(t, b.IsLoaded(other))
}
