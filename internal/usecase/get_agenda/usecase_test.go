package get_agenda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointments struct {
	list []*domain.Appointment
	err  error
}

func (f *fakeAppointments) GetByDate(context.Context, domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return f.list, f.err
}

type fakeProfessionals struct {
	list []*domain.Professional
	err  error
}

func (f *fakeProfessionals) GetAll(context.Context, bool) ([]*domain.Professional, error) {
	return f.list, f.err
}

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, appointments *fakeAppointments, professionals *fakeProfessionals) (*UseCase, *agenda.Board) {
	t.Helper()
	layout, err := agenda.NewLayout("08:00", "19:00", 30, []string{"Salão"})
	require.NoError(t, err)
	board := agenda.NewBoard(agenda.PolicyReject, nil, nil, nopLogger{})
	return NewUseCase(board, layout, appointments, professionals, nopLogger{}), board
}

func TestExecute_DesktopGrid(t *testing.T) {
	appointments := &fakeAppointments{list: []*domain.Appointment{
		{ID: 5, ClientName: "Maria", ProfessionalName: "Ana", Date: day, Time: "10:00", Status: domain.StatusConfirmed},
		{ID: 7, ClientName: "João", ProfessionalName: "Zeca", Date: day, Time: "10:00", Status: domain.StatusScheduled},
	}}
	professionals := &fakeProfessionals{list: []*domain.Professional{
		{Name: "Carlos", IsActive: true},
		{Name: "Ana", IsActive: true},
	}}
	uc, _ := newUseCase(t, appointments, professionals)

	resp, err := uc.Execute(context.Background(), &Request{Date: day.Add(15 * time.Hour)})
	require.NoError(t, err)
	require.NotNil(t, resp.Desktop)
	assert.Nil(t, resp.Mobile)
	assert.False(t, resp.Stale)

	grid := resp.Desktop
	assert.Equal(t, "2026-03-10", grid.Date)
	assert.Equal(t, []string{"Ana", "Carlos"}, grid.Professionals)
	require.Len(t, grid.Rows, 22)
	assert.Len(t, grid.StatusOptions, len(domain.AllStatuses))

	// 10:00 пятая строка
	row := grid.Rows[4]
	assert.Equal(t, types.TimeString("10:00"), row.Time)
	assert.Equal(t, domain.CellKey("Ana-10:00"), row.Cells[0].DroppableID)
	require.Len(t, row.Cells[0].Appointments, 1)
	assert.Equal(t, int64(5), row.Cells[0].Appointments[0].ID)
	assert.Equal(t, domain.StatusColor("confirmed"), row.Cells[0].Appointments[0].StatusColor)

	// запись к мастеру вне сетки не теряется
	require.Len(t, grid.Unplaced, 1)
	assert.Equal(t, int64(7), grid.Unplaced[0].ID)
}

func TestExecute_MobileGrid(t *testing.T) {
	appointments := &fakeAppointments{list: []*domain.Appointment{
		{ID: 5, ClientName: "Maria", ProfessionalName: "Ana", Date: day, Time: "08:30", Status: domain.StatusNoShow},
	}}
	professionals := &fakeProfessionals{list: []*domain.Professional{{Name: "Ana", IsActive: true}}}
	uc, _ := newUseCase(t, appointments, professionals)

	resp, err := uc.Execute(context.Background(), &Request{Date: day, View: ViewMobile})
	require.NoError(t, err)
	require.NotNil(t, resp.Mobile)
	assert.Nil(t, resp.Desktop)

	require.Len(t, resp.Mobile.Columns, 1)
	slot := resp.Mobile.Columns[0].Slots[1]
	require.Len(t, slot.Appointments, 1)
	assert.Equal(t, domain.StatusColor("no_show"), slot.Appointments[0].StatusColor)
}

func TestExecute_FallbackColumns(t *testing.T) {
	uc, _ := newUseCase(t, &fakeAppointments{}, &fakeProfessionals{})

	resp, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	assert.Equal(t, []string{"Salão"}, resp.Desktop.Professionals)
}

func TestExecute_ReloadsEveryCall(t *testing.T) {
	appointments := &fakeAppointments{list: []*domain.Appointment{
		{ID: 1, ProfessionalName: "Ana", Date: day, Time: "09:00", Status: domain.StatusScheduled},
	}}
	uc, board := newUseCase(t, appointments, &fakeProfessionals{list: []*domain.Professional{{Name: "Ana", IsActive: true}}})

	_, err := uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	assert.Len(t, board.Appointments(day), 1)

	appointments.list = nil
	_, err = uc.Execute(context.Background(), &Request{Date: day})
	require.NoError(t, err)
	assert.Empty(t, board.Appointments(day))
}

func TestExecute_Errors(t *testing.T) {
	uc, _ := newUseCase(t, &fakeAppointments{}, &fakeProfessionals{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: day, View: "tablet"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc, _ = newUseCase(t, &fakeAppointments{err: errors.New("db down")}, &fakeProfessionals{})
	_, err = uc.Execute(context.Background(), &Request{Date: day})
	assert.ErrorIs(t, err, ErrInternal)

	uc, _ = newUseCase(t, &fakeAppointments{}, &fakeProfessionals{err: errors.New("db down")})
	_, err = uc.Execute(context.Background(), &Request{Date: day})
	assert.ErrorIs(t, err, ErrInternal)
}
