package move_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/internal/notify"
	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAppointments struct {
	rows       map[int64]*domain.Appointment
	updateErr  error
	updates    int
	getByDates int
}

func newFakeAppointments(list ...domain.Appointment) *fakeAppointments {
	f := &fakeAppointments{rows: make(map[int64]*domain.Appointment)}
	for i := range list {
		a := list[i]
		f.rows[a.ID] = &a
	}
	return f
}

func (f *fakeAppointments) GetByDate(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.getByDates++
	var out []*domain.Appointment
	for _, a := range f.rows {
		if a.Date.Equal(filter.Date) {
			c := *a
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeAppointments) UpdatePlacement(_ context.Context, id int64, p domain.Placement) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	f.rows[id].ProfessionalName = p.ProfessionalName
	f.rows[id].Time = p.Time
	return nil
}

type fakeProfessionals struct{ list []*domain.Professional }

func (f *fakeProfessionals) GetAll(context.Context, bool) ([]*domain.Professional, error) {
	return f.list, nil
}

type passTx struct{ calls int }

func (p *passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type outcomes map[string]int

func (o outcomes) ObserveMove(outcome string) { o[outcome]++ }

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func appt(id int64, professional, at string, status domain.AppointmentStatus) domain.Appointment {
	return domain.Appointment{
		ID:               id,
		ClientName:       "Cliente",
		ServiceName:      "Corte",
		ProfessionalName: professional,
		Date:             day,
		Time:             types.TimeString(at),
		Status:           status,
	}
}

type fixture struct {
	uc      *UseCase
	board   *agenda.Board
	repo    *fakeAppointments
	tx      *passTx
	center  *notify.Center
	metrics outcomes
}

func newFixture(t *testing.T, policy agenda.CollisionPolicy, rows ...domain.Appointment) *fixture {
	t.Helper()

	layout, err := agenda.NewLayout("08:00", "19:00", 30, nil)
	require.NoError(t, err)

	f := &fixture{
		board:   agenda.NewBoard(policy, nil, nil, nopLogger{}),
		repo:    newFakeAppointments(rows...),
		tx:      &passTx{},
		center:  notify.NewCenter(10),
		metrics: outcomes{},
	}
	professionals := &fakeProfessionals{list: []*domain.Professional{
		{ID: 1, Name: "Ana", IsActive: true},
		{ID: 2, Name: "Carlos", IsActive: true},
	}}
	f.uc = NewUseCase(f.board, layout, f.repo, professionals, f.tx, f.center, f.metrics, nopLogger{})
	return f
}

func TestExecute_MovesAppointment(t *testing.T) {
	f := newFixture(t, agenda.PolicyReject, appt(5, "Ana", "10:00", domain.StatusScheduled))

	resp, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: "Carlos-10:30"})
	require.NoError(t, err)

	assert.True(t, resp.Moved)
	assert.Equal(t, domain.Placement{ProfessionalName: "Ana", Time: "10:00"}, resp.From)
	assert.Equal(t, "Carlos", resp.Appointment.ProfessionalName)
	assert.Equal(t, types.TimeString("10:30"), resp.Appointment.Time)
	assert.Equal(t, domain.StatusScheduled, resp.Appointment.Status)

	assert.Equal(t, "Carlos", f.repo.rows[5].ProfessionalName)
	assert.Equal(t, 1, f.metrics[OutcomeMoved])

	notes := f.center.List()
	require.Len(t, notes, 1)
	assert.Equal(t, notify.LevelSuccess, notes[0].Level)
	assert.Contains(t, notes[0].Message, "Carlos")
}

func TestExecute_OwnCellIsNoop(t *testing.T) {
	f := newFixture(t, agenda.PolicyReject, appt(5, "Ana", "10:00", domain.StatusScheduled))

	resp, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: "Ana-10:00"})
	require.NoError(t, err)

	assert.False(t, resp.Moved)
	assert.Zero(t, f.tx.calls)
	assert.Zero(t, f.repo.updates)
	assert.Equal(t, 1, f.metrics[OutcomeNoop])
}

func TestExecute_InvalidDropTarget(t *testing.T) {
	cases := []string{
		"", "Ana", "Ana-25:00", "Bruna-10:00", "Ana-19:00", "Ana-10:15",
		"Carlos-+9:30", "Carlos-9:30", "Carlos-10:30xyz", "Carlos-10:30:00",
	}

	for _, droppable := range cases {
		t.Run(droppable, func(t *testing.T) {
			f := newFixture(t, agenda.PolicyReject, appt(5, "Ana", "10:00", domain.StatusScheduled))

			_, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: droppable})
			assert.ErrorIs(t, err, ErrInvalidDropTarget)

			got, err := f.board.Get(day, 5)
			require.NoError(t, err)
			assert.Equal(t, "Ana", got.ProfessionalName)
			assert.Equal(t, types.TimeString("10:00"), got.Time)
			assert.Zero(t, f.repo.updates)
		})
	}
}

func TestExecute_UnknownAppointment(t *testing.T) {
	f := newFixture(t, agenda.PolicyReject, appt(5, "Ana", "10:00", domain.StatusScheduled))

	_, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 42, DroppableID: "Carlos-10:30"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t, agenda.PolicyReject)

	_, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 0, DroppableID: "Carlos-10:30"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(context.Background(), &Request{AppointmentID: 1, DroppableID: "Carlos-10:30"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RejectsOccupiedCell(t *testing.T) {
	f := newFixture(t, agenda.PolicyReject,
		appt(5, "Ana", "10:00", domain.StatusScheduled),
		appt(6, "Carlos", "10:30", domain.StatusConfirmed),
	)

	_, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: "Carlos-10:30"})
	assert.ErrorIs(t, err, ErrCellOccupied)

	got, _ := f.board.Get(day, 5)
	assert.Equal(t, "Ana", got.ProfessionalName)
	assert.Zero(t, f.tx.calls)
	assert.Equal(t, 1, f.metrics[OutcomeRejected])
	assert.Equal(t, notify.LevelWarning, f.center.List()[0].Level)
}

func TestExecute_LastWriteWinsSharesCell(t *testing.T) {
	f := newFixture(t, agenda.PolicyLastWriteWins,
		appt(5, "Ana", "10:00", domain.StatusScheduled),
		appt(6, "Carlos", "10:30", domain.StatusConfirmed),
	)

	_, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: "Carlos-10:30"})
	require.NoError(t, err)

	var inCell int
	for _, a := range f.board.Appointments(day) {
		if a.Cell() == "Carlos-10:30" {
			inCell++
		}
	}
	assert.Equal(t, 2, inCell)
}

func TestExecute_RevertsWhenDatabaseHasNewerOccupant(t *testing.T) {
	f := newFixture(t, agenda.PolicyReject, appt(5, "Ana", "10:00", domain.StatusScheduled))

	// доска загружена до того, как другая сессия заняла ячейку
	require.NoError(t, f.board.EnsureLoaded(context.Background(), day, f.repo))
	other := appt(9, "Carlos", "10:30", domain.StatusScheduled)
	f.repo.rows[9] = &other

	_, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: "Carlos-10:30"})
	assert.ErrorIs(t, err, ErrCellOccupied)

	got, err := f.board.Get(day, 5)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.ProfessionalName)
	assert.Equal(t, types.TimeString("10:00"), got.Time)
	assert.Zero(t, f.repo.updates)
}

func TestExecute_RevertsWhenPersistFails(t *testing.T) {
	f := newFixture(t, agenda.PolicyReject, appt(5, "Ana", "10:00", domain.StatusScheduled))
	f.repo.updateErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: "Carlos-10:30"})
	assert.ErrorIs(t, err, ErrInternal)

	got, _ := f.board.Get(day, 5)
	assert.Equal(t, "Ana", got.ProfessionalName)
	assert.Equal(t, 1, f.metrics[OutcomeFailed])
	assert.Equal(t, notify.LevelError, f.center.List()[0].Level)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	f := newFixture(t, agenda.PolicyReject,
		appt(5, "Ana", "10:00", domain.StatusScheduled),
		appt(6, "Carlos", "10:30", domain.StatusCancelled),
	)

	resp, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: "Carlos-10:30"})
	require.NoError(t, err)
	assert.True(t, resp.Moved)
}

func TestExecute_LoadsDayOnce(t *testing.T) {
	f := newFixture(t, agenda.PolicyReject, appt(5, "Ana", "10:00", domain.StatusScheduled))

	_, err := f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: "Carlos-10:30"})
	require.NoError(t, err)
	_, err = f.uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, DroppableID: "Ana-11:00"})
	require.NoError(t, err)

	// одна загрузка доски и по одному чтению на каждую транзакцию
	assert.Equal(t, 3, f.repo.getByDates)
}
