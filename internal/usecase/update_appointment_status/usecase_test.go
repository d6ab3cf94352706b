package update_appointment_status

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
	rows      map[int64]*domain.Appointment
	updateErr error
}

func (f *fakeAppointments) GetByDate(context.Context, domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range f.rows {
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeAppointments) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.rows[id].Status = status
	return nil
}

type statusCounter map[string]int

func (c statusCounter) ObserveStatusUpdate(status string) { c[status]++ }

var day = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func newUseCase(status domain.AppointmentStatus) (*UseCase, *fakeAppointments, *agenda.Board, *notify.Center, statusCounter) {
	repo := &fakeAppointments{rows: map[int64]*domain.Appointment{
		5: {ID: 5, ClientName: "Maria", ProfessionalName: "Ana", Date: day, Time: types.TimeString("10:00"), Status: status},
	}}
	board := agenda.NewBoard(agenda.PolicyReject, nil, nil, nopLogger{})
	center := notify.NewCenter(10)
	counter := statusCounter{}
	return NewUseCase(board, repo, center, counter, nopLogger{}), repo, board, center, counter
}

func TestExecute_AnyTransition(t *testing.T) {
	for _, from := range domain.AllStatuses {
		for _, to := range domain.AllStatuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				uc, repo, board, _, counter := newUseCase(from)

				resp, err := uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, Status: string(to)})
				require.NoError(t, err)

				assert.Equal(t, from, resp.PreviousStatus)
				assert.Equal(t, to, resp.Appointment.Status)
				assert.Equal(t, "Ana", resp.Appointment.ProfessionalName)
				assert.Equal(t, types.TimeString("10:00"), resp.Appointment.Time)
				assert.Equal(t, to, repo.rows[5].Status)
				assert.Equal(t, 1, counter[string(to)])

				got, err := board.Get(day, 5)
				require.NoError(t, err)
				assert.Equal(t, to, got.Status)
			})
		}
	}
}

func TestExecute_InvalidStatus(t *testing.T) {
	uc, repo, _, _, _ := newUseCase(domain.StatusScheduled)

	_, err := uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, Status: "paid"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, domain.StatusScheduled, repo.rows[5].Status)
}

func TestExecute_NotFound(t *testing.T) {
	uc, _, _, _, _ := newUseCase(domain.StatusScheduled)

	_, err := uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 9, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = uc.Execute(context.Background(), &Request{Date: day, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RevertsOnPersistFailure(t *testing.T) {
	uc, repo, board, center, counter := newUseCase(domain.StatusScheduled)
	repo.updateErr = errors.New("timeout")

	_, err := uc.Execute(context.Background(), &Request{Date: day, AppointmentID: 5, Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInternal)

	got, err := board.Get(day, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusScheduled, got.Status)
	assert.Empty(t, counter)
	assert.Equal(t, notify.LevelError, center.List()[0].Level)
}
