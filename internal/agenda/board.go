package agenda

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

const snapshotTimeout = 2 * time.Second

// CollisionPolicy поведение при переносе записи в занятую ячейку
type CollisionPolicy string

const (
	// PolicyReject перенос в занятую ячейку отклоняется
	PolicyReject CollisionPolicy = "reject"
	// PolicyLastWriteWins перенос выполняется, в ячейке оказываются обе записи
	PolicyLastWriteWins CollisionPolicy = "last_write_wins"
)

// ParseCollisionPolicy конвертирует строку в политику; пустая строка означает PolicyReject
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch CollisionPolicy(s) {
	case "", PolicyReject:
		return PolicyReject, nil
	case PolicyLastWriteWins:
		return PolicyLastWriteWins, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// Generation метка загрузки списка на дату
type Generation struct {
	date string
	seq  uint64
}

// Proposal вычисленное, но еще не примененное перемещение записи
type Proposal struct {
	Date          time.Time
	AppointmentID int64
	From          domain.Placement
	To            domain.Placement
}

// IsNoop возвращает true, если запись бросили в ее же ячейку
func (p *Proposal) IsNoop() bool {
	return p.From.Equal(p.To)
}

type snapshotJob struct {
	seq  uint64
	list []domain.Appointment
}

type dayState struct {
	appointments []*domain.Appointment
	latest       uint64
	loaded       bool
}

// Board авторитетный список записей по датам, отображаемый сеткой
// Все операции потокобезопасны; каждое изменение зеркалируется в SnapshotStore
// фоновым писателем, который хранит в очереди только самый свежий снимок
type Board struct {
	mu      sync.Mutex
	policy  CollisionPolicy
	days    map[string]*dayState
	seq     uint64
	store   SnapshotStore
	metrics Metrics
	logger  Logger

	pending chan snapshotJob
	done    chan struct{}
	closed  bool
	queued  uint64

	writtenMu sync.Mutex
	written   uint64
	writtenCh *sync.Cond
}

// NewBoard создает доску; store и metrics могут быть nil
// Если store задан, запускается фоновый писатель снимков; остановить его можно через Close
func NewBoard(policy CollisionPolicy, store SnapshotStore, metrics Metrics, logger Logger) *Board {
	b := &Board{
		policy:  policy,
		days:    make(map[string]*dayState),
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
	b.writtenCh = sync.NewCond(&b.writtenMu)
	if store != nil {
		b.pending = make(chan snapshotJob, 1)
		b.done = make(chan struct{})
		go b.writeSnapshots()
	}
	return b
}

// Policy возвращает политику коллизий доски
func (b *Board) Policy() CollisionPolicy {
	return b.policy
}

func dateKey(date time.Time) string {
	return domain.DateOnly(date).Format(domain.DateFormat)
}

func (b *Board) day(key string) *dayState {
	d, ok := b.days[key]
	if !ok {
		d = &dayState{}
		b.days[key] = d
	}
	return d
}

func (d *dayState) find(id int64) *domain.Appointment {
	for _, a := range d.appointments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindCollision возвращает запись, занимающую ячейку target, кроме excludeID
// Записи в статусах, не занимающих ячейку, не учитываются
func FindCollision(appointments []*domain.Appointment, target domain.Placement, excludeID int64) *domain.Appointment {
	for _, a := range appointments {
		if a.ID == excludeID || !a.Occupies() {
			continue
		}
		if a.Placement().Equal(target) {
			return a
		}
	}
	return nil
}

// BeginLoad открывает новую загрузку списка на дату
// Более ранние незавершенные загрузки этой даты становятся устаревшими
func (b *Board) BeginLoad(date time.Time) Generation {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	key := dateKey(date)
	b.day(key).latest = b.seq
	return Generation{date: key, seq: b.seq}
}

// CommitLoad заменяет список на дату результатом загрузки
// Возвращает false и ничего не меняет, если после gen была начата более новая загрузка
func (b *Board) CommitLoad(ctx context.Context, gen Generation, appointments []*domain.Appointment) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.day(gen.date)
	if gen.seq != d.latest {
		b.logger.Warn("Board: stale load discarded date=%s generation=%d latest=%d", gen.date, gen.seq, d.latest)
		return false
	}

	list := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		c := *a
		list = append(list, &c)
	}
	d.appointments = list
	d.loaded = true

	b.mirror()
	return true
}

// Appointments возвращает копию списка записей на дату, упорядоченную по времени
func (b *Board) Appointments(date time.Time) []domain.Appointment {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.days[dateKey(date)]
	if !ok {
		return []domain.Appointment{}
	}
	return sortedCopy(d.appointments)
}

// Get возвращает копию записи
func (b *Board) Get(date time.Time, id int64) (domain.Appointment, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.days[dateKey(date)]
	if !ok {
		return domain.Appointment{}, ErrAppointmentNotFound
	}
	a := d.find(id)
	if a == nil {
		return domain.Appointment{}, ErrAppointmentNotFound
	}
	return *a, nil
}

// Propose первая фаза переноса: разбирает ключ droppable ячейки и вычисляет новое положение
// Состояние доски не меняется
func (b *Board) Propose(date time.Time, id int64, droppableID string) (*Proposal, error) {
	if droppableID == "" {
		return nil, ErrInvalidDropTarget
	}
	target, err := domain.ParseCellKey(domain.CellKey(droppableID))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDropTarget, droppableID)
	}

	current, err := b.Get(date, id)
	if err != nil {
		return nil, err
	}

	return &Proposal{
		Date:          domain.DateOnly(date),
		AppointmentID: id,
		From:          current.Placement(),
		To:            target,
	}, nil
}

// Apply вторая фаза переноса: меняет мастера и время записи, остальные поля не трогает
// При PolicyReject перенос в занятую ячейку возвращает ErrCellOccupied
func (b *Board) Apply(ctx context.Context, p *Proposal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.days[dateKey(p.Date)]
	if !ok {
		return ErrAppointmentNotFound
	}
	a := d.find(p.AppointmentID)
	if a == nil {
		return ErrAppointmentNotFound
	}
	if !a.Placement().Equal(p.From) {
		return ErrStaleProposal
	}
	if p.IsNoop() {
		return nil
	}

	if b.policy == PolicyReject && a.Occupies() {
		if other := FindCollision(d.appointments, p.To, a.ID); other != nil {
			return fmt.Errorf("%w: cell=%s appointment=%d", ErrCellOccupied, domain.NewCellKey(p.To.ProfessionalName, p.To.Time), other.ID)
		}
	}

	a.ProfessionalName = p.To.ProfessionalName
	a.Time = p.To.Time

	b.mirror()
	return nil
}

// Revert возвращает запись в исходное положение, если она все еще стоит там, куда ее перенесли
func (b *Board) Revert(ctx context.Context, p *Proposal) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.days[dateKey(p.Date)]
	if !ok {
		return ErrAppointmentNotFound
	}
	a := d.find(p.AppointmentID)
	if a == nil {
		return ErrAppointmentNotFound
	}
	if !a.Placement().Equal(p.To) {
		return ErrStaleProposal
	}

	a.ProfessionalName = p.From.ProfessionalName
	a.Time = p.From.Time

	b.mirror()
	return nil
}

// UpdateStatus меняет статус записи; допустим любой переход внутри перечисления
// Возвращает предыдущий статус
func (b *Board) UpdateStatus(ctx context.Context, date time.Time, id int64, status domain.AppointmentStatus) (domain.AppointmentStatus, error) {
	if !status.IsValid() {
		return "", domain.ErrInvalidStatus
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.days[dateKey(date)]
	if !ok {
		return "", ErrAppointmentNotFound
	}
	a := d.find(id)
	if a == nil {
		return "", ErrAppointmentNotFound
	}

	previous := a.Status
	a.Status = status

	b.mirror()
	return previous, nil
}

// Add добавляет запись в список ее даты, запись с тем же ID заменяется
func (b *Board) Add(ctx context.Context, appointment domain.Appointment) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	d := b.day(dateKey(appointment.Date))
	if b.policy == PolicyReject && appointment.Occupies() {
		if other := FindCollision(d.appointments, appointment.Placement(), appointment.ID); other != nil {
			return fmt.Errorf("%w: cell=%s appointment=%d", ErrCellOccupied, appointment.Cell(), other.ID)
		}
	}

	c := appointment
	if existing := d.find(appointment.ID); existing != nil {
		*existing = c
	} else {
		d.appointments = append(d.appointments, &c)
	}

	b.mirror()
	return nil
}

// Remove удаляет запись из списка; возвращает false, если ее не было
func (b *Board) Remove(ctx context.Context, date time.Time, id int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.days[dateKey(date)]
	if !ok {
		return false
	}
	for i, a := range d.appointments {
		if a.ID == id {
			d.appointments = append(d.appointments[:i], d.appointments[i+1:]...)
			b.mirror()
			return true
		}
	}
	return false
}

// Restore читает сохраненный снимок при старте
// Отсутствующий или поврежденный снимок оставляет текущее состояние; ошибка только логируется
// Восстановленные даты не считаются загруженными: первая операция перечитает их из базы
func (b *Board) Restore(ctx context.Context) bool {
	if b.store == nil {
		return false
	}

	saved, err := b.store.Load(ctx)
	if err != nil {
		b.logger.Error("Board: failed to restore snapshot: %v", err)
		return false
	}
	if len(saved) == 0 {
		b.logger.Info("Board: no saved snapshot")
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	days := make(map[string]*dayState)
	for i := range saved {
		a := saved[i]
		key := dateKey(a.Date)
		d, ok := days[key]
		if !ok {
			d = &dayState{}
			if prev, exists := b.days[key]; exists {
				d.latest = prev.latest
			}
			days[key] = d
		}
		d.appointments = append(d.appointments, &a)
	}
	b.days = days

	b.logger.Info("Board: restored %d appointments from snapshot", len(saved))
	return true
}

// mirror ставит полный список в очередь фонового писателя; вызывается под b.mu
// Неотправленный снимок заменяется новым, поэтому вызов не блокируется
func (b *Board) mirror() {
	if b.store == nil || b.closed {
		return
	}

	all := make([]*domain.Appointment, 0)
	for _, d := range b.days {
		all = append(all, d.appointments...)
	}
	b.queued++
	job := snapshotJob{seq: b.queued, list: sortedCopy(all)}

	select {
	case <-b.pending:
	default:
	}
	b.pending <- job
}

func (b *Board) writeSnapshots() {
	defer close(b.done)

	for job := range b.pending {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		if err := b.store.Save(ctx, job.list); err != nil {
			b.logger.Error("Board: failed to write snapshot: %v", err)
			if b.metrics != nil {
				b.metrics.ObserveSnapshotError()
			}
		}
		cancel()

		b.writtenMu.Lock()
		b.written = job.seq
		b.writtenMu.Unlock()
		b.writtenCh.Broadcast()
	}
}

// Flush ждет, пока будет записан снимок последнего изменения
func (b *Board) Flush() {
	if b.store == nil {
		return
	}

	b.mu.Lock()
	target := b.queued
	b.mu.Unlock()

	b.writtenMu.Lock()
	defer b.writtenMu.Unlock()
	for b.written < target {
		b.writtenCh.Wait()
	}
}

// Close дописывает оставшийся снимок и останавливает фонового писателя
// Изменения после Close в хранилище не попадают
func (b *Board) Close() {
	b.mu.Lock()
	if b.closed || b.store == nil {
		b.closed = true
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.pending)
	b.mu.Unlock()

	<-b.done
}

func sortedCopy(appointments []*domain.Appointment) []domain.Appointment {
	list := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		list = append(list, *a)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].Date.Equal(list[j].Date) {
			return list[i].Date.Before(list[j].Date)
		}
		if !list[i].Time.Equal(list[j].Time) {
			return list[i].Time.IsBefore(list[j].Time)
		}
		return list[i].ID < list[j].ID
	})
	return list
}
