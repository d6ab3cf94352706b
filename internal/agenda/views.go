package agenda

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

// StatusOption элемент селектора статуса
type StatusOption struct {
	Value domain.AppointmentStatus `json:"value"`
	Label string                   `json:"label"`
	Color string                   `json:"color"`
}

// StatusOptions все статусы в порядке перечисления
func StatusOptions() []StatusOption {
	options := make([]StatusOption, 0, len(domain.AllStatuses))
	for _, s := range domain.AllStatuses {
		options = append(options, StatusOption{Value: s, Label: domain.StatusLabel(s), Color: domain.StatusColor(string(s))})
	}
	return options
}

// Card полная карточка записи (desktop)
type Card struct {
	ID               int64                    `json:"id"`
	ClientName       string                   `json:"clientName"`
	ServiceName      string                   `json:"serviceName"`
	ProfessionalName string                   `json:"professionalName"`
	Time             types.TimeString         `json:"time"`
	Status           domain.AppointmentStatus `json:"status"`
	StatusColor      string                   `json:"statusColor"`
	Notes            *string                  `json:"notes,omitempty"`
}

// CompactCard компактная карточка записи (mobile), без редактирования статуса
type CompactCard struct {
	ID          int64                    `json:"id"`
	ClientName  string                   `json:"clientName"`
	Time        types.TimeString         `json:"time"`
	Status      domain.AppointmentStatus `json:"status"`
	StatusColor string                   `json:"statusColor"`
}

// DesktopCell ячейка сетки: один мастер в одном слоте
type DesktopCell struct {
	DroppableID      domain.CellKey   `json:"droppableId"`
	ProfessionalName string           `json:"professionalName"`
	Time             types.TimeString `json:"time"`
	Appointments     []Card           `json:"appointments"`
}

// DesktopRow строка сетки: слот времени по всем мастерам
type DesktopRow struct {
	Time  types.TimeString `json:"time"`
	Cells []DesktopCell    `json:"cells"`
}

// DesktopGrid сетка: строки слоты, колонки мастера
type DesktopGrid struct {
	Date          string         `json:"date"`
	Professionals []string       `json:"professionals"`
	Rows          []DesktopRow   `json:"rows"`
	StatusOptions []StatusOption `json:"statusOptions"`
	Unplaced      []Card         `json:"unplaced"`
}

// MobileSlot слот в колонке мастера
type MobileSlot struct {
	Time         types.TimeString `json:"time"`
	DroppableID  domain.CellKey   `json:"droppableId"`
	Appointments []CompactCard    `json:"appointments"`
}

// MobileColumn колонка мастера с горизонтальной прокруткой
type MobileColumn struct {
	ProfessionalName string       `json:"professionalName"`
	Slots            []MobileSlot `json:"slots"`
}

// MobileGrid компактное представление той же сетки
type MobileGrid struct {
	Date     string         `json:"date"`
	Columns  []MobileColumn `json:"columns"`
	Unplaced []CompactCard  `json:"unplaced"`
}

func newCard(a domain.Appointment) Card {
	return Card{
		ID:               a.ID,
		ClientName:       a.ClientName,
		ServiceName:      a.ServiceName,
		ProfessionalName: a.ProfessionalName,
		Time:             a.Time,
		Status:           a.Status,
		StatusColor:      domain.StatusColor(string(a.Status)),
		Notes:            a.Notes,
	}
}

func newCompactCard(a domain.Appointment) CompactCard {
	return CompactCard{
		ID:          a.ID,
		ClientName:  a.ClientName,
		Time:        a.Time,
		Status:      a.Status,
		StatusColor: domain.StatusColor(string(a.Status)),
	}
}

// groupByCell раскладывает записи по ключам ячеек; записи вне сетки возвращаются отдельно
func groupByCell(appointments []domain.Appointment, professionals []string, slots []types.TimeString) (map[domain.CellKey][]domain.Appointment, []domain.Appointment) {
	cells := make(map[domain.CellKey]struct{}, len(professionals)*len(slots))
	for _, p := range professionals {
		for _, s := range slots {
			cells[domain.NewCellKey(p, s)] = struct{}{}
		}
	}

	grouped := make(map[domain.CellKey][]domain.Appointment)
	var unplaced []domain.Appointment
	for _, a := range appointments {
		key := a.Cell()
		if _, ok := cells[key]; !ok {
			unplaced = append(unplaced, a)
			continue
		}
		grouped[key] = append(grouped[key], a)
	}
	return grouped, unplaced
}

// BuildDesktopGrid строит desktop сетку по списку записей
func BuildDesktopGrid(date time.Time, appointments []domain.Appointment, professionals []string, slots []types.TimeString) DesktopGrid {
	grouped, unplaced := groupByCell(appointments, professionals, slots)

	rows := make([]DesktopRow, 0, len(slots))
	for _, slot := range slots {
		row := DesktopRow{Time: slot, Cells: make([]DesktopCell, 0, len(professionals))}
		for _, p := range professionals {
			key := domain.NewCellKey(p, slot)
			cards := make([]Card, 0, len(grouped[key]))
			for _, a := range grouped[key] {
				cards = append(cards, newCard(a))
			}
			row.Cells = append(row.Cells, DesktopCell{DroppableID: key, ProfessionalName: p, Time: slot, Appointments: cards})
		}
		rows = append(rows, row)
	}

	extra := make([]Card, 0, len(unplaced))
	for _, a := range unplaced {
		extra = append(extra, newCard(a))
	}

	return DesktopGrid{
		Date:          dateKey(date),
		Professionals: append([]string(nil), professionals...),
		Rows:          rows,
		StatusOptions: StatusOptions(),
		Unplaced:      extra,
	}
}

// BuildMobileGrid строит mobile представление по списку записей
func BuildMobileGrid(date time.Time, appointments []domain.Appointment, professionals []string, slots []types.TimeString) MobileGrid {
	grouped, unplaced := groupByCell(appointments, professionals, slots)

	columns := make([]MobileColumn, 0, len(professionals))
	for _, p := range professionals {
		column := MobileColumn{ProfessionalName: p, Slots: make([]MobileSlot, 0, len(slots))}
		for _, slot := range slots {
			key := domain.NewCellKey(p, slot)
			cards := make([]CompactCard, 0, len(grouped[key]))
			for _, a := range grouped[key] {
				cards = append(cards, newCompactCard(a))
			}
			column.Slots = append(column.Slots, MobileSlot{Time: slot, DroppableID: key, Appointments: cards})
		}
		columns = append(columns, column)
	}

	extra := make([]CompactCard, 0, len(unplaced))
	for _, a := range unplaced {
		extra = append(extra, newCompactCard(a))
	}

	return MobileGrid{Date: dateKey(date), Columns: columns, Unplaced: extra}
}

// DesktopGrid строит desktop сетку по текущему списку доски
func (b *Board) DesktopGrid(date time.Time, professionals []string, slots []types.TimeString) DesktopGrid {
	return BuildDesktopGrid(date, b.Appointments(date), professionals, slots)
}

// MobileGrid строит mobile представление по текущему списку доски
func (b *Board) MobileGrid(date time.Time, professionals []string, slots []types.TimeString) MobileGrid {
	return BuildMobileGrid(date, b.Appointments(date), professionals, slots)
}
