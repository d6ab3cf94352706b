package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

func TestBuildDesktopGrid(t *testing.T) {
	slots := domain.DefaultTimeSlots()
	list := []domain.Appointment{
		appointment(1, "Ana", "09:00", domain.StatusScheduled),
		appointment(2, "Carlos", "10:30", domain.StatusCancelled),
		appointment(3, "Joana", "10:30", domain.StatusConfirmed),
		appointment(4, "Ana", "07:00", domain.StatusScheduled),
	}

	grid := BuildDesktopGrid(day, list, []string{"Ana", "Carlos"}, slots)

	assert.Equal(t, "2026-03-10", grid.Date)
	require.Len(t, grid.Rows, 22)
	for _, row := range grid.Rows {
		require.Len(t, row.Cells, 2)
		assert.Equal(t, domain.NewCellKey("Ana", row.Time), row.Cells[0].DroppableID)
		assert.Equal(t, domain.NewCellKey("Carlos", row.Time), row.Cells[1].DroppableID)
	}

	nine := grid.Rows[2]
	require.Equal(t, "09:00", nine.Time.String())
	require.Len(t, nine.Cells[0].Appointments, 1)
	assert.Equal(t, int64(1), nine.Cells[0].Appointments[0].ID)
	assert.Equal(t, domain.StatusColor("scheduled"), nine.Cells[0].Appointments[0].StatusColor)

	tenThirty := grid.Rows[5]
	require.Len(t, tenThirty.Cells[1].Appointments, 1)
	assert.Equal(t, domain.StatusColor("cancelled"), tenThirty.Cells[1].Appointments[0].StatusColor)

	require.Len(t, grid.Unplaced, 2)
	assert.Len(t, grid.StatusOptions, len(domain.AllStatuses))
	assert.Equal(t, domain.StatusScheduled, grid.StatusOptions[0].Value)
}

func TestBuildMobileGrid(t *testing.T) {
	slots := domain.DefaultTimeSlots()
	list := []domain.Appointment{
		appointment(1, "Ana", "09:00", domain.StatusNoShow),
		appointment(2, "Carlos", "18:30", domain.StatusCompleted),
	}

	grid := BuildMobileGrid(day, list, []string{"Ana", "Carlos"}, slots)

	require.Len(t, grid.Columns, 2)
	assert.Equal(t, "Ana", grid.Columns[0].ProfessionalName)
	require.Len(t, grid.Columns[0].Slots, 22)

	card := grid.Columns[0].Slots[2].Appointments[0]
	assert.Equal(t, int64(1), card.ID)
	assert.Equal(t, domain.StatusColor("no_show"), card.StatusColor)

	last := grid.Columns[1].Slots[21]
	assert.Equal(t, domain.CellKey("Carlos-18:30"), last.DroppableID)
	assert.Len(t, last.Appointments, 1)
	assert.Empty(t, grid.Unplaced)
}

func TestViews_SameData(t *testing.T) {
	slots := domain.DefaultTimeSlots()
	professionals := []string{"Ana", "Carlos", "Bia"}
	list := []domain.Appointment{
		appointment(1, "Ana", "09:00", domain.StatusScheduled),
		appointment(2, "Bia", "12:00", domain.StatusConfirmed),
		appointment(3, "Carlos", "15:30", domain.StatusCompleted),
	}

	desktop := BuildDesktopGrid(day, list, professionals, slots)
	mobile := BuildMobileGrid(day, list, professionals, slots)

	desktopIDs := map[domain.CellKey][]int64{}
	for _, row := range desktop.Rows {
		for _, cell := range row.Cells {
			for _, c := range cell.Appointments {
				desktopIDs[cell.DroppableID] = append(desktopIDs[cell.DroppableID], c.ID)
			}
		}
	}
	mobileIDs := map[domain.CellKey][]int64{}
	for _, col := range mobile.Columns {
		for _, slot := range col.Slots {
			for _, c := range slot.Appointments {
				mobileIDs[slot.DroppableID] = append(mobileIDs[slot.DroppableID], c.ID)
			}
		}
	}
	assert.Equal(t, desktopIDs, mobileIDs)
}
