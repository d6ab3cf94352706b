package get_agenda

import (
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
)

// View вариант представления сетки
type View string

const (
	ViewDesktop View = "desktop"
	ViewMobile  View = "mobile"
)

// Request модель запроса сетки на дату
type Request struct {
	Date time.Time
	View View // пустое значение означает desktop
}

// Response модель ответа; заполнено ровно одно из представлений
type Response struct {
	Desktop *agenda.DesktopGrid
	Mobile  *agenda.MobileGrid
	// Stale true, если пока шла загрузка, была запрошена более новая; сетка построена по ее результату
	Stale bool
}
