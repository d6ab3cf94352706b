package get_agenda

import (
	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	getAgenda "github.com/m04kA/SMC-SalonAgenda/internal/usecase/get_agenda"
)

// AgendaResponse HTTP response model; заполнено одно из представлений
type AgendaResponse struct {
	View    string              `json:"view"`
	Stale   bool                `json:"stale"`
	Desktop *agenda.DesktopGrid `json:"desktop,omitempty"`
	Mobile  *agenda.MobileGrid  `json:"mobile,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(view getAgenda.View, resp *getAgenda.Response) *AgendaResponse {
	return &AgendaResponse{
		View:    string(view),
		Stale:   resp.Stale,
		Desktop: resp.Desktop,
		Mobile:  resp.Mobile,
	}
}
