package models

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// SubmitResponseRequest заполненная анкета
type SubmitResponseRequest struct {
	TemplateID int64           `json:"templateId"`
	ClientID   int64           `json:"clientId"`
	Answers    []domain.Answer `json:"answers"`
}

// TemplateResponse ответ с шаблоном анкеты
type TemplateResponse struct {
	ID          int64                   `json:"id"`
	Name        string                  `json:"name"`
	Description *string                 `json:"description,omitempty"`
	Fields      []domain.AnamnesisField `json:"fields"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// TemplateListResponse ответ со списком шаблонов
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}

// AnswersResponse заполненная анкета; ответы упорядочены по ключу
type AnswersResponse struct {
	ID          int64           `json:"id"`
	TemplateID  int64           `json:"templateId"`
	ClientID    int64           `json:"clientId"`
	Answers     []domain.Answer `json:"answers"`
	SubmittedAt time.Time       `json:"submittedAt"`
}

// AnswersListResponse ответ со списком анкет клиента
type AnswersListResponse struct {
	Responses []AnswersResponse `json:"responses"`
	Total     int               `json:"total"`
}

// FromDomainTemplate конвертирует domain модель в response
func FromDomainTemplate(t *domain.AnamnesisTemplate) *TemplateResponse {
	fields := t.Fields
	if fields == nil {
		fields = []domain.AnamnesisField{}
	}
	return &TemplateResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Fields:      fields,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDomainTemplateList конвертирует список domain моделей в response
func FromDomainTemplateList(list []*domain.AnamnesisTemplate) *TemplateListResponse {
	items := make([]TemplateResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *FromDomainTemplate(t))
	}
	return &TemplateListResponse{Templates: items, Total: len(items)}
}

// FromDomainResponse конвертирует domain модель в response
func FromDomainResponse(r *domain.AnamnesisResponse) (*AnswersResponse, error) {
	answers, err := domain.EncodeAnswers(r.Answers)
	if err != nil {
		return nil, err
	}
	sort.Slice(answers, func(i, j int) bool { return answers[i].Key < answers[j].Key })

	return &AnswersResponse{
		ID:          r.ID,
		TemplateID:  r.TemplateID,
		ClientID:    r.ClientID,
		Answers:     answers,
		SubmittedAt: r.SubmittedAt,
	}, nil
}
