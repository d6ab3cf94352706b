package anamnesis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	anamnesisRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/anamnesis"
	clientRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/client"
	"github.com/m04kA/SMC-SalonAgenda/internal/service/anamnesis/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	templates map[int64]*domain.AnamnesisTemplate
	responses []*domain.AnamnesisResponse
}

func (f *fakeRepo) GetTemplates(context.Context) ([]*domain.AnamnesisTemplate, error) {
	var out []*domain.AnamnesisTemplate
	for _, t := range f.templates {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeRepo) GetTemplateByID(_ context.Context, id int64) (*domain.AnamnesisTemplate, error) {
	if t, ok := f.templates[id]; ok {
		return t, nil
	}
	return nil, anamnesisRepo.ErrTemplateNotFound
}

func (f *fakeRepo) CreateTemplate(_ context.Context, t *domain.AnamnesisTemplate) (*domain.AnamnesisTemplate, error) {
	t.ID = int64(len(f.templates) + 1)
	f.templates[t.ID] = t
	return t, nil
}

func (f *fakeRepo) CreateResponse(_ context.Context, r *domain.AnamnesisResponse) (*domain.AnamnesisResponse, error) {
	r.ID = int64(len(f.responses) + 1)
	f.responses = append(f.responses, r)
	return r, nil
}

func (f *fakeRepo) GetResponsesByClient(_ context.Context, clientID int64) ([]*domain.AnamnesisResponse, error) {
	var out []*domain.AnamnesisResponse
	for _, r := range f.responses {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeClients map[int64]bool

func (f fakeClients) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	if f[id] {
		return &domain.Client{ID: id}, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

func newService() (*Service, *fakeRepo) {
	repo := &fakeRepo{templates: map[int64]*domain.AnamnesisTemplate{
		1: {ID: 1, Name: "Capilar", Fields: []domain.AnamnesisField{
			{Key: "allergies", Label: "Alergias", Kind: domain.FieldText, Required: true},
			{Key: "nps", Label: "Nota", Kind: domain.FieldNPS},
		}},
	}}
	return NewService(repo, fakeClients{3: true}, nopLogger{}), repo
}

func answer(key string, kind domain.FieldKind, raw string) domain.Answer {
	return domain.Answer{Key: key, Kind: kind, Value: json.RawMessage(raw)}
}

func TestSubmitResponse(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.SubmitResponse(context.Background(), &models.SubmitResponseRequest{
		TemplateID: 1,
		ClientID:   3,
		Answers: []domain.Answer{
			answer("nps", domain.FieldNPS, `9`),
			answer("allergies", domain.FieldText, `"nenhuma"`),
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Answers, 2)
	assert.Equal(t, "allergies", resp.Answers[0].Key)
	assert.Len(t, repo.responses, 1)

	list, err := svc.ListClientResponses(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestSubmitResponse_Rejects(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	_, err := svc.SubmitResponse(ctx, &models.SubmitResponseRequest{TemplateID: 9, ClientID: 3})
	assert.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = svc.SubmitResponse(ctx, &models.SubmitResponseRequest{TemplateID: 1, ClientID: 4})
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.SubmitResponse(ctx, &models.SubmitResponseRequest{TemplateID: 1, ClientID: 3,
		Answers: []domain.Answer{answer("nps", domain.FieldNPS, `12`)}})
	assert.ErrorIs(t, err, ErrInvalidAnswers)

	_, err = svc.SubmitResponse(ctx, &models.SubmitResponseRequest{TemplateID: 1, ClientID: 3,
		Answers: []domain.Answer{answer("nps", domain.FieldNPS, `5`)}})
	assert.ErrorIs(t, err, ErrInvalidAnswers)

	assert.Empty(t, repo.responses)
}

func TestCreateTemplate(t *testing.T) {
	svc, _ := newService()

	created, err := svc.CreateTemplate(context.Background(), &domain.AnamnesisTemplate{
		Name:   "Pós-química",
		Fields: []domain.AnamnesisField{{Key: "terms", Label: "Aceito", Kind: domain.FieldAgree, Required: true}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)

	_, err = svc.CreateTemplate(context.Background(), &domain.AnamnesisTemplate{Name: ""})
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	_, err = svc.ListClientResponses(context.Background(), 4)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
