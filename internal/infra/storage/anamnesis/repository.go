package anamnesis

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	"github.com/m04kA/SMC-SalonAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAgenda/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

const (
	templatesTable = "anamnesis_templates"
	responsesTable = "anamnesis_responses"
)

var (
	templateColumns = []string{"id", "name", "description", "fields", "created_at", "updated_at"}
	responseColumns = []string{"id", "template_id", "client_id", "answers", "submitted_at"}
)

// Repository репозиторий шаблонов анкет и ответов клиентов
// Поля шаблона и ответы хранятся в jsonb
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория анкет
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTemplates возвращает все шаблоны
func (r *Repository) GetTemplates(ctx context.Context) ([]*domain.AnamnesisTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(templateColumns...).From(templatesTable).OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	list := make([]*domain.AnamnesisTemplate, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetTemplates - scan row: %v", ErrScanRow, err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetTemplates - rows error: %v", ErrScanRow, err)
	}

	return list, nil
}

// GetTemplateByID получает шаблон по ID
func (r *Repository) GetTemplateByID(ctx context.Context, id int64) (*domain.AnamnesisTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(templateColumns...).From(templatesTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplateByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTemplate(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTemplateByID - scan template: %v", ErrScanRow, err)
	}

	return t, nil
}

// CreateTemplate создает шаблон
func (r *Repository) CreateTemplate(ctx context.Context, t *domain.AnamnesisTemplate) (*domain.AnamnesisTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	fields, err := json.Marshal(t.Fields)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTemplate - fields: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(templatesTable).
		Columns("name", "description", "fields").
		Values(t.Name, t.Description, string(fields)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTemplate - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateTemplate - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// CreateResponse сохраняет заполненную анкету
func (r *Repository) CreateResponse(ctx context.Context, resp *domain.AnamnesisResponse) (*domain.AnamnesisResponse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	encoded, err := domain.EncodeAnswers(resp.Answers)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateResponse - answers: %v", ErrEncode, err)
	}
	answers, err := json.Marshal(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateResponse - answers: %v", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(responsesTable).
		Columns("template_id", "client_id", "answers").
		Values(resp.TemplateID, resp.ClientID, string(answers)).
		Suffix("RETURNING id, submitted_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateResponse - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&resp.ID, &resp.SubmittedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateResponse - execute insert: %v", ErrExecQuery, err)
	}

	return resp, nil
}

// GetResponsesByClient возвращает анкеты клиента, новые первыми
func (r *Repository) GetResponsesByClient(ctx context.Context, clientID int64) ([]*domain.AnamnesisResponse, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(responseColumns...).
		From(responsesTable).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("submitted_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetResponsesByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetResponsesByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	list := make([]*domain.AnamnesisResponse, 0)
	for rows.Next() {
		var resp domain.AnamnesisResponse
		var raw []byte
		if err := rows.Scan(&resp.ID, &resp.TemplateID, &resp.ClientID, &raw, &resp.SubmittedAt); err != nil {
			return nil, fmt.Errorf("%w: GetResponsesByClient - scan row: %v", ErrScanRow, err)
		}

		var answers []domain.Answer
		if err := json.Unmarshal(raw, &answers); err != nil {
			return nil, fmt.Errorf("%w: GetResponsesByClient - answers of response %d: %v", ErrScanRow, resp.ID, err)
		}
		resp.Answers, err = domain.DecodeAnswers(answers)
		if err != nil {
			return nil, fmt.Errorf("%w: GetResponsesByClient - answers of response %d: %v", ErrScanRow, resp.ID, err)
		}

		list = append(list, &resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetResponsesByClient - rows error: %v", ErrScanRow, err)
	}

	return list, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTemplate(row rowScanner) (*domain.AnamnesisTemplate, error) {
	var t domain.AnamnesisTemplate
	var fields []byte

	if err := row.Scan(&t.ID, &t.Name, &t.Description, &fields, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(fields, &t.Fields); err != nil {
		return nil, fmt.Errorf("fields of template %d: %w", t.ID, err)
	}

	return &t, nil
}
