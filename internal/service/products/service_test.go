package products

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	productRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/product"
	"github.com/m04kA/SMC-SalonAgenda/internal/integrations/objectstorage"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	rows map[int64]*domain.Product
}

func (f *fakeRepo) GetAll(context.Context, bool) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range f.rows {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	if p, ok := f.rows[id]; ok {
		return p, nil
	}
	return nil, productRepo.ErrProductNotFound
}

func (f *fakeRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	p.ID = int64(len(f.rows) + 1)
	f.rows[p.ID] = p
	return p, nil
}

func (f *fakeRepo) Update(_ context.Context, p *domain.Product) (*domain.Product, error) {
	f.rows[p.ID] = p
	return p, nil
}

func (f *fakeRepo) SetActive(_ context.Context, id int64, active bool) (*domain.Product, error) {
	p, err := f.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	p.IsActive = active
	return p, nil
}

func (f *fakeRepo) SetImageURL(_ context.Context, id int64, url string) (*domain.Product, error) {
	p, err := f.GetByID(context.Background(), id)
	if err != nil {
		return nil, err
	}
	p.ImageURL = &url
	return p, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

type fakeUploader struct {
	last objectstorage.Object
	err  error
}

func (f *fakeUploader) Upload(_ context.Context, obj objectstorage.Object) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.last = obj
	return "https://cdn.example.com/products/1/x.jpg", nil
}

func TestUploadImage(t *testing.T) {
	repo := &fakeRepo{rows: map[int64]*domain.Product{1: {ID: 1, Name: "Shampoo", Stock: 3, IsActive: true}}}
	uploader := &fakeUploader{}
	svc := NewService(repo, uploader, nopLogger{})

	resp, err := svc.UploadImage(context.Background(), 1, "image/jpeg", []byte{0xff, 0xd8})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/products/1/x.jpg", *resp.ImageURL)
	assert.Equal(t, objectstorage.BucketProducts, uploader.last.Bucket)
	assert.Equal(t, "1", uploader.last.Prefix)

	uploader.err = fmt.Errorf("%w: text/plain", objectstorage.ErrUnsupportedType)
	_, err = svc.UploadImage(context.Background(), 1, "text/plain", []byte("hi"))
	assert.ErrorIs(t, err, ErrInvalidImage)

	_, err = svc.UploadImage(context.Background(), 2, "image/jpeg", nil)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestToggleActive(t *testing.T) {
	repo := &fakeRepo{rows: map[int64]*domain.Product{1: {ID: 1, Name: "Shampoo", IsActive: true}}}
	svc := NewService(repo, &fakeUploader{}, nopLogger{})

	resp, err := svc.ToggleActive(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
}
