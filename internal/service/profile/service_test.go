package profile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
	profileRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/profile"
	"github.com/m04kA/SMC-SalonAgenda/internal/integrations/objectstorage"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	rows map[int64]*domain.Profile
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID int64) (*domain.Profile, error) {
	if p, ok := f.rows[userID]; ok {
		return p, nil
	}
	return nil, profileRepo.ErrProfileNotFound
}

func (f *fakeRepo) Upsert(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	if p.Role == "" {
		p.Role = "owner"
	}
	f.rows[p.UserID] = p
	return p, nil
}

func (f *fakeRepo) SetAvatarURL(ctx context.Context, userID int64, url string) (*domain.Profile, error) {
	p, err := f.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.AvatarURL = &url
	return p, nil
}

type staticUploader string

func (u staticUploader) Upload(context.Context, objectstorage.Object) (string, error) {
	return string(u), nil
}

func TestProfile(t *testing.T) {
	svc := NewService(&fakeRepo{rows: map[int64]*domain.Profile{}}, staticUploader("https://cdn/a.png"), nopLogger{})
	ctx := context.Background()

	_, err := svc.Get(ctx, 7)
	assert.ErrorIs(t, err, ErrProfileNotFound)

	_, err = svc.UploadAvatar(ctx, 7, "image/png", []byte("x"))
	assert.ErrorIs(t, err, ErrProfileNotFound)

	saved, err := svc.Update(ctx, &domain.Profile{UserID: 7, Name: "Joana"})
	require.NoError(t, err)
	assert.Equal(t, "owner", saved.Role)

	withAvatar, err := svc.UploadAvatar(ctx, 7, "image/png", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/a.png", *withAvatar.AvatarURL)
}
