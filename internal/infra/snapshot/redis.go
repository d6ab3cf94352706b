package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonAgenda/internal/domain"
)

// RedisClient подмножество методов go-redis, используемое хранилищем
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore хранит весь список записей под одним ключом
type RedisStore struct {
	client RedisClient
	key    string
}

// NewRedisStore создает хранилище снимка в redis
func NewRedisStore(client RedisClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// Save перезаписывает ключ полным списком
func (s *RedisStore) Save(ctx context.Context, appointments []domain.Appointment) error {
	data, err := Encode(appointments)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStorage, s.key, err)
	}
	return nil
}

// Load читает список; отсутствующий ключ означает отсутствие снимка
func (s *RedisStore) Load(ctx context.Context) ([]domain.Appointment, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrStorage, s.key, err)
	}
	return Decode(data)
}
