package storage

import (
	"context"
	"time"

	"telecheck-service/internal/app/contracts"
	"telecheck-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type redisSessionStorage struct {
	client *redis.Client
}

func NewRedisSessionStorage(client *redis.Client) contracts.SessionStorage {
	return &redisSessionStorage{client: client}
}

func (s *redisSessionStorage) Set(ctx context.Context, key, value string, exp time.Duration) error {
	err := s.client.Set(ctx, key, value, exp).Err()
	if err != nil {
		return exceptions.ErrStorageSet(err)
	}
	return nil
}

func (s *redisSessionStorage) Get(ctx context.Context, key string) (string, error) {
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrStorageGet(err)
	}
	return data, nil
}

func (s *redisSessionStorage) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := s.client.Del(ctx, keys...).Err()
	if err != nil {
		return exceptions.ErrStorageDelete(err)
	}
	return nil
}

func (s *redisSessionStorage) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, exceptions.ErrStorageIncrement(err)
	}
	if count == 1 {
		if err := s.client.Expire(ctx, key, ttl).Err(); err != nil {
			return count, exceptions.ErrStorageIncrement(err)
		}
	}
	return count, nil
}
