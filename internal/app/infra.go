package app

import (
	"facebook-auth/internal/config"
	"facebook-auth/internal/logger"
	"facebook-auth/internal/redis"
)

type Infra struct {
	Redis *redis.Client
}

func setupInfra(cfg config.Config) (*Infra, error) {
	redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{Redis: redisClient}, nil
}
