package lease

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/siengefin/backend/internal/infrastructure/config"
)

// StoreFactory creates lease stores based on configuration
type StoreFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// StoreFactoryOption is a functional option for configuring the factory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to the in-memory store
// when Redis is unavailable. Default is true.
func WithInMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewStoreFactory creates a new factory
func NewStoreFactory(cfg config.RedisConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateStore creates a lease store. It tries Redis first and falls back to
// the in-memory store when Redis is unavailable and fallback is allowed.
func (f *StoreFactory) CreateStore() (Store, error) {
	store, err := NewRedisLeaseStore(f.redisConfig)
	if err == nil {
		f.logger.Info("Using Redis lease store",
			zap.String("host", f.redisConfig.Host),
			zap.Int("port", f.redisConfig.Port),
		)
		return store, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis lease store unavailable and in-memory fallback disabled: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory lease store",
		zap.Error(err),
	)
	return NewInMemoryLeaseStore(), nil
}
