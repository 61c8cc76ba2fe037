package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	storage "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/shiftoverride"
)

// DefaultTTL время жизни кеша настроек и переопределений смен
// Настройки read-mostly: админ меняет их редко, а каждая генерация слотов
// их читает. Инвалидация при записи + TTL ограничивают staleness
const DefaultTTL = 60 * time.Second

const (
	calendarConfigKey = "salon:settings"
	overrideKeyPrefix = "salon:shift_override:"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// CalendarSource источник настроек календаря (репозиторий)
type CalendarSource interface {
	GetOrCreateDefault(ctx context.Context) (*domain.SalonCalendarConfig, error)
}

// CalendarCache read-through кеш настроек календаря поверх репозитория
// Ошибки Redis не фатальны: при недоступности кеша читаем из БД
type CalendarCache struct {
	client *redis.Client
	source CalendarSource
	ttl    time.Duration
	logger Logger
}

// NewCalendarCache создает кеширующую обёртку над репозиторием настроек
func NewCalendarCache(client *redis.Client, source CalendarSource, ttl time.Duration, logger Logger) *CalendarCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CalendarCache{client: client, source: source, ttl: ttl, logger: logger}
}

// GetOrCreateDefault возвращает настройки из кеша или из репозитория
func (c *CalendarCache) GetOrCreateDefault(ctx context.Context) (*domain.SalonCalendarConfig, error) {
	var cfg domain.SalonCalendarConfig
	if err := c.get(ctx, calendarConfigKey, &cfg); err == nil {
		return &cfg, nil
	} else if !errors.Is(err, ErrCacheMiss) {
		c.logger.Warn("CalendarCache: redis get failed, falling back to repository: %v", err)
	}

	fresh, err := c.source.GetOrCreateDefault(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, calendarConfigKey, fresh); err != nil {
		c.logger.Warn("CalendarCache: redis set failed: %v", err)
	}

	return fresh, nil
}

// Invalidate сбрасывает кеш настроек (вызывается при админском обновлении)
func (c *CalendarCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, calendarConfigKey).Err(); err != nil {
		c.logger.Warn("CalendarCache: redis del failed: %v", err)
	}
}

func (c *CalendarCache) get(ctx context.Context, key string, dest interface{}) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrCacheMiss
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

func (c *CalendarCache) set(ctx context.Context, key string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// OverrideSource источник переопределений смен (репозиторий)
type OverrideSource interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.ShiftOverride, error)
}

// overrideEnvelope кешируем и попадания, и промахи:
// для большинства дат переопределения нет, и это тоже стоит помнить
type overrideEnvelope struct {
	Found    bool                  `json:"found"`
	Override *domain.ShiftOverride `json:"override,omitempty"`
}

// OverrideCache read-through кеш переопределений смен по дате
type OverrideCache struct {
	client *redis.Client
	source OverrideSource
	ttl    time.Duration
	logger Logger
}

// NewOverrideCache создает кеширующую обёртку над репозиторием переопределений
func NewOverrideCache(client *redis.Client, source OverrideSource, ttl time.Duration, logger Logger) *OverrideCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &OverrideCache{client: client, source: source, ttl: ttl, logger: logger}
}

// GetByDate возвращает переопределение на дату из кеша или из репозитория
// Проксирует ErrOverrideNotFound репозитория, в том числе для кешированных промахов
func (c *OverrideCache) GetByDate(ctx context.Context, date time.Time) (*domain.ShiftOverride, error) {
	key := overrideKey(date)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var env overrideEnvelope
		if err := json.Unmarshal(raw, &env); err == nil {
			if !env.Found {
				return nil, storage.ErrOverrideNotFound
			}
			return env.Override, nil
		}
		c.logger.Warn("OverrideCache: corrupt cache entry for %s, falling back", key)
	} else if err != redis.Nil {
		c.logger.Warn("OverrideCache: redis get failed, falling back to repository: %v", err)
	}

	override, err := c.source.GetByDate(ctx, date)
	if err != nil && !errors.Is(err, storage.ErrOverrideNotFound) {
		return nil, err
	}

	env := overrideEnvelope{Found: err == nil, Override: override}
	if payload, mErr := json.Marshal(env); mErr == nil {
		if sErr := c.client.Set(ctx, key, payload, c.ttl).Err(); sErr != nil {
			c.logger.Warn("OverrideCache: redis set failed: %v", sErr)
		}
	}

	return override, err
}

// Invalidate сбрасывает кеш переопределения на дату (вызывается при upsert/delete)
func (c *OverrideCache) Invalidate(ctx context.Context, date time.Time) {
	if err := c.client.Del(ctx, overrideKey(date)).Err(); err != nil {
		c.logger.Warn("OverrideCache: redis del failed: %v", err)
	}
}

func overrideKey(date time.Time) string {
	return overrideKeyPrefix + date.Format(domain.DateFormat)
}
