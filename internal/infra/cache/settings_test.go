package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	storage "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/shiftoverride"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/logger"
)

type fakeCalendarSource struct {
	calls int
	cfg   *domain.SalonCalendarConfig
}

func (f *fakeCalendarSource) GetOrCreateDefault(ctx context.Context) (*domain.SalonCalendarConfig, error) {
	f.calls++
	return f.cfg, nil
}

type fakeOverrideSource struct {
	calls    int
	override *domain.ShiftOverride
	err      error
}

func (f *fakeOverrideSource) GetByDate(ctx context.Context, date time.Time) (*domain.ShiftOverride, error) {
	f.calls++
	return f.override, f.err
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mini := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mini.Addr()})
}

func TestCalendarCache_ReadThrough(t *testing.T) {
	client := newTestRedis(t)
	source := &fakeCalendarSource{cfg: domain.DefaultCalendarConfig()}
	c := NewCalendarCache(client, source, time.Minute, logger.NewNop())

	ctx := context.Background()

	first, err := c.GetOrCreateDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	// второй вызов идет из кеша
	second, err := c.GetOrCreateDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, first.BusinessStart, second.BusinessStart)
	assert.Equal(t, first.ReservationIntervalMinutes, second.ReservationIntervalMinutes)
}

func TestCalendarCache_Invalidate(t *testing.T) {
	client := newTestRedis(t)
	source := &fakeCalendarSource{cfg: domain.DefaultCalendarConfig()}
	c := NewCalendarCache(client, source, time.Minute, logger.NewNop())

	ctx := context.Background()

	_, err := c.GetOrCreateDefault(ctx)
	require.NoError(t, err)

	c.Invalidate(ctx)

	_, err = c.GetOrCreateDefault(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestOverrideCache_CachesMisses(t *testing.T) {
	client := newTestRedis(t)
	source := &fakeOverrideSource{err: storage.ErrOverrideNotFound}
	c := NewOverrideCache(client, source, time.Minute, logger.NewNop())

	ctx := context.Background()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := c.GetByDate(ctx, date)
	assert.True(t, errors.Is(err, storage.ErrOverrideNotFound))
	assert.Equal(t, 1, source.calls)

	// промах закеширован: репозиторий больше не дергается
	_, err = c.GetByDate(ctx, date)
	assert.True(t, errors.Is(err, storage.ErrOverrideNotFound))
	assert.Equal(t, 1, source.calls)
}

func TestOverrideCache_HitAndInvalidate(t *testing.T) {
	client := newTestRedis(t)
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	source := &fakeOverrideSource{override: &domain.ShiftOverride{
		Date:      date,
		ShiftType: domain.ShiftClosed,
	}}
	c := NewOverrideCache(client, source, time.Minute, logger.NewNop())

	ctx := context.Background()

	got, err := c.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftClosed, got.ShiftType)

	got, err = c.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftClosed, got.ShiftType)
	assert.Equal(t, 1, source.calls)

	c.Invalidate(ctx, date)

	_, err = c.GetByDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestCalendarCache_RedisDownFallsBack(t *testing.T) {
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	mini.Close()

	source := &fakeCalendarSource{cfg: domain.DefaultCalendarConfig()}
	c := NewCalendarCache(client, source, time.Minute, logger.NewNop())

	got, err := c.GetOrCreateDefault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBusinessStart, got.BusinessStart)
	assert.Equal(t, 1, source.calls)
}
