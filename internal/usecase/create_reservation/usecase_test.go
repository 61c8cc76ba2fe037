package create_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/shiftoverride"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

type fakeReservationRepo struct {
	stored []*domain.Reservation
	nextID int64
}

func (f *fakeReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.nextID++
	created := *res
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.stored = append(f.stored, &created)
	return &created, nil
}

func (f *fakeReservationRepo) GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0, len(f.stored))
	for _, r := range f.stored {
		if r.Date.Equal(date) && (includeInactive || r.IsActive()) {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubCalendarProvider struct {
	cfg *domain.SalonCalendarConfig
}

func (s *stubCalendarProvider) GetOrCreateDefault(ctx context.Context) (*domain.SalonCalendarConfig, error) {
	return s.cfg, nil
}

type stubOverrideProvider struct {
	override *domain.ShiftOverride
}

func (s *stubOverrideProvider) GetByDate(ctx context.Context, date time.Time) (*domain.ShiftOverride, error) {
	if s.override == nil {
		return nil, shiftoverride.ErrOverrideNotFound
	}
	return s.override, nil
}

type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type recordingNotifier struct {
	created []*domain.Reservation
}

func (n *recordingNotifier) ReservationCreated(ctx context.Context, res *domain.Reservation) {
	n.created = append(n.created, res)
}

type stubTimeProvider struct {
	now time.Time
}

func (s *stubTimeProvider) Now() time.Time {
	return s.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	uc       *UseCase
	repo     *fakeReservationRepo
	tx       *passthroughTxManager
	notifier *recordingNotifier
}

func newFixture(cfg *domain.SalonCalendarConfig, override *domain.ShiftOverride, now time.Time) *fixture {
	repo := &fakeReservationRepo{}
	tx := &passthroughTxManager{}
	notifier := &recordingNotifier{}

	uc := NewUseCase(
		repo,
		&stubCalendarProvider{cfg: cfg},
		&stubOverrideProvider{override: override},
		tx,
		notifier,
		nopLogger{},
	)
	uc.timeProvider = &stubTimeProvider{now: now}

	return &fixture{uc: uc, repo: repo, tx: tx, notifier: notifier}
}

func testConfig() *domain.SalonCalendarConfig {
	return &domain.SalonCalendarConfig{
		BusinessStart:              10,
		BusinessEnd:                20,
		SlotIntervalMinutes:        30,
		ReservationIntervalMinutes: 15,
		MaxAdvanceBookingDays:      30,
		MinAdvanceBookingHours:     24,
		SundayClosed:               true,
	}
}

func validRequest() *Request {
	return &Request{
		CustomerName: "山田太郎",
		Date:         time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), // понедельник
		StartTime:    types.TimeString("10:00"),
		EndTime:      types.TimeString("11:00"),
		Course:       domain.Course60,
	}
}

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestExecute_CreatesTentativeByDefault(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusTentative), resp.Status)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 1, f.tx.calls)
	require.Len(t, f.notifier.created, 1)
	assert.Equal(t, resp.ID, f.notifier.created[0].ID)
}

func TestExecute_ConfirmedWhenRequested(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	req := validRequest()
	req.Confirmed = true

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_ConflictNotPersisted(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Второй запрос на пересекающийся интервал: буфер 15 минут вокруг
	// 10:00-11:00 блокирует кандидатов до 11:15
	req := validRequest()
	req.StartTime = types.TimeString("11:10")
	req.EndTime = types.TimeString("12:10")

	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, f.repo.stored, 1)
	assert.Len(t, f.notifier.created, 1)
}

func TestExecute_BufferBoundaryAllowed(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 11:20 выровнено по сетке и лежит за границей буфера 11:15
	req := validRequest()
	req.StartTime = types.TimeString("11:20")
	req.EndTime = types.TimeString("12:20")

	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, f.repo.stored, 2)
}

func TestExecute_SequentialDuplicateRejected(t *testing.T) {
	// Регрессия на гонку create/create: проверка конфликтов и запись идут
	// в одной сериализуемой транзакции, поэтому из двух запросов на один
	// и тот же интервал пройти может только первый
	f := newFixture(testConfig(), nil, testNow)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Len(t, f.repo.stored, 1)
}

// serializingTxManager исполняет транзакции строго по одной, как
// сериализуемая изоляция в PostgreSQL
type serializingTxManager struct {
	mu sync.Mutex
}

func (m *serializingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

func TestExecute_ConcurrentDuplicateRejected(t *testing.T) {
	// Регрессия на гонку create/create: два параллельных запроса на один
	// и тот же интервал, транзакции сериализованы, пройти должен ровно один
	repo := &fakeReservationRepo{}
	notifier := &recordingNotifier{}

	uc := NewUseCase(
		repo,
		&stubCalendarProvider{cfg: testConfig()},
		&stubOverrideProvider{},
		&serializingTxManager{},
		notifier,
		nopLogger{},
	)
	uc.timeProvider = &stubTimeProvider{now: testNow}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), validRequest())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Len(t, repo.stored, 1)
	assert.Len(t, notifier.created, 1)
}

func TestExecute_MisalignedTimeRejected(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	req := validRequest()
	req.StartTime = types.TimeString("10:05")
	req.EndTime = types.TimeString("11:05")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	assert.Empty(t, f.repo.stored)
}

func TestExecute_OutsideBusinessHoursRejected(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	req := validRequest()
	req.StartTime = types.TimeString("19:30")
	req.EndTime = types.TimeString("20:30")

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ClosedSundayRejected(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	req := validRequest()
	req.Date = time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC) // воскресенье

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestExecute_BreakOverlapRejected(t *testing.T) {
	start := types.TimeString("10:00")
	end := types.TimeString("20:00")
	override := &domain.ShiftOverride{
		Date:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		ShiftType: domain.ShiftCustom,
		StartTime: &start,
		EndTime:   &end,
		Breaks: []domain.BreakWindow{
			{Start: types.TimeString("10:30"), End: types.TimeString("11:30")},
		},
	}
	f := newFixture(testConfig(), override, testNow)

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_TooLateToBook(t *testing.T) {
	f := newFixture(testConfig(), nil, time.Date(2024, 6, 9, 18, 0, 0, 0, time.UTC))

	// Старт менее чем за 24 часа до now
	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_BreakSkipsAdvanceNotice(t *testing.T) {
	f := newFixture(testConfig(), nil, time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC))

	req := validRequest()
	req.IsBreak = true
	req.CustomerName = ""
	req.Course = ""

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.IsBreak)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Empty(t, f.notifier.created, "break records must not emit events")
}

func TestExecute_BlankCustomerNameRejected(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	req := validRequest()
	req.CustomerName = ""

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	f.repo.stored[0].Status = domain.StatusCancelled

	_, err = f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, f.repo.stored, 2)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	f := newFixture(testConfig(), nil, testNow)

	req := validRequest()
	req.Date = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}
