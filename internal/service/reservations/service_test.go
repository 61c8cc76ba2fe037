package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	reservationRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/reservation"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/service/reservations/models"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

type fakeRepo struct {
	byID map[int64]*domain.Reservation

	cancelled     map[int64]string
	statusUpdates map[int64]domain.ReservationStatus
	deleted       []int64
}

func newFakeRepo(reservations ...*domain.Reservation) *fakeRepo {
	f := &fakeRepo{
		byID:          make(map[int64]*domain.Reservation),
		cancelled:     make(map[int64]string),
		statusUpdates: make(map[int64]domain.ReservationStatus),
	}
	for _, r := range reservations {
		f.byID[r.ID] = r
	}
	return f
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *res
	return &copied, nil
}

func (f *fakeRepo) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	out := make([]*domain.Reservation, 0, len(f.byID))
	for _, r := range f.byID {
		if !filter.IncludeInactive && !r.IsActive() {
			continue
		}
		if filter.Status != nil && r.Status != *filter.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	res, ok := f.byID[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	res.Status = status
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id int64, reason string) error {
	res, ok := f.byID[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	now := time.Now()
	res.Status = domain.StatusCancelled
	res.CancellationReason = &reason
	res.CancelledAt = &now
	f.cancelled[id] = reason
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type recordingNotifier struct {
	cancelled []string
}

func (n *recordingNotifier) ReservationCancelled(ctx context.Context, res *domain.Reservation, reason string) {
	n.cancelled = append(n.cancelled, reason)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedReservation(id int64) *domain.Reservation {
	return &domain.Reservation{
		ID:           id,
		CustomerName: "山田太郎",
		Date:         time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:    types.TimeString("10:00"),
		EndTime:      types.TimeString("11:00"),
		Course:       domain.Course60,
		Status:       domain.StatusConfirmed,
	}
}

func TestCancel_SetsStatusAndReason(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(1))
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		CancellationReason: "customer request",
	})
	require.NoError(t, err)

	assert.Equal(t, "customer request", repo.cancelled[1])
	assert.Equal(t, domain.StatusCancelled, repo.byID[1].Status)
	assert.NotNil(t, repo.byID[1].CancelledAt)
	require.Len(t, notifier.cancelled, 1)
	assert.Equal(t, "customer request", notifier.cancelled[0])
}

func TestCancel_BlankReasonRejected(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(1))
	svc := NewService(repo, &recordingNotifier{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{})
	assert.ErrorIs(t, err, ErrReasonRequired)
	assert.Empty(t, repo.cancelled)
}

func TestCancel_AlreadyCancelledGuarded(t *testing.T) {
	res := confirmedReservation(1)
	res.Status = domain.StatusCancelled
	firstCancelledAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	res.CancelledAt = &firstCancelledAt

	repo := newFakeRepo(res)
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		CancellationReason: "again",
	})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Equal(t, firstCancelledAt, *repo.byID[1].CancelledAt, "first cancellation timestamp must survive")
	assert.Empty(t, notifier.cancelled)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	res := confirmedReservation(1)
	res.Status = domain.StatusCompleted

	repo := newFakeRepo(res)
	svc := NewService(repo, &recordingNotifier{}, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		CancellationReason: "late",
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_BreakDoesNotEmitEvent(t *testing.T) {
	res := confirmedReservation(1)
	res.IsBreak = true

	repo := newFakeRepo(res)
	notifier := &recordingNotifier{}
	svc := NewService(repo, notifier, nopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelReservationRequest{
		CancellationReason: "shift change",
	})
	require.NoError(t, err)
	assert.Empty(t, notifier.cancelled)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), &recordingNotifier{}, nopLogger{})

	err := svc.Cancel(context.Background(), 99, &models.CancelReservationRequest{
		CancellationReason: "whatever",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestComplete_TransitionsStatus(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(1))
	svc := NewService(repo, &recordingNotifier{}, nopLogger{})

	err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.statusUpdates[1])
}

func TestMarkNoShow_TransitionsStatus(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(1))
	svc := NewService(repo, &recordingNotifier{}, nopLogger{})

	err := svc.MarkNoShow(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, repo.statusUpdates[1])
}

func TestUpdateStatus_CancellationMustUseCancel(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(1))
	svc := NewService(repo, &recordingNotifier{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: string(domain.StatusCancelled),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_InvalidStatusRejected(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(1))
	svc := NewService(repo, &recordingNotifier{}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{
		Status: "postponed",
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestDestroy_DeletesRegardlessOfStatus(t *testing.T) {
	res := confirmedReservation(1)
	res.Status = domain.StatusCompleted

	repo := newFakeRepo(res)
	svc := NewService(repo, &recordingNotifier{}, nopLogger{})

	err := svc.Destroy(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDestroy_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), &recordingNotifier{}, nopLogger{})

	err := svc.Destroy(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestList_ExcludesCancelledByDefault(t *testing.T) {
	active := confirmedReservation(1)
	cancelled := confirmedReservation(2)
	cancelled.Status = domain.StatusCancelled

	repo := newFakeRepo(active, cancelled)
	svc := NewService(repo, &recordingNotifier{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(1), resp.Reservations[0].ID)
}

func TestList_InvalidStatusRejected(t *testing.T) {
	svc := NewService(newFakeRepo(), &recordingNotifier{}, nopLogger{})

	bad := "unknown"
	_, err := svc.List(context.Background(), &models.ListReservationsRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_MapsDisplayStatus(t *testing.T) {
	repo := newFakeRepo(confirmedReservation(1))
	svc := NewService(repo, &recordingNotifier{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "確定", resp.StatusDisplay)
	assert.Equal(t, "10:00", resp.StartTime)
}
