package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"dinehall/internal/domain"
	"dinehall/internal/mocks"
	"dinehall/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success_starts_pending", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		orders.On("Exists", 10).Return(true, nil).Once()
		repo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Payment).ID = 5
		}).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		res := svc.Create(ctx, service.CreatePaymentRequest{
			OrderID: 10,
			Method:  "card",
			Amount:  12.50,
			Details: []service.PaymentDetailInput{
				{Method: "card", Amount: 12.50, TransactionCode: "TX-1", Provider: "visa"},
			},
		})

		assert.True(t, res.Success)
		assert.Equal(t, domain.PaymentPending, res.Data.Status)
		assert.Equal(t, 5, res.Data.ID)
		assert.Len(t, res.Data.Details, 1)
	})

	t.Run("non_positive_amount_is_invalid", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		for _, amount := range []float64{0, -3.00} {
			res := svc.Create(ctx, service.CreatePaymentRequest{OrderID: 10, Method: "cash", Amount: amount})
			assert.False(t, res.Success)
			assert.Equal(t, service.KindValidation, res.Kind)
		}
		orders.AssertNotCalled(t, "Exists", mock.Anything)
	})

	t.Run("unknown_order_is_not_found", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		orders.On("Exists", 404).Return(false, nil).Once()

		res := svc.Create(ctx, service.CreatePaymentRequest{OrderID: 404, Method: "cash", Amount: 5.00})
		assert.False(t, res.Success)
		assert.Equal(t, service.KindNotFound, res.Kind)
		repo.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("partial_payment_below_order_total_is_accepted", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		orders.On("Exists", 10).Return(true, nil).Once()
		repo.On("Create", mock.Anything).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		res := svc.Create(ctx, service.CreatePaymentRequest{OrderID: 10, Method: "cash", Amount: 0.01})
		assert.True(t, res.Success)
	})
}

func TestPaymentService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("any_known_status_overwrites", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("UpdateStatus", 5, domain.PaymentFailed).Return(true, nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("GetByID", 5).Return(&domain.Payment{ID: 5, Status: domain.PaymentFailed}, nil).Once()

		res := svc.UpdateStatus(ctx, 5, domain.PaymentFailed)
		assert.True(t, res.Success)
		assert.Equal(t, domain.PaymentFailed, res.Data.Status)
	})

	t.Run("failed_payment_can_be_reopened", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("UpdateStatus", 5, domain.PaymentPending).Return(true, nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
		repo.On("GetByID", 5).Return(&domain.Payment{ID: 5, Status: domain.PaymentPending}, nil).Once()

		res := svc.UpdateStatus(ctx, 5, domain.PaymentPending)
		assert.True(t, res.Success)
	})

	t.Run("missing_payment_is_not_found", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("UpdateStatus", 404, domain.PaymentCompleted).Return(false, nil).Once()

		res := svc.UpdateStatus(ctx, 404, domain.PaymentCompleted)
		assert.False(t, res.Success)
		assert.Equal(t, service.KindNotFound, res.Kind)
	})

	t.Run("unknown_status_is_invalid", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		res := svc.UpdateStatus(ctx, 5, "refunded")
		assert.False(t, res.Success)
		assert.Equal(t, service.KindValidation, res.Kind)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})
}

func TestPaymentService_Verify(t *testing.T) {
	ctx := context.Background()

	pending := func() *domain.Payment {
		return &domain.Payment{
			ID:      5,
			OrderID: 10,
			Amount:  12.50,
			Status:  domain.PaymentPending,
			Details: []domain.PaymentDetail{
				{TransactionCode: "TX-GOOD"},
				{TransactionCode: ""},
			},
		}
	}

	t.Run("matching_code_completes_payment", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("GetByID", 5).Return(pending(), nil).Once()
		repo.On("UpdateStatus", 5, domain.PaymentCompleted).Return(true, nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		verified, err := svc.Verify(ctx, 5, "TX-GOOD")
		assert.NoError(t, err)
		assert.True(t, verified)
	})

	t.Run("wrong_code_leaves_payment_untouched", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("GetByID", 5).Return(pending(), nil).Once()

		verified, err := svc.Verify(ctx, 5, "TX-WRONG")
		assert.NoError(t, err)
		assert.False(t, verified)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("empty_code_never_matches_blank_detail", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("GetByID", 5).Return(pending(), nil).Once()

		verified, err := svc.Verify(ctx, 5, "")
		assert.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("missing_payment_reports_false_without_error", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("GetByID", 404).Return(nil, sql.ErrNoRows).Once()

		verified, err := svc.Verify(ctx, 404, "TX-GOOD")
		assert.NoError(t, err)
		assert.False(t, verified)
	})

	t.Run("reverify_completed_payment_succeeds_again", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		completed := pending()
		completed.Status = domain.PaymentCompleted

		repo.On("GetByID", 5).Return(completed, nil).Twice()
		repo.On("UpdateStatus", 5, domain.PaymentCompleted).Return(true, nil).Twice()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Twice()

		for i := 0; i < 2; i++ {
			verified, err := svc.Verify(ctx, 5, "TX-GOOD")
			assert.NoError(t, err)
			assert.True(t, verified)
		}
	})
}

func TestPaymentService_Queries(t *testing.T) {
	t.Run("list_by_order", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("ListByOrder", 10).Return([]domain.Payment{{ID: 1, OrderID: 10}, {ID: 2, OrderID: 10}}, nil).Once()

		res := svc.ListByOrder(10)
		assert.True(t, res.Success)
		assert.Len(t, res.Data, 2)
	})

	t.Run("list_by_order_with_no_payments_is_empty_success", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("ListByOrder", 11).Return([]domain.Payment{}, nil).Once()

		res := svc.ListByOrder(11)
		assert.True(t, res.Success)
		assert.Empty(t, res.Data)
	})

	t.Run("list_by_status_rejects_unknown", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		res := svc.ListByStatus("charged")
		assert.False(t, res.Success)
		assert.Equal(t, service.KindValidation, res.Kind)
	})

	t.Run("search_by_code_requires_keyword", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		res := svc.SearchByCode("   ")
		assert.False(t, res.Success)
		assert.Equal(t, service.KindValidation, res.Kind)
	})

	t.Run("date_range_rejects_inverted_bounds", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		res := svc.ListByDateRange(from, to)
		assert.False(t, res.Success)
		assert.Equal(t, service.KindValidation, res.Kind)
	})

	t.Run("total_revenue", func(t *testing.T) {
		repo := mocks.NewPaymentRepository(t)
		orders := mocks.NewOrderChecker(t)
		publisher := mocks.NewEventPublisher(t)
		svc := service.NewPaymentService(repo, orders, publisher)

		repo.On("TotalRevenue").Return(150.75, nil).Once()

		res := svc.TotalRevenue()
		assert.True(t, res.Success)
		assert.Equal(t, 150.75, res.Data)
	})
}

func TestPaymentService_Statistics(t *testing.T) {
	repo := mocks.NewPaymentRepository(t)
	orders := mocks.NewOrderChecker(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewPaymentService(repo, orders, publisher)

	repo.On("StatusTotals").Return(map[string]domain.StatusBucket{
		domain.PaymentCompleted: {Total: 100.00, Count: 4},
	}, nil).Once()

	res := svc.Statistics()
	assert.True(t, res.Success)
	assert.Len(t, res.Data.ByStatus, 3)
	assert.Equal(t, 100.00, res.Data.ByStatus[domain.PaymentCompleted].Total)
	assert.Equal(t, 4, res.Data.ByStatus[domain.PaymentCompleted].Count)
	assert.Zero(t, res.Data.ByStatus[domain.PaymentPending].Count)
	assert.Zero(t, res.Data.ByStatus[domain.PaymentFailed].Total)
	assert.False(t, res.Data.GeneratedAt.IsZero())
}

func TestPaymentService_Delete(t *testing.T) {
	repo := mocks.NewPaymentRepository(t)
	orders := mocks.NewOrderChecker(t)
	publisher := mocks.NewEventPublisher(t)
	svc := service.NewPaymentService(repo, orders, publisher)

	repo.On("Delete", 5).Return(true, nil).Once()
	res := svc.Delete(5)
	assert.True(t, res.Success)

	repo.On("Delete", 404).Return(false, nil).Once()
	res = svc.Delete(404)
	assert.False(t, res.Success)
	assert.Equal(t, service.KindNotFound, res.Kind)
}
