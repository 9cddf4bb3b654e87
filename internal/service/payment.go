package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dinehall/internal/domain"
)

// PaymentService tracks settlement independently of the order aggregate.
// Several payments may reference one order; nothing here ever flips an
// order's status, that coupling stays with the operator.
type PaymentService struct {
	repo      PaymentRepository
	orders    OrderChecker
	publisher EventPublisher
}

func NewPaymentService(repo PaymentRepository, orders OrderChecker, publisher EventPublisher) *PaymentService {
	return &PaymentService{repo: repo, orders: orders, publisher: publisher}
}

func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) Result[PaymentDTO] {
	if req.Amount <= 0 {
		return fail[PaymentDTO](KindValidation, "payment amount must be greater than zero")
	}

	exists, err := s.orders.Exists(req.OrderID)
	if err != nil {
		return failErr[PaymentDTO]("create payment", err)
	}
	if !exists {
		return fail[PaymentDTO](KindNotFound, fmt.Sprintf("order with id %d not found", req.OrderID))
	}

	payment := &domain.Payment{
		OrderID: req.OrderID,
		Method:  req.Method,
		Amount:  req.Amount,
		Status:  domain.PaymentPending,
		PaidAt:  time.Now(),
	}
	for _, input := range req.Details {
		payment.Details = append(payment.Details, domain.PaymentDetail{
			Method:          input.Method,
			Amount:          input.Amount,
			TransactionCode: input.TransactionCode,
			Provider:        input.Provider,
			ExtraInfo:       input.ExtraInfo,
		})
	}

	if err := s.repo.Create(payment); err != nil {
		return failErr[PaymentDTO]("create payment", err)
	}

	s.publish(ctx, domain.Event{
		Type:      domain.EventPaymentCreated,
		OrderID:   payment.OrderID,
		PaymentID: payment.ID,
		Status:    payment.Status,
		Amount:    payment.Amount,
		Timestamp: time.Now(),
	})

	return ok(paymentToDTO(payment))
}

func (s *PaymentService) Get(id int) Result[PaymentDTO] {
	payment, err := s.repo.GetByID(id)
	if err != nil {
		return failErr[PaymentDTO]("get payment", err)
	}
	return ok(paymentToDTO(payment))
}

// UpdateStatus is an administrative overwrite: any known status may be set
// regardless of the current one, so a failed payment can be reopened.
func (s *PaymentService) UpdateStatus(ctx context.Context, id int, status string) Result[PaymentDTO] {
	if !domain.ValidPaymentStatus(status) {
		return fail[PaymentDTO](KindValidation, fmt.Sprintf("unknown payment status %q", status))
	}

	updated, err := s.repo.UpdateStatus(id, status)
	if err != nil {
		return failErr[PaymentDTO]("update payment status", err)
	}
	if !updated {
		return fail[PaymentDTO](KindNotFound, fmt.Sprintf("payment with id %d not found", id))
	}

	s.publish(ctx, domain.Event{
		Type:      domain.EventPaymentStatus,
		PaymentID: id,
		Status:    status,
		Timestamp: time.Now(),
	})

	payment, err := s.repo.GetByID(id)
	if err != nil {
		return failErr[PaymentDTO]("update payment status", err)
	}
	return ok(paymentToDTO(payment))
}

// Verify is the webhook-facing confirm operation: an exact transaction-code
// match on any detail completes the payment and reports true. Re-verifying a
// completed payment with the same code succeeds again. Missing payments and
// unknown codes report false without an error.
func (s *PaymentService) Verify(ctx context.Context, id int, transactionCode string) (bool, error) {
	payment, err := s.repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	matched := false
	for _, detail := range payment.Details {
		if detail.TransactionCode != "" && detail.TransactionCode == transactionCode {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}

	if _, err := s.repo.UpdateStatus(id, domain.PaymentCompleted); err != nil {
		return false, err
	}

	s.publish(ctx, domain.Event{
		Type:      domain.EventPaymentCompleted,
		OrderID:   payment.OrderID,
		PaymentID: id,
		Status:    domain.PaymentCompleted,
		Amount:    payment.Amount,
		Timestamp: time.Now(),
	})

	return true, nil
}

func (s *PaymentService) ListByOrder(orderID int) Result[[]PaymentDTO] {
	payments, err := s.repo.ListByOrder(orderID)
	if err != nil {
		return failErr[[]PaymentDTO]("list payments by order", err)
	}
	return ok(s.toDTOs(payments))
}

func (s *PaymentService) ListByStatus(status string) Result[[]PaymentDTO] {
	if !domain.ValidPaymentStatus(status) {
		return fail[[]PaymentDTO](KindValidation, fmt.Sprintf("unknown payment status %q", status))
	}
	payments, err := s.repo.ListByStatus(status)
	if err != nil {
		return failErr[[]PaymentDTO]("list payments by status", err)
	}
	return ok(s.toDTOs(payments))
}

func (s *PaymentService) SearchByCode(code string) Result[[]PaymentDTO] {
	if strings.TrimSpace(code) == "" {
		return fail[[]PaymentDTO](KindValidation, "transaction code is required")
	}
	payments, err := s.repo.Search(code)
	if err != nil {
		return failErr[[]PaymentDTO]("search payments by code", err)
	}
	return ok(s.toDTOs(payments))
}

func (s *PaymentService) ListByDateRange(from, to time.Time) Result[[]PaymentDTO] {
	if from.After(to) {
		return fail[[]PaymentDTO](KindValidation, "range start must not be after range end")
	}
	payments, err := s.repo.ListByDateRange(from, to)
	if err != nil {
		return failErr[[]PaymentDTO]("list payments by date range", err)
	}
	return ok(s.toDTOs(payments))
}

func (s *PaymentService) TotalRevenue() Result[float64] {
	total, err := s.repo.TotalRevenue()
	if err != nil {
		return failErr[float64]("total revenue", err)
	}
	return ok(total)
}

// Statistics is recomputed on every call; nothing is cached.
func (s *PaymentService) Statistics() Result[domain.PaymentStatistics] {
	totals, err := s.repo.StatusTotals()
	if err != nil {
		return failErr[domain.PaymentStatistics]("payment statistics", err)
	}

	byStatus := map[string]domain.StatusBucket{
		domain.PaymentPending:   {},
		domain.PaymentCompleted: {},
		domain.PaymentFailed:    {},
	}
	for status, bucket := range totals {
		byStatus[status] = bucket
	}

	return ok(domain.PaymentStatistics{
		ByStatus:    byStatus,
		GeneratedAt: time.Now(),
	})
}

func (s *PaymentService) Delete(id int) Result[bool] {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return failErr[bool]("delete payment", err)
	}
	if !deleted {
		return fail[bool](KindNotFound, fmt.Sprintf("payment with id %d not found", id))
	}
	return ok(true)
}

func (s *PaymentService) toDTOs(payments []domain.Payment) []PaymentDTO {
	dtos := make([]PaymentDTO, 0, len(payments))
	for i := range payments {
		dtos = append(dtos, paymentToDTO(&payments[i]))
	}
	return dtos
}

func (s *PaymentService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[dinehall] failed to publish %s event: %v", event.Type, err)
	}
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
