package storage

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"dinehall/internal/domain"
)

func TestPaymentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPaymentPostgres(db)
	now := time.Now()

	payment := &domain.Payment{
		OrderID: 42,
		Method:  "card",
		Amount:  12.50,
		Status:  domain.PaymentPending,
		PaidAt:  now,
		Details: []domain.PaymentDetail{
			{Method: "card", Amount: 12.50, TransactionCode: "TX-1", Provider: "visa"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(42, "card", 12.50, domain.PaymentPending, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "paid_at"}).AddRow(5, now))
	mock.ExpectQuery("INSERT INTO payment_details").
		WithArgs(5, "card", 12.50, "TX-1", "visa", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(200))
	mock.ExpectCommit()

	assert.NoError(t, repo.Create(payment))
	assert.Equal(t, 5, payment.ID)
	assert.Equal(t, 5, payment.Details[0].PaymentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgres_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPaymentPostgres(db)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM payments p WHERE p.id").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "method", "amount", "status", "paid_at"}).
			AddRow(5, 42, "card", 12.50, domain.PaymentPending, now))
	mock.ExpectQuery("SELECT (.+) FROM payment_details").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "payment_id", "method", "amount", "transaction_code", "provider", "extra_info"}).
			AddRow(200, 5, "card", 12.50, "TX-1", "visa", ""))

	payment, err := repo.GetByID(5)
	assert.NoError(t, err)
	assert.Equal(t, 42, payment.OrderID)
	assert.Len(t, payment.Details, 1)
	assert.Equal(t, "TX-1", payment.Details[0].TransactionCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgres_TotalRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPaymentPostgres(db)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(domain.PaymentCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(150.75))

	total, err := repo.TotalRevenue()
	assert.NoError(t, err)
	assert.Equal(t, 150.75, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgres_StatusTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPaymentPostgres(db)

	mock.ExpectQuery("SELECT status, COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"status", "sum", "count"}).
			AddRow(domain.PaymentCompleted, 100.00, 4).
			AddRow(domain.PaymentPending, 30.00, 2))

	totals, err := repo.StatusTotals()
	assert.NoError(t, err)
	assert.Len(t, totals, 2)
	assert.Equal(t, 100.00, totals[domain.PaymentCompleted].Total)
	assert.Equal(t, 2, totals[domain.PaymentPending].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgres_ListByDateRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPaymentPostgres(db)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM payments p WHERE p.paid_at").
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "method", "amount", "status", "paid_at"}).
			AddRow(5, 42, "card", 12.50, domain.PaymentCompleted, from.Add(24*time.Hour)))
	mock.ExpectQuery("SELECT (.+) FROM payment_details").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "payment_id", "method", "amount", "transaction_code", "provider", "extra_info"}))

	payments, err := repo.ListByDateRange(from, to)
	assert.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPaymentPostgres(db)

	mock.ExpectExec("UPDATE payments SET status").
		WithArgs(domain.PaymentCompleted, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateStatus(5, domain.PaymentCompleted)
	assert.NoError(t, err)
	assert.True(t, updated)

	mock.ExpectExec("UPDATE payments SET status").
		WithArgs(domain.PaymentCompleted, 404).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err = repo.UpdateStatus(404, domain.PaymentCompleted)
	assert.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
