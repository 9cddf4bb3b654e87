package storage

import (
	"database/sql"
	"fmt"
	"time"

	"dinehall/internal/domain"
)

var paymentSortFields = map[string]string{
	"id":       "p.id",
	"order_id": "p.order_id",
	"amount":   "p.amount",
	"status":   "p.status",
	"paid_at":  "p.paid_at",
}

const paymentColumns = "p.id, p.order_id, p.method, p.amount, p.status, p.paid_at"

type PaymentPostgres struct {
	DB *sql.DB
}

func NewPaymentPostgres(db *sql.DB) *PaymentPostgres {
	return &PaymentPostgres{DB: db}
}

func (r *PaymentPostgres) GetByID(id int) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.DB.QueryRow("SELECT "+paymentColumns+" FROM payments p WHERE p.id = $1", id).
		Scan(&payment.ID, &payment.OrderID, &payment.Method, &payment.Amount, &payment.Status, &payment.PaidAt)
	if err != nil {
		return nil, err
	}

	details, err := r.loadDetails(payment.ID)
	if err != nil {
		return nil, err
	}
	payment.Details = details
	return &payment, nil
}

func (r *PaymentPostgres) GetAll() ([]domain.Payment, error) {
	return r.queryPayments("SELECT " + paymentColumns + " FROM payments p ORDER BY p.paid_at DESC")
}

func (r *PaymentPostgres) GetPaginated(p domain.PageParams) (domain.Page[domain.Payment], error) {
	p = p.Normalize()

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM payments").Scan(&total); err != nil {
		return domain.Page[domain.Payment]{}, err
	}

	query := fmt.Sprintf("SELECT %s FROM payments p ORDER BY %s LIMIT $1 OFFSET $2",
		paymentColumns, sortClause(paymentSortFields, p.SortField, "p.paid_at DESC, p.id", p.Descending))
	payments, err := r.queryPayments(query, p.Size, p.Offset())
	if err != nil {
		return domain.Page[domain.Payment]{}, err
	}
	return domain.Page[domain.Payment]{Items: payments, PageNumber: p.Page, PageSize: p.Size, TotalRecords: total}, nil
}

// Search matches a transaction-code substring on any detail.
const paymentSearchPredicate = `EXISTS(
	SELECT 1 FROM payment_details pd
	WHERE pd.payment_id = p.id AND pd.transaction_code ILIKE '%' || $1 || '%'
)`

func (r *PaymentPostgres) Search(keyword string) ([]domain.Payment, error) {
	return r.queryPayments(
		"SELECT "+paymentColumns+" FROM payments p WHERE "+paymentSearchPredicate+" ORDER BY p.paid_at DESC",
		keyword)
}

func (r *PaymentPostgres) SearchPaginated(keyword string, p domain.PageParams) (domain.Page[domain.Payment], error) {
	p = p.Normalize()

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM payments p WHERE "+paymentSearchPredicate, keyword).Scan(&total); err != nil {
		return domain.Page[domain.Payment]{}, err
	}

	query := fmt.Sprintf("SELECT %s FROM payments p WHERE %s ORDER BY %s LIMIT $2 OFFSET $3",
		paymentColumns, paymentSearchPredicate,
		sortClause(paymentSortFields, p.SortField, "p.paid_at DESC, p.id", p.Descending))
	payments, err := r.queryPayments(query, keyword, p.Size, p.Offset())
	if err != nil {
		return domain.Page[domain.Payment]{}, err
	}
	return domain.Page[domain.Payment]{Items: payments, PageNumber: p.Page, PageSize: p.Size, TotalRecords: total}, nil
}

func (r *PaymentPostgres) Create(payment *domain.Payment) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO payments (order_id, method, amount, status, paid_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, paid_at`,
		payment.OrderID, payment.Method, payment.Amount, payment.Status, payment.PaidAt).
		Scan(&payment.ID, &payment.PaidAt); err != nil {
		return err
	}

	for i := range payment.Details {
		detail := &payment.Details[i]
		detail.PaymentID = payment.ID
		if err := tx.QueryRow(`
			INSERT INTO payment_details (payment_id, method, amount, transaction_code, provider, extra_info)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			detail.PaymentID, detail.Method, detail.Amount, detail.TransactionCode, detail.Provider, detail.ExtraInfo).
			Scan(&detail.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PaymentPostgres) Update(payment *domain.Payment) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE payments SET order_id = $1, method = $2, amount = $3, status = $4 WHERE id = $5`,
		payment.OrderID, payment.Method, payment.Amount, payment.Status, payment.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *PaymentPostgres) UpdateStatus(id int, status string) (bool, error) {
	result, err := r.DB.Exec("UPDATE payments SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *PaymentPostgres) Delete(id int) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM payments WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *PaymentPostgres) Exists(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM payments WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *PaymentPostgres) Count() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM payments").Scan(&count)
	return count, err
}

func (r *PaymentPostgres) ListByOrder(orderID int) ([]domain.Payment, error) {
	return r.queryPayments(
		"SELECT "+paymentColumns+" FROM payments p WHERE p.order_id = $1 ORDER BY p.paid_at DESC",
		orderID)
}

func (r *PaymentPostgres) ListByStatus(status string) ([]domain.Payment, error) {
	return r.queryPayments(
		"SELECT "+paymentColumns+" FROM payments p WHERE p.status = $1 ORDER BY p.paid_at DESC",
		status)
}

func (r *PaymentPostgres) ListByDateRange(from, to time.Time) ([]domain.Payment, error) {
	return r.queryPayments(
		"SELECT "+paymentColumns+" FROM payments p WHERE p.paid_at >= $1 AND p.paid_at <= $2 ORDER BY p.paid_at DESC",
		from, to)
}

func (r *PaymentPostgres) TotalRevenue() (float64, error) {
	var total float64
	err := r.DB.QueryRow(
		"SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = $1",
		domain.PaymentCompleted).Scan(&total)
	return total, err
}

func (r *PaymentPostgres) StatusTotals() (map[string]domain.StatusBucket, error) {
	rows, err := r.DB.Query("SELECT status, COALESCE(SUM(amount), 0), COUNT(*) FROM payments GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := map[string]domain.StatusBucket{}
	for rows.Next() {
		var status string
		var bucket domain.StatusBucket
		if err := rows.Scan(&status, &bucket.Total, &bucket.Count); err != nil {
			continue
		}
		totals[status] = bucket
	}
	return totals, rows.Err()
}

func (r *PaymentPostgres) queryPayments(query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		if err := rows.Scan(&payment.ID, &payment.OrderID, &payment.Method, &payment.Amount, &payment.Status, &payment.PaidAt); err != nil {
			continue
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range payments {
		details, err := r.loadDetails(payments[i].ID)
		if err != nil {
			return nil, err
		}
		payments[i].Details = details
	}
	return payments, nil
}

func (r *PaymentPostgres) loadDetails(paymentID int) ([]domain.PaymentDetail, error) {
	rows, err := r.DB.Query(`
		SELECT id, payment_id, method, amount, transaction_code, provider, extra_info
		FROM payment_details
		WHERE payment_id = $1
		ORDER BY id`, paymentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.PaymentDetail
	for rows.Next() {
		var detail domain.PaymentDetail
		if err := rows.Scan(&detail.ID, &detail.PaymentID, &detail.Method, &detail.Amount, &detail.TransactionCode, &detail.Provider, &detail.ExtraInfo); err != nil {
			continue
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}
