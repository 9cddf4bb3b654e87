package storage

import (
	"database/sql"
	"fmt"

	"dinehall/internal/domain"
)

var orderSortFields = map[string]string{
	"id":           "o.id",
	"table_id":     "o.table_id",
	"status":       "o.status",
	"total_amount": "o.total_amount",
	"created_at":   "o.created_at",
}

const orderColumns = "o.id, o.user_id, o.table_id, o.status, o.total_amount, o.created_at"

type OrderPostgres struct {
	DB *sql.DB
}

func NewOrderPostgres(db *sql.DB) *OrderPostgres {
	return &OrderPostgres{DB: db}
}

func (r *OrderPostgres) GetByID(id int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow("SELECT "+orderColumns+" FROM orders o WHERE o.id = $1", id).
		Scan(&order.ID, &order.UserID, &order.TableID, &order.Status, &order.TotalAmount, &order.CreatedAt)
	if err != nil {
		return nil, err
	}

	details, err := r.loadDetails(order.ID)
	if err != nil {
		return nil, err
	}
	order.Details = details
	return &order, nil
}

func (r *OrderPostgres) GetAll() ([]domain.Order, error) {
	rows, err := r.DB.Query("SELECT " + orderColumns + " FROM orders o ORDER BY o.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanOrders(rows)
}

func (r *OrderPostgres) GetPaginated(p domain.PageParams) (domain.Page[domain.Order], error) {
	p = p.Normalize()

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&total); err != nil {
		return domain.Page[domain.Order]{}, err
	}

	query := fmt.Sprintf("SELECT %s FROM orders o ORDER BY %s LIMIT $1 OFFSET $2",
		orderColumns, sortClause(orderSortFields, p.SortField, "o.created_at DESC, o.id", p.Descending))
	rows, err := r.DB.Query(query, p.Size, p.Offset())
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}
	defer rows.Close()

	orders, err := r.scanOrders(rows)
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}
	return domain.Page[domain.Order]{Items: orders, PageNumber: p.Page, PageSize: p.Size, TotalRecords: total}, nil
}

// Search matches the order id, the table id, or the owner's display name.
const orderSearchPredicate = `CAST(o.id AS TEXT) ILIKE '%' || $1 || '%'
	OR CAST(o.table_id AS TEXT) ILIKE '%' || $1 || '%'
	OR COALESCE(u.display_name, '') ILIKE '%' || $1 || '%'`

func (r *OrderPostgres) Search(keyword string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT `+orderColumns+`
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		WHERE `+orderSearchPredicate+`
		ORDER BY o.created_at DESC`, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanOrders(rows)
}

func (r *OrderPostgres) SearchPaginated(keyword string, p domain.PageParams) (domain.Page[domain.Order], error) {
	p = p.Normalize()

	var total int
	err := r.DB.QueryRow(`
		SELECT COUNT(*)
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		WHERE `+orderSearchPredicate, keyword).Scan(&total)
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		WHERE %s
		ORDER BY %s LIMIT $2 OFFSET $3`,
		orderColumns, orderSearchPredicate,
		sortClause(orderSortFields, p.SortField, "o.created_at DESC, o.id", p.Descending))
	rows, err := r.DB.Query(query, keyword, p.Size, p.Offset())
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}
	defer rows.Close()

	orders, err := r.scanOrders(rows)
	if err != nil {
		return domain.Page[domain.Order]{}, err
	}
	return domain.Page[domain.Order]{Items: orders, PageNumber: p.Page, PageSize: p.Size, TotalRecords: total}, nil
}

// Create persists the order and its details in one transaction; a failing
// line aborts everything.
func (r *OrderPostgres) Create(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (user_id, table_id, status, total_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		order.UserID, order.TableID, order.Status, order.TotalAmount).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Details {
		detail := &order.Details[i]
		detail.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_details (order_id, menu_item_id, item_name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			detail.OrderID, detail.MenuItemID, detail.ItemName, detail.Quantity, detail.Price).
			Scan(&detail.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Update rewrites the order row and replaces its detail list wholesale.
func (r *OrderPostgres) Update(order *domain.Order) (bool, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE orders SET table_id = $1, status = $2, total_amount = $3 WHERE id = $4`,
		order.TableID, order.Status, order.TotalAmount, order.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if err := replaceDetailsTx(tx, order.ID, order.Details); err != nil {
		return false, err
	}
	return true, tx.Commit()
}

func (r *OrderPostgres) ReplaceDetails(orderID int, details []domain.OrderDetail, total float64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE orders SET total_amount = $1 WHERE id = $2", total, orderID); err != nil {
		return err
	}
	if err := replaceDetailsTx(tx, orderID, details); err != nil {
		return err
	}
	return tx.Commit()
}

func replaceDetailsTx(tx *sql.Tx, orderID int, details []domain.OrderDetail) error {
	if _, err := tx.Exec("DELETE FROM order_details WHERE order_id = $1", orderID); err != nil {
		return err
	}
	for i := range details {
		detail := &details[i]
		detail.OrderID = orderID
		if err := tx.QueryRow(`
			INSERT INTO order_details (order_id, menu_item_id, item_name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			detail.OrderID, detail.MenuItemID, detail.ItemName, detail.Quantity, detail.Price).
			Scan(&detail.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderPostgres) UpdateStatus(id int, status string) (bool, error) {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *OrderPostgres) Delete(id int) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *OrderPostgres) Exists(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM orders WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *OrderPostgres) Count() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count)
	return count, err
}

func (r *OrderPostgres) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *OrderPostgres) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (r *OrderPostgres) loadDetails(orderID int) ([]domain.OrderDetail, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, menu_item_id, item_name, quantity, price
		FROM order_details
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []domain.OrderDetail
	for rows.Next() {
		var detail domain.OrderDetail
		if err := rows.Scan(&detail.ID, &detail.OrderID, &detail.MenuItemID, &detail.ItemName, &detail.Quantity, &detail.Price); err != nil {
			continue
		}
		details = append(details, detail)
	}
	return details, rows.Err()
}

func (r *OrderPostgres) scanOrders(rows *sql.Rows) ([]domain.Order, error) {
	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.TableID, &order.Status, &order.TotalAmount, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		details, err := r.loadDetails(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Details = details
	}
	return orders, nil
}
