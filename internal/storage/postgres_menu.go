package storage

import (
	"database/sql"
	"fmt"

	"dinehall/internal/domain"
)

var menuSortFields = map[string]string{
	"id":         "id",
	"name":       "name",
	"price":      "price",
	"category":   "category",
	"created_at": "created_at",
}

const menuColumns = "id, name, COALESCE(description, ''), price, COALESCE(category, ''), availability, created_at"

type MenuPostgres struct {
	DB *sql.DB
}

func NewMenuPostgres(db *sql.DB) *MenuPostgres {
	return &MenuPostgres{DB: db}
}

func (r *MenuPostgres) GetByID(id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow("SELECT "+menuColumns+" FROM menu_items WHERE id = $1", id).
		Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.Availability, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuPostgres) GetAll() ([]domain.MenuItem, error) {
	rows, err := r.DB.Query("SELECT " + menuColumns + " FROM menu_items ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

func (r *MenuPostgres) GetPaginated(p domain.PageParams) (domain.Page[domain.MenuItem], error) {
	p = p.Normalize()

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&total); err != nil {
		return domain.Page[domain.MenuItem]{}, err
	}

	query := fmt.Sprintf("SELECT %s FROM menu_items ORDER BY %s LIMIT $1 OFFSET $2",
		menuColumns, sortClause(menuSortFields, p.SortField, "created_at DESC, id", p.Descending))
	rows, err := r.DB.Query(query, p.Size, p.Offset())
	if err != nil {
		return domain.Page[domain.MenuItem]{}, err
	}
	defer rows.Close()

	items, err := scanMenuItems(rows)
	if err != nil {
		return domain.Page[domain.MenuItem]{}, err
	}
	return domain.Page[domain.MenuItem]{Items: items, PageNumber: p.Page, PageSize: p.Size, TotalRecords: total}, nil
}

func (r *MenuPostgres) Search(keyword string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT `+menuColumns+` FROM menu_items
		WHERE name ILIKE '%' || $1 || '%'
		   OR description ILIKE '%' || $1 || '%'
		   OR category ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMenuItems(rows)
}

func (r *MenuPostgres) SearchPaginated(keyword string, p domain.PageParams) (domain.Page[domain.MenuItem], error) {
	p = p.Normalize()

	const predicate = `name ILIKE '%' || $1 || '%'
		OR description ILIKE '%' || $1 || '%'
		OR category ILIKE '%' || $1 || '%'`

	var total int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM menu_items WHERE "+predicate, keyword).Scan(&total); err != nil {
		return domain.Page[domain.MenuItem]{}, err
	}

	query := fmt.Sprintf("SELECT %s FROM menu_items WHERE %s ORDER BY %s LIMIT $2 OFFSET $3",
		menuColumns, predicate, sortClause(menuSortFields, p.SortField, "created_at DESC, id", p.Descending))
	rows, err := r.DB.Query(query, keyword, p.Size, p.Offset())
	if err != nil {
		return domain.Page[domain.MenuItem]{}, err
	}
	defer rows.Close()

	items, err := scanMenuItems(rows)
	if err != nil {
		return domain.Page[domain.MenuItem]{}, err
	}
	return domain.Page[domain.MenuItem]{Items: items, PageNumber: p.Page, PageSize: p.Size, TotalRecords: total}, nil
}

func (r *MenuPostgres) Create(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (name, description, price, category, availability)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		item.Name, item.Description, item.Price, item.Category, item.Availability).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *MenuPostgres) Update(item *domain.MenuItem) (bool, error) {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name = $1, description = $2, price = $3, category = $4, availability = $5
		WHERE id = $6`,
		item.Name, item.Description, item.Price, item.Category, item.Availability, item.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *MenuPostgres) Delete(id int) (bool, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}

func (r *MenuPostgres) Exists(id int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM menu_items WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

func (r *MenuPostgres) Count() (int, error) {
	var count int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&count)
	return count, err
}

func scanMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.Availability, &item.CreatedAt); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
