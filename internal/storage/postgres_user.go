package storage

import "database/sql"

type UserPostgres struct {
	DB *sql.DB
}

func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{DB: db}
}

// CreateGuest mints a throwaway customer account for a walk-in order.
// Credentials come from the injected guest policy; hashing is handled by the
// external auth service before real logins are possible.
func (r *UserPostgres) CreateGuest(email, password, displayName string) (int, error) {
	var id int
	err := r.DB.QueryRow(`
		INSERT INTO users (email, password, display_name, role)
		VALUES ($1, $2, $3, 'customer')
		RETURNING id`,
		email, password, displayName).Scan(&id)
	return id, err
}
