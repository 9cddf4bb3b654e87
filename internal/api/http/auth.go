package httpapi

import (
	"net/http"
	"strconv"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Identity is taken from trusted gateway headers. Token verification happens
// upstream; this service only consumes the outcome.
type Identity struct {
	UserID int
	Role   string
}

func identityFrom(r *http.Request) Identity {
	userID, _ := strconv.Atoi(r.Header.Get("X-User-ID"))
	return Identity{
		UserID: userID,
		Role:   r.Header.Get("X-User-Role"),
	}
}

func (id Identity) Authenticated() bool {
	return id.UserID > 0 || id.Role != ""
}

func (id Identity) HasRole(roles ...string) bool {
	for _, role := range roles {
		if id.Role == role {
			return true
		}
	}
	return false
}

// requireRole writes the error response itself; callers return on false.
func requireRole(w http.ResponseWriter, r *http.Request, roles ...string) (Identity, bool) {
	id := identityFrom(r)
	if !id.Authenticated() {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return id, false
	}
	if len(roles) > 0 && !id.HasRole(roles...) {
		http.Error(w, "insufficient role", http.StatusForbidden)
		return id, false
	}
	return id, true
}
