package domain

// AccessScope restricts read operations to a single owner. The zero value is
// unrestricted (staff and admin callers). A scoped read that hits an order
// owned by someone else reports not-found, never forbidden, so customers
// cannot probe for foreign order ids.
type AccessScope struct {
	userID int
}

func Unrestricted() AccessScope {
	return AccessScope{}
}

func OwnedBy(userID int) AccessScope {
	return AccessScope{userID: userID}
}

func (s AccessScope) Restricted() bool {
	return s.userID != 0
}

func (s AccessScope) Allows(ownerID int) bool {
	return s.userID == 0 || s.userID == ownerID
}
