package authz

import "photo-gallery-api/internal/domain"

// CanOnUser decides whether actor may perform p on the target account.
// Admins may do anything; everyone else only touches their own account.
// A nil actor is anonymous and always denied here.
func CanOnUser(actor *domain.User, p Permission, target *domain.User) bool {
	if target == nil || !known(p) {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if actor == nil {
		return false
	}
	return actor.ID == target.ID
}
