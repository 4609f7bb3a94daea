package authz

import "photo-gallery-api/internal/domain"

// CanOnComment decides whether actor may perform p on the comment.
// Every permission, viewing a single comment included, is restricted to
// the comment's author unless the actor is an admin; photo pages list
// comments without consulting this rule.
func CanOnComment(actor *domain.User, p Permission, c *domain.Comment) bool {
	if c == nil || !known(p) {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if actor == nil {
		return false
	}
	return c.UserID == actor.ID
}
