package authz

import "photo-gallery-api/internal/domain"

// CanOnGallery decides whether actor may perform p on the gallery.
// Viewing is open to everyone, anonymous included. Edit and delete
// require membership in the gallery's user set (or admin).
// The gallery must have its Users association loaded.
func CanOnGallery(actor *domain.User, p Permission, g *domain.Gallery) bool {
	if g == nil || !known(p) {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if p == View {
		return true
	}
	return g.HasMember(actor)
}
