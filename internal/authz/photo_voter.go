package authz

import "photo-gallery-api/internal/domain"

// CanOnPhoto decides whether actor may perform p on the photo.
//
// Admins may do anything. Anonymous actors may only view PUBLIC photos.
// Authenticated users may view any PUBLIC photo and their own PRIVATE
// ones; edit/delete require authorship, and a banned author loses both.
func CanOnPhoto(actor *domain.User, p Permission, photo *domain.Photo) bool {
	if photo == nil || !known(p) {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if actor == nil {
		return p == View && photo.Status == domain.StatusPublic
	}
	switch p {
	case View:
		if photo.Status == domain.StatusPrivate {
			return photo.AuthorID == actor.ID
		}
		return true
	case Edit, Delete:
		if actor.Banned {
			return false
		}
		return photo.AuthorID == actor.ID
	}
	return false
}
