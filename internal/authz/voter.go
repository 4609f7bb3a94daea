package authz

// Permission names mirror the attribute strings the rules were written
// against. Anything outside the set is denied.
type Permission string

const (
	View   Permission = "VIEW"
	Edit   Permission = "EDIT"
	Delete Permission = "DELETE"
)

func known(p Permission) bool {
	switch p {
	case View, Edit, Delete:
		return true
	}
	return false
}
