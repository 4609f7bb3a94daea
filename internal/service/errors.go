package service

import "errors"

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrBadCredentials  = errors.New("invalid credentials")
	ErrGalleryNotEmpty = errors.New("gallery still contains photos")
	ErrLastAdmin       = errors.New("cannot demote the last admin")
	ErrBanAdmin        = errors.New("cannot ban an admin account")
	ErrNotFound        = errors.New("not found")
)
