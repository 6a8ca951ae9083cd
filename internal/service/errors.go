package service

import "errors"

// Auth errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrPasswordTooLong    = errors.New("password too long")
)

// Catalog errors
var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrPotionNotFound    = errors.New("potion not found")
	ErrEmptyCollection   = errors.New("collection is empty")
)

// Comment errors
var (
	ErrInvalidParentRef = errors.New("comment must reference exactly one character or potion")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("only the comment author may modify it")
	ErrCommentEmpty     = errors.New("comment content is empty")
	ErrCommentTooLong   = errors.New("comment content exceeds maximum length")
)

// Profile errors
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// Options errors
var (
	ErrOptionsNotFound = errors.New("options not seeded")
)

// Avatar errors
var (
	ErrAvatarTooLarge      = errors.New("avatar exceeds maximum file size")
	ErrAvatarBadType       = errors.New("avatar must be a JPEG or PNG image")
	ErrAvatarBadDimensions = errors.New("avatar dimensions out of bounds")
)
