package util

import "errors"

var (
	ErrNoSession        = errors.New("not logged in")
	ErrNotOwner         = errors.New("only the owner may modify this resource")
	ErrSessionCorrupt   = errors.New("stored session is unreadable")
	ErrEmailRegistered  = errors.New("Email address already exists. Please use a different email.")
	ErrUsernameTaken    = errors.New("Username already exists. Please choose a different username.")
	ErrTitleRequired    = errors.New("title is required")
	ErrDescriptionShort = errors.New("description must be at least 10 characters")
	ErrNameRequired     = errors.New("name is required")
	ErrNotGroupAdmin    = errors.New("only a group admin may manage members")
)
