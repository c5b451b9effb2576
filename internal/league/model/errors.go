package model

import "errors"

var (
	// ErrLeagueNotFound indicates that the requested league does not exist.
	ErrLeagueNotFound = errors.New("league not found")
	// ErrInvalidLeagueID indicates that the provided league id is malformed.
	ErrInvalidLeagueID = errors.New("invalid league id")
	// ErrEmptyTitle indicates that the league title is empty.
	ErrEmptyTitle = errors.New("league_title is required")
	// ErrEmptyDescription indicates that the league description is empty.
	ErrEmptyDescription = errors.New("league_description is required")
	// ErrEmptyEmail indicates that an invite carries no email.
	ErrEmptyEmail = errors.New("email is required")
)
