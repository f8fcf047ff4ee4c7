package server

import "errors"

var (
	// ErrBadConfig indicates a malformed environment setting.
	ErrBadConfig = errors.New("server: invalid configuration")

	// ErrMapTooLarge indicates a map above Config.MaxCells.
	ErrMapTooLarge = errors.New("server: map exceeds cell limit")

	// ErrBadRequest indicates a request parameter outside its domain.
	ErrBadRequest = errors.New("server: invalid request")
)
