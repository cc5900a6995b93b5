// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them onto HTTP statuses.
package repository

import "errors"

// ErrRoomConflict is returned when a booking cannot be created because an
// existing booking overlaps the requested interval. Handlers should
// translate this into an HTTP 409 response.
var ErrRoomConflict = errors.New("room conflict")

// ErrEventNotFound indicates that an event was not located in the DB.
var ErrEventNotFound = errors.New("event not found")

// ErrRoomNotFound indicates that a room was not located in the DB.
var ErrRoomNotFound = errors.New("room not found")
