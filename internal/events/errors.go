package events

import "errors"

// ErrBusClosed is returned when sending to or listening on a closed bus
var ErrBusClosed = errors.New("event bus closed")
