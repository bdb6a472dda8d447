package interfaces

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is returned when an identifier has no matching row. The HTTP
// layer maps it to 404; backends wrap it with the resource context.
var ErrNotFound = goerr.New("record not found")
