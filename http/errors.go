package http

import "errors"

// ErrMalformedBody is returned when a request body cannot be decoded as
// the expected JSON record.
var ErrMalformedBody = errors.New("malformed body")
