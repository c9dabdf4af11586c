package model

import "errors"

// ErrInvalidToken covers every reason a session token is rejected:
// malformed input, bad signature, unexpected algorithm or expiry.
var ErrInvalidToken = errors.New("invalid session token")
