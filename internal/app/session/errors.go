package session

import "errors"

var ErrInvalidCommand = errors.New("invalid_command")
