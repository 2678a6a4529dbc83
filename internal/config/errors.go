package config

import "github.com/pkg/errors"

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNoCodeReader  = errors.New("no login code reader configured")
)
