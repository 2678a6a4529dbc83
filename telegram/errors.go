// Copyright (c) 2025 @AmarnathCJD

package telegram

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	PhaseSeed            = "seed"
	PhaseAwaitAuthorized = "await-authorized"
	PhaseLogin           = "login"
	PhaseExportAuth      = "export-auth"
	PhasePersist         = "persist"
	PhaseInitialSync     = "initial-sync"
	PhaseDialogList      = "dialog-list"
	PhaseSteadyState     = "steady-state"
)

var (
	ErrSendCode         = errors.New("can not send code")
	ErrExportAuth       = errors.New("can not export auth")
	ErrDifference       = errors.New("can not get difference")
	ErrDifferenceLocked = errors.New("difference lock still held after initial sync")
	ErrBadEnvironment   = errors.New("invalid server environment")
)

// PhaseError is returned when a bootstrap phase fails for good. Phase is one
// of the Phase* constants.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("bootstrap %s: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

func phaseErr(phase string, err error) error {
	if err == nil {
		return nil
	}
	return &PhaseError{Phase: phase, Err: err}
}
