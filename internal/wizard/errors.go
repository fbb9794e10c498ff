package wizard

import "errors"

// Sentinel errors for a wizard run.
var (
	// ErrCancelled indicates the operator interrupted the wizard.
	ErrCancelled = errors.New("theme creation cancelled")

	// ErrDeclined indicates the operator answered no at the final confirmation.
	ErrDeclined = errors.New("theme creation declined")

	// ErrInputClosed indicates input ended before the wizard finished.
	ErrInputClosed = errors.New("input closed before the theme was complete")
)
