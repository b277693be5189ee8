package cli

import (
	"errors"
	"fmt"
	"os"
)

// ExitError carries an exit code and whether output was already printed.
type ExitError struct {
	Code    int
	Err     error
	Printed bool
}

func (e *ExitError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func handleCLIError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Printed {
			return exitErr
		}
		if exitErr.Err != nil {
			err = exitErr.Err
		}
	}

	code := exitCodeFromError(err)
	if exitErr != nil && exitErr.Code != 0 {
		code = exitErr.Code
	}

	fmt.Fprintln(os.Stderr, "Error: "+err.Error())

	return &ExitError{
		Code:    code,
		Err:     err,
		Printed: true,
	}
}

func exitCodeFromError(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		return 2
	}
	return 1
}
