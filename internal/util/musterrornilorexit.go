package util

import (
	"github.com/bokysan/septets/internal/septet"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrDataInvalid is returned when the input data cannot be processed (see sysexits.h, EX_DATAERR)
	ErrDataInvalid = 65
	// ErrGeneric is returned for any other error
	ErrGeneric = 99
)

// ExitCode returns the process exit code for the given error. Exit code of `flags.Error` is its type,
// input that is not a valid septet sequence yields ErrDataInvalid and any other error yields ErrGeneric.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var flagsError *flags.Error
	var domainError *septet.DomainError
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	} else if errors.As(err, &domainError) {
		return ErrDataInvalid
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code provided by
// ExitCode.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
