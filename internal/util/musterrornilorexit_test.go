package util

import (
	"bou.ke/monkey"
	"fmt"
	"github.com/bokysan/septets/internal/septet"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"os"
	"sync"
	"testing"
)

// seqMutex makes sure that we are executing the code sequentially, as we are monkey-patching the code in-memory.
// This is not thread safe or safe in any kind of way
var seqMutex sync.Mutex

// patchExit replaces os.Exit with a function recording the exit code. The returned function restores it.
func patchExit(t *testing.T) (*int, func()) {
	seqMutex.Lock()

	exitCode := -1
	patch := monkey.Patch(os.Exit, func(i int) {
		exitCode = i
	})

	return &exitCode, func() {
		patch.Unpatch()
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	exitCode, restore := patchExit(t)
	defer restore()

	MustErrorNilOrExit(nil)

	require.Equal(t, -1, *exitCode, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit(t *testing.T) {
	_, packErr := septet.Pack([]byte{0x80})

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"flags", &flags.Error{Type: flags.ErrShortNameTooLong, Message: "Short name too long"}, int(flags.ErrShortNameTooLong)},
		{"help", &flags.Error{Type: flags.ErrHelp, Message: "Usage"}, 0},
		{"domain", packErr, ErrDataInvalid},
		{"wrapped domain", errors.Wrapf(packErr, "Could not pack input %v", 1), ErrDataInvalid},
		{"generic", fmt.Errorf("demo"), ErrGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, restore := patchExit(t)
			defer restore()

			MustErrorNilOrExit(tt.err)

			require.Equal(t, tt.code, *exitCode, "MustErrorNilOrExit did not return a proper exit code")
		})
	}
}

func Test_ExitCode(t *testing.T) {
	require.Equal(t, 0, ExitCode(nil))
	require.Equal(t, ErrDataInvalid, ExitCode(septet.Validate([]byte{0xFF, 0xFE})))
	require.Equal(t, ErrGeneric, ExitCode(errors.New("demo")))
}
