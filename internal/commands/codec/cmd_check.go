package codec

import (
	"fmt"
	"github.com/bokysan/septets/internal/logging"
	"github.com/bokysan/septets/internal/septet"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// CheckCommand verifies that every input survives packing and unpacking unchanged
type CheckCommand struct {
	Alphabet string `yaml:"alphabet" short:"a" long:"alphabet" description:"Alphabet used to convert text to septets (default: gsm7)" choice:"gsm7" choice:"ascii"`
}

func NewCheckCommand() *CheckCommand {
	return &CheckCommand{}
}

func (c *CheckCommand) Execute(args []string) error {
	logging.SetupLogging()

	inputs, err := readInputs(args, os.Stdin, false)
	if err != nil {
		return err
	}
	return c.Run(inputs, os.Stdout)
}

// Run prints `PASS` or `FAIL` for every input. All failures are returned together.
func (c *CheckCommand) Run(inputs []string, out io.Writer) error {
	a, err := resolveAlphabet(c.Alphabet)
	if err != nil {
		return err
	}

	var errs error
	for i, text := range inputs {
		status := "PASS"
		err := c.check(a.Encode, text)
		if err != nil {
			status = "FAIL"
			log.Debugf("Input %v failed: %v", i+1, err)
			errs = multierror.Append(errs, errors.Wrapf(err, "Input %v", i+1))
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\n", status, text); err != nil {
			return errors.WithStack(err)
		}
	}
	return errs
}

func (c *CheckCommand) check(encode func(string) ([]byte, error), text string) error {
	septets, err := encode(text)
	if err != nil {
		return err
	}
	if septet.IsAmbiguous(septets) {
		log.Warnf("%q ends with a zero septet on a block boundary", text)
	}
	return septet.Verify(septets)
}
