package codec

import (
	"fmt"
	"github.com/bokysan/septets/internal/logging"
	"github.com/bokysan/septets/internal/septet"
	"github.com/bokysan/septets/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// UnpackCommand decodes packed octets and converts the septets back into text
type UnpackCommand struct {
	Input    string `yaml:"input"    short:"i" long:"input"    description:"Encoding of the packed octets: raw, hex, base32, base64, base85, base91, base128 or its one-letter code (default: hex)"`
	Alphabet string `yaml:"alphabet" short:"a" long:"alphabet" description:"Alphabet used to convert septets to text (default: gsm7)" choice:"gsm7" choice:"ascii"`
}

func NewUnpackCommand() *UnpackCommand {
	return &UnpackCommand{}
}

func (u *UnpackCommand) Execute(args []string) error {
	logging.SetupLogging()

	e, err := resolveEncoder(u.Input)
	if err != nil {
		return err
	}
	inputs, err := readInputs(args, os.Stdin, e == enc.RawEncoding)
	if err != nil {
		return err
	}
	return u.Run(inputs, os.Stdout)
}

// Run unpacks every input and writes the text, one line per input, to `out`. Surrounding whitespace is
// ignored, except for raw input where every byte is packed data.
func (u *UnpackCommand) Run(inputs []string, out io.Writer) error {
	e, err := resolveEncoder(u.Input)
	if err != nil {
		return err
	}
	a, err := resolveAlphabet(u.Alphabet)
	if err != nil {
		return err
	}

	for i, data := range inputs {
		if e != enc.RawEncoding {
			data = strings.TrimSpace(data)
		}
		octets, err := e.Decode([]byte(data))
		if err != nil {
			return errors.Wrapf(err, "Could not decode input %v using %v", i+1, e.Name())
		}
		dump("Octets", octets)

		septets := septet.Unpack(octets)
		dump("Septets", septets)
		log.Debugf("Unpacked %v octets into %v septets", len(octets), len(septets))

		text, err := a.Decode(septets)
		if err != nil {
			return errors.Wrapf(err, "Could not convert input %v to text", i+1)
		}

		if _, err := fmt.Fprintf(out, "%s\n", text); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
