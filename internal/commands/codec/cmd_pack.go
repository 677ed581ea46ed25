package codec

import (
	"fmt"
	"github.com/bokysan/septets/internal/logging"
	"github.com/bokysan/septets/internal/septet"
	"github.com/bokysan/septets/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"math"
	"os"
)

// PackCommand converts text into septets and packs them into octets
type PackCommand struct {
	Alphabet string `yaml:"alphabet" short:"a" long:"alphabet" description:"Alphabet used to convert text to septets (default: gsm7)" choice:"gsm7" choice:"ascii"`
	Output   string `yaml:"output"   short:"o" long:"output"   description:"Encoding of the packed octets: raw, hex, base32, base64, base85, base91, base128 or its one-letter code (default: hex)"`
	Lenient  bool   `yaml:"lenient"            long:"lenient"  description:"Use only the low 7 bits of every character instead of failing on values above 127"`
}

func NewPackCommand() *PackCommand {
	return &PackCommand{}
}

func (p *PackCommand) Execute(args []string) error {
	logging.SetupLogging()

	inputs, err := readInputs(args, os.Stdin, false)
	if err != nil {
		return err
	}
	return p.Run(inputs, os.Stdout)
}

// Run packs every input and writes the encoded result, one line per input, to `out`. Raw output is
// written as is, without a line break, and takes a single input only.
func (p *PackCommand) Run(inputs []string, out io.Writer) error {
	a, err := resolveAlphabet(p.Alphabet)
	if err != nil {
		return err
	}
	e, err := resolveEncoder(p.Output)
	if err != nil {
		return err
	}
	if e == enc.RawEncoding && len(inputs) > 1 {
		return errors.Errorf("Raw output can't be split into lines: got %v inputs, expected one", len(inputs))
	}

	for i, text := range inputs {
		septets, err := a.Encode(text)
		if err != nil {
			return errors.Wrapf(err, "Could not convert input %v to septets", i+1)
		}
		dump("Septets", septets)

		packed, err := p.pack(septets)
		if err != nil {
			return errors.Wrapf(err, "Could not pack input %v", i+1)
		}
		dump("Octets", packed)

		if septet.IsAmbiguous(septets) {
			log.Warnf("Input %v ends with a zero septet on a block boundary and will not unpack to the same text", i+1)
		}
		log.Debugf("Packed %v septets into %v octets, about %.0f characters as %v",
			len(septets), len(packed), math.Ceil(float64(len(packed))*e.Ratio()), e.Name())

		if e == enc.RawEncoding {
			_, err = out.Write(e.Encode(packed))
		} else {
			_, err = fmt.Fprintf(out, "%s\n", e.Encode(packed))
		}
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func (p *PackCommand) pack(septets []byte) ([]byte, error) {
	if !p.Lenient {
		return septet.Pack(septets)
	}
	if err := septet.Validate(septets); err != nil {
		log.Warnf("Masking values out of range: %v", err)
	}
	return septet.PackMasked(septets), nil
}
