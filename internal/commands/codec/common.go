package codec

import (
	"bufio"
	"github.com/bokysan/septets/internal/alphabet"
	"github.com/bokysan/septets/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
)

const (
	// DefaultAlphabet is used when no alphabet is configured
	DefaultAlphabet = "gsm7"
	// DefaultEncoding is the printable form of packed octets when no encoding is configured
	DefaultEncoding = "hex"
)

func resolveAlphabet(name string) (alphabet.Alphabet, error) {
	if name == "" {
		name = DefaultAlphabet
	}
	return alphabet.FromName(name)
}

// resolveEncoder finds the encoder by its name or by its one-letter code
func resolveEncoder(name string) (enc.Encoder, error) {
	if name == "" {
		name = DefaultEncoding
	}
	if len(name) == 1 {
		return enc.FromCode(name[0])
	}
	return enc.FromName(name)
}

// readInputs returns the positional arguments. If there are none, every line read from `in` is an input,
// unless `whole` is set: then everything read from `in` is a single input.
func readInputs(args []string, in io.Reader, whole bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if whole {
		data, err := ioutil.ReadAll(in)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read input")
		}
		return []string{string(data)}, nil
	}

	res := make([]string, 0)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		res = append(res, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "Could not read input")
	}
	return res, nil
}

// dump logs the byte sequence on trace level
func dump(what string, data []byte) {
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("%s:\n%s", what, spew.Sdump(data))
	}
}
