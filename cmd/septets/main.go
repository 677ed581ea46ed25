package main

import (
	"fmt"
	"github.com/bokysan/septets/internal/args"
	"github.com/bokysan/septets/internal/commands/codec"
	"github.com/bokysan/septets/internal/commands/version"
	scFlags "github.com/bokysan/septets/internal/flags"
	"github.com/bokysan/septets/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Septets is the main executable
type Septets struct {
	parser *flags.Parser
}

// NewSeptets will create a new instance of Septets and initialize the parser
func NewSeptets() *Septets {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	s := &Septets{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	s.setupGeneral()
	s.setupVersion()
	s.setupPack()
	s.setupUnpack()
	s.setupCheck()

	return s
}

// setupGeneral will configure general options
func (s *Septets) setupGeneral() {
	if _, err := s.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (s *Septets) setupVersion() {
	cmd := &version.Command{}
	_, err := s.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupPack adds the `pack` command
func (s *Septets) setupPack() {
	cmd := codec.NewPackCommand()
	_, err := s.parser.AddCommand(
		"pack",
		"Pack text into octets",
		"Convert every argument (or every line of standard input) to septets and pack 8 septets into 7 octets",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupUnpack adds the `unpack` command
func (s *Septets) setupUnpack() {
	cmd := codec.NewUnpackCommand()
	_, err := s.parser.AddCommand(
		"unpack",
		"Unpack octets into text",
		"Decode every argument (or every line of standard input), unpack 7 octets into 8 septets and print the text",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupCheck adds the `check` command
func (s *Septets) setupCheck() {
	cmd := codec.NewCheckCommand()
	_, err := s.parser.AddCommand(
		"check",
		"Check the round trip",
		"Pack and unpack every argument (or every line of standard input) and report the ones that do not come back unchanged",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts septets and reads the configuration file
func main() {

	s := NewSeptets()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := scFlags.NewYamlParser(s.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := s.parser.Parse()
	util.MustErrorNilOrExit(err)

}
