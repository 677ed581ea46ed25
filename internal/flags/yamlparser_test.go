package flags

import (
	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
	"testing"
)

type packOptions struct {
	Alphabet string `yaml:"alphabet" long:"alphabet" default:"gsm7"`
	Output   string `yaml:"output"   long:"output"   default:"hex"`
	Lenient  bool   `yaml:"lenient"  long:"lenient"`
}

func (p *packOptions) Execute(args []string) error {
	return nil
}

func newParser(t *testing.T) (*flags.Parser, *packOptions) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	data := &packOptions{}
	_, err := parser.AddCommand("pack", "Pack", "Pack options", data)
	require.NoErrorf(t, err, "Could not add pack command")
	return parser, data
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_CommandParse(t *testing.T) {
	file := "testdata/pack.yml"

	parser, data := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "ascii", data.Alphabet, "Invalid reading of string value")
	require.Equal(t, "base64", data.Output, "Invalid reading of string value")
	require.Equal(t, true, data.Lenient, "Invalid reading of boolean value")
}

func Test_MultiDocumentParse(t *testing.T) {
	file := "testdata/multi.yml"

	parser, data := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "base91", data.Output, "Later documents should override earlier ones")
}

func Test_UnknownOptionParse(t *testing.T) {
	file := "testdata/unknown_option.yml"

	parser, data := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)
	require.Equal(t, "gsm7", data.Alphabet)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_MissingFile(t *testing.T) {
	parser, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/does-not-exist.yml")
	require.Error(t, err)
}
