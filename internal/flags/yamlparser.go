package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
//
// Every top-level key of a YAML document names a command and its value holds the options for that
// command, e.g.:
//
//	pack:
//	  alphabet: gsm7
//	  output: base64
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error or a yaml decoding error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Files referenced from the configuration are resolved relative to the configuration file
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse takes an input stream and parses YAML documents one after another, using the provided
// decode options. Documents are separated by triple dashes (`---`); later documents override
// options set by earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every key of the document to a command and unmarshals the value into the
// command's data structure.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownCommand,
				Message: fmt.Sprintf("could not find command '%s'", name),
			})
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, commandData(command)); err != nil {
			return errors.Wrapf(err, "Invalid options for command '%s'", name)
		}
	}
	return nil
}

// commandData returns the pointer to the struct the command was registered with. The flags library
// does not give direct access to it, so the unexported `data` field of the group is read by reflection.
func commandData(command *flags.Command) interface{} {
	group := reflect.Indirect(reflect.ValueOf(command.Group))
	dataField := group.FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface()
}
