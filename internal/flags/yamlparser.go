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
	"strings"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
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
// can be of the type flags.Error.
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

	// Tell the decoder the location of the file and enable support for recursive directories.
	// This allows you to reference files in subdirs
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse takes an input stream and parses YAML segments one after another, using the provided
// decode options. This allows you to have multiple individual YAML segments within one physical
// file / input stream, all separated by triple dashes (`---`).
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment will get the "segment" from our input stream and try to match every top-level key
// to a command (e.g. "encode:") or an option group (e.g. "general:"). Keys that match neither
// are an error.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		group := y.findGroup(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command or group '%s'", name),
			})
		}

		target := groupData(group)
		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, target); err != nil {
			return errors.Wrapf(err, "Could not apply configuration of '%s'", name)
		}
		log.Debugf("Applied configuration for '%s'", name)
	}
	return nil
}

func (y *YamlParser) findGroup(name string) *flags.Group {
	if command := y.parser.Find(name); command != nil {
		return command.Group
	}
	for _, g := range y.parser.Groups() {
		if strings.EqualFold(g.ShortDescription, name) {
			return g
		}
	}
	return nil
}

// groupData returns the pointer to the struct backing the group. The flags library does not
// allow direct access to the underlying data structure, hence the reflection.
func groupData(group *flags.Group) interface{} {
	dereferencedGroup := reflect.Indirect(reflect.ValueOf(group))
	dataField := dereferencedGroup.FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem().Interface()
}
