package encode

import (
	"fmt"
	"github.com/bokysan/transcode/internal/args"
	"github.com/bokysan/transcode/internal/logging"
	"github.com/bokysan/transcode/internal/util"
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// Command encodes its arguments, a file or stdin and prints the result
type Command struct {
	Variant   args.Variant `yaml:"variant"    short:"V" long:"variant"    env:"VARIANT" default:"Standard" description:"Base64 variant: Standard (S), StandardNopad (s), UrlSafe (U) or UrlSafeNopad (u)"`
	Input     string       `yaml:"input"      short:"i" long:"input"                                       description:"Read input from this file instead of stdin. Ignored if arguments are given."`
	NoNewline bool         `yaml:"no-newline" short:"n" long:"no-newline"                                  description:"Do not print the trailing newline"`

	stdin  io.Reader
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

func (c *Command) Execute(arguments []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	codec, err := c.Variant.Codec()
	if err != nil {
		return errors.WithStack(err)
	}

	data, err := util.ReadInput(arguments, c.Input, c.stdin)
	if err != nil {
		return err
	}

	encoded, err := enc.Encode[string](codec, data)
	if err != nil {
		return errors.Wrapf(err, "Could not encode input using %v", codec)
	}

	log.WithFields(log.Fields{
		"variant": codec.Name(),
		"input":   len(data),
		"output":  len(encoded),
	}).Debugf("Encoded %d bytes", len(data))

	if c.NoNewline {
		_, err = io.WriteString(c.stdout, encoded)
	} else {
		_, err = fmt.Fprintln(c.stdout, encoded)
	}
	return errors.WithStack(err)
}
