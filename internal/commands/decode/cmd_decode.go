package decode

import (
	"bytes"
	"github.com/bokysan/transcode/internal/args"
	"github.com/bokysan/transcode/internal/logging"
	"github.com/bokysan/transcode/internal/util"
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// Command decodes its arguments, a file or stdin and writes the raw bytes to stdout
type Command struct {
	Variant args.Variant `yaml:"variant" short:"V" long:"variant" env:"VARIANT" default:"Standard" description:"Base64 variant: Standard (S), StandardNopad (s), UrlSafe (U) or UrlSafeNopad (u)"`
	Input   string       `yaml:"input"   short:"i" long:"input"                                       description:"Read input from this file instead of stdin. Ignored if arguments are given."`
	NoTrim  bool         `yaml:"no-trim"           long:"no-trim"                                     description:"Do not strip leading and trailing whitespace (e.g. the final newline) before decoding"`

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
	if !c.NoTrim {
		data = bytes.TrimSpace(data)
	}

	decoded, err := enc.Decode[string](codec, data)
	if err != nil {
		log.WithFields(log.Fields{
			"variant": codec.Name(),
			"input":   len(data),
		}).WithError(err).Debugf("Rejected input")
		return errors.Wrapf(err, "Could not decode input using %v", codec)
	}

	log.WithFields(log.Fields{
		"variant": codec.Name(),
		"input":   len(data),
		"output":  len(decoded),
	}).Debugf("Decoded %d bytes", len(decoded))
	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("Decoded payload:\n%s", spew.Sdump([]byte(decoded)))
	}

	_, err = io.WriteString(c.stdout, decoded)
	return errors.WithStack(err)
}
