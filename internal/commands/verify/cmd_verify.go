package verify

import (
	"fmt"
	"github.com/bokysan/transcode/internal/args"
	"github.com/bokysan/transcode/internal/commands/term"
	"github.com/bokysan/transcode/internal/logging"
	"github.com/hashicorp/go-multierror"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// Command checks that every argument is a well-formed encoding for the selected variant
type Command struct {
	Variant args.Variant `yaml:"variant" short:"V" long:"variant" env:"VARIANT" default:"Standard" description:"Base64 variant: Standard (S), StandardNopad (s), UrlSafe (U) or UrlSafeNopad (u)"`
	Quiet   bool         `yaml:"quiet"   short:"q" long:"quiet"                                       description:"Do not print anything, only set the exit code"`

	Args struct {
		Encoded []string `positional-arg-name:"encoded" required:"1" description:"Encoded strings to check"`
	} `positional-args:"yes"`

	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		stdout: ansi.NewAnsiStdout(),
	}
}

// Execute returns a *multierror.Error listing every rejected input, or nil if all are valid
func (c *Command) Execute(arguments []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	codec, err := c.Variant.Codec()
	if err != nil {
		return errors.WithStack(err)
	}

	inputs := append(append([]string{}, c.Args.Encoded...), arguments...)

	var result *multierror.Error
	for i, input := range inputs {
		if _, err := codec.Decode([]byte(input)); err != nil {
			log.WithFields(log.Fields{
				"variant":  codec.Name(),
				"position": i,
			}).WithError(err).Infof("Invalid input %q", input)
			result = multierror.Append(result, errors.Wrapf(err, "%q", input))
			c.report(term.Red+"INVALID"+term.Reset, input, err)
		} else {
			c.report(term.Green+"OK     "+term.Reset, input, nil)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrapf(err, "%d of %d inputs are not valid %v", result.Len(), len(inputs), codec)
	}
	return nil
}

func (c *Command) report(status, input string, err error) {
	if c.Quiet {
		return
	}
	if err != nil {
		_, _ = fmt.Fprintf(c.stdout, "%s %s (%v)\n", status, input, err)
	} else {
		_, _ = fmt.Fprintf(c.stdout, "%s %s\n", status, input)
	}
}
