package main

import (
	"fmt"
	"github.com/bokysan/transcode/internal/args"
	"github.com/bokysan/transcode/internal/commands/decode"
	"github.com/bokysan/transcode/internal/commands/encode"
	"github.com/bokysan/transcode/internal/commands/variants"
	"github.com/bokysan/transcode/internal/commands/verify"
	"github.com/bokysan/transcode/internal/commands/version"
	tcFlags "github.com/bokysan/transcode/internal/flags"
	"github.com/bokysan/transcode/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Transcode is the main executable
type Transcode struct {
	parser *flags.Parser
}

// NewTranscode will create a new instance of Transcode and initialize the parser
func NewTranscode() *Transcode {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	tc := &Transcode{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	tc.setupGeneral()
	tc.setupVersion()
	tc.setupVariants()
	tc.setupEncode()
	tc.setupDecode()
	tc.setupVerify()

	return tc
}

// setupGeneral will configure general options
func (tc *Transcode) setupGeneral() {
	if _, err := tc.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (tc *Transcode) setupVersion() {
	cmd := &version.Command{}
	_, err := tc.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupVariants adds the `variants` command
func (tc *Transcode) setupVariants() {
	cmd := variants.NewCommand()
	_, err := tc.parser.AddCommand(
		"variants",
		"List base64 variants",
		"List the supported base64 variants, their one-letter codes and padding policy",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (tc *Transcode) setupEncode() {
	cmd := encode.NewCommand()
	_, err := tc.parser.AddCommand(
		"encode",
		"Encode to base64",
		"Encode the arguments (joined by a space), the input file or stdin and print the result",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (tc *Transcode) setupDecode() {
	cmd := decode.NewCommand()
	_, err := tc.parser.AddCommand(
		"decode",
		"Decode from base64",
		"Decode the arguments, the input file or stdin and write the raw bytes to stdout",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupVerify adds the `verify` command
func (tc *Transcode) setupVerify() {
	cmd := verify.NewCommand()
	_, err := tc.parser.AddCommand(
		"verify",
		"Check base64 strings",
		"Check that every argument is a canonical encoding for the selected variant. Exits with a non-zero code if any is not.",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts transcode and reads the configuration file
func main() {

	transcode := NewTranscode()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := tcFlags.NewYamlParser(transcode.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := transcode.parser.Parse()
	util.MustErrorNilOrExit(err)

}
