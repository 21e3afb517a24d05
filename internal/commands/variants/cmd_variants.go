package variants

import (
	"fmt"
	"github.com/bokysan/transcode/internal/commands/term"
	"github.com/bokysan/transcode/internal/util/enc"
	"github.com/k0kubun/go-ansi"
	"io"
)

// Command lists the available base64 variants
type Command struct {
	stdout io.Writer
}

func NewCommand() *Command {
	return &Command{
		stdout: ansi.NewAnsiStdout(),
	}
}

//noinspection GoUnusedParameter
func (c *Command) Execute(args []string) error {
	_, _ = fmt.Fprintf(c.stdout, term.Bold+"%-14s %-4s %-6s %s"+term.Reset+"\n", "NAME", "CODE", "PAD", "62/63")
	for _, codec := range enc.Codecs() {
		alphabet := codec.Alphabet()
		_, _ = fmt.Fprintf(c.stdout, term.White+"%-14s"+term.DarkGray+" %-4s %-6v %s"+term.Reset+"\n",
			codec.Name(), string(codec.Code()), codec.Padded(), alphabet[62:])
	}
	return nil
}
