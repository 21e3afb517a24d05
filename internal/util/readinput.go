package util

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// ReadInput returns the data a command should work on. Arguments, if given, are joined with a
// single space. Otherwise the whole of the named file is read, or stdin if the file name is
// empty or "-".
func ReadInput(args []string, file string, stdin io.Reader) ([]byte, error) {
	if len(args) > 0 {
		if file != "" && file != "-" {
			return nil, errors.Errorf("Cannot read from both the command line and %v", file)
		}
		return []byte(strings.Join(args, " ")), nil
	}

	if file != "" && file != "-" {
		log.Debugf("Reading input from %v", file)
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read %v", file)
		}
		return data, nil
	}

	log.Debugf("Reading input from stdin")
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read stdin")
	}
	return data, nil
}
