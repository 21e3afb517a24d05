package version

import (
	"github.com/bokysan/transcode/internal/commands/term"
	"github.com/bokysan/transcode/internal/version"
	"github.com/k0kubun/go-ansi"
)

// Command prints the build information of the application
type Command struct {
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	PrintVersion()
	if version.GitTag != "" {
		ansi.Printf(term.DarkGray+" Git tag     "+term.White+"%+v"+term.Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		ansi.Printf(term.DarkGray+" Git branch  "+term.White+"%+v"+term.Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		ansi.Printf(term.DarkGray+" Git state   "+term.White+"%+v"+term.Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		ansi.Printf(term.DarkGray+" Go version  "+term.White+"%+v"+term.Reset+"\n", version.GoVersion)
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion() {
	ansi.Printf(term.Bold+term.BackgroundBlue+
		term.LightGray+" TRANSCODE - base64 in four flavours "+term.White+"%s"+term.LightGray+" "+term.Reset+"\n"+
		term.DarkGray+" Built on    "+term.White+"%+v\n"+
		term.DarkGray+" Git version "+term.White+"%+v"+term.Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
