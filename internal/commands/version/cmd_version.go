package version

import (
	"fmt"
	"github.com/bokysan/septets/internal/septet"
	"github.com/bokysan/septets/internal/util/enc"
	"github.com/bokysan/septets/internal/version"
	"github.com/k0kubun/go-ansi"
	"strings"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the version and build details of the application
type Command struct {
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	PrintVersion()
	if version.GitTag != "" {
		ansi.Printf(DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		ansi.Printf(DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		ansi.Printf(DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		ansi.Printf(DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
	ansi.Printf(DarkGray+" Packing     "+White+"%v septets in %v octets"+Reset+"\n", septet.BlockSeptets, septet.BlockOctets)
	ansi.Printf(DarkGray+" Encoders    "+White+"%v"+Reset+"\n", encoderNames())
	return nil
}

func encoderNames() string {
	names := make([]string, 0, len(enc.Encoders))
	for _, e := range enc.Encoders {
		names = append(names, fmt.Sprintf("%v (%c)", strings.ToLower(e.Name()), e.Code()))
	}
	return strings.Join(names, ", ")
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion() {
	ansi.Printf(Bold+BackgroundBlue+
		LightGray+" SEPTETS - GSM 03.38 character packing "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
