package command

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gangwayhq/gangway/app"
	"github.com/gangwayhq/gangway/config"
)

type Cmd interface {
	Execute(args Args, logger *logrus.Entry) error
	Usage()
}

// Args are the command line arguments following the subcommand name. Each
// command owns one flag set which parses them directly.
type Args []string

func NewArgs(osArgs []string) Args {
	return osArgs[1:]
}

// Registry maps entry-point app names to adapter constructors. It is passed
// explicitly from the process entry point; there is no global registration.
type Registry map[string]func(file *config.File) app.Handler

func NewCommand(ctx context.Context, cmd string, registry Registry) Cmd {
	switch strings.ToLower(cmd) {
	case "run":
		return NewRun(ContextWithSignal(ctx), registry)
	case "version":
		return NewVersion()
	default:
		return nil
	}
}
