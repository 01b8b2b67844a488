package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	_ "go.uber.org/automaxprocs"

	"github.com/gangwayhq/gangway/app"
	"github.com/gangwayhq/gangway/command"
	"github.com/gangwayhq/gangway/config"
	"github.com/gangwayhq/gangway/config/env"
	"github.com/gangwayhq/gangway/errors"
	"github.com/gangwayhq/gangway/handler"
	"github.com/gangwayhq/gangway/logging"
)

func main() {
	os.Exit(realmain(os.Args))
}

func realmain(osArgs []string) int {
	cmdName, args := commandName(command.NewArgs(osArgs))

	settings := config.DefaultSettings
	env.Decode(&settings)
	logger := newLogger(settings.LogPretty)

	registry := command.Registry{
		"greeting": func(file *config.File) app.Handler {
			return handler.NewGreeting(file.Greeting)
		},
	}

	cmd := command.NewCommand(context.Background(), cmdName, registry)
	if cmd == nil {
		logger.Errorf("unknown command: %s", cmdName)
		return 1
	}

	if err := cmd.Execute(args, logger); err != nil {
		logger.WithError(err).Error()
		return 1
	}
	return 0
}

// commandName picks the subcommand, defaulting to run so flags and empty
// arguments pass through untouched.
func commandName(args command.Args) (string, command.Args) {
	if len(args) > 0 && len(args[0]) > 0 && args[0][0] != '-' {
		return args[0], args[1:]
	}
	return "run", args
}

func newLogger(pretty bool) *logrus.Entry {
	logger := logrus.New()
	logger.Out = os.Stdout
	logger.AddHook(&errors.LogHook{})
	logger.Formatter = logging.NewLogFormatter(pretty)
	logger.Level = logrus.InfoLevel
	return logger.WithField("type", "gangway_daemon")
}
