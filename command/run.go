package command

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/gangwayhq/gangway/config"
	"github.com/gangwayhq/gangway/config/env"
	"github.com/gangwayhq/gangway/errors"
	"github.com/gangwayhq/gangway/server"
	"github.com/gangwayhq/gangway/telemetry"
)

var _ Cmd = &Run{}

// Run reads the entry-point file, resolves the named adapter against the
// registry and serves it until the signal context gets cancelled.
type Run struct {
	context  context.Context
	filePath string
	flagSet  *flag.FlagSet
	registry Registry
	settings *config.Settings
}

func NewRun(ctx context.Context, registry Registry) *Run {
	settings := config.DefaultSettings
	run := &Run{
		context:  ctx,
		filePath: config.DefaultFilename,
		registry: registry,
		settings: &settings,
	}

	set := flag.NewFlagSet("run", flag.ContinueOnError)
	set.StringVar(&run.filePath, "f", run.filePath, "-f ./gangway.yaml")
	set.IntVar(&settings.DefaultPort, "p", settings.DefaultPort, "-p 8080")
	set.BoolVar(&settings.LogPretty, "log-pretty", settings.LogPretty, "-log-pretty")
	set.IntVar(&settings.MetricsPort, "metrics-port", settings.MetricsPort, "-metrics-port 9090")
	run.flagSet = set

	return run
}

func (r *Run) Execute(args Args, logEntry *logrus.Entry) error {
	if err := r.flagSet.Parse(args); err != nil {
		return err
	}

	// precedence: flags beat the entry-point file, environment beats both
	flagged := make(map[string]bool)
	r.flagSet.Visit(func(f *flag.Flag) {
		flagged[f.Name] = true
	})

	file, err := config.LoadFile(r.filePath)
	if err != nil {
		return errors.Configuration.With(err)
	}

	if file.Port > 0 && !flagged["p"] {
		r.settings.DefaultPort = file.Port
	}
	timeout, err := file.Timeout(r.settings.HandleTimeout)
	if err != nil {
		return errors.Configuration.With(err)
	}
	r.settings.HandleTimeout = timeout

	env.Decode(r.settings)

	build, ok := r.registry[file.App]
	if !ok {
		return errors.Configuration.Messagef("no adapter registered for app %q", file.App)
	}
	application := build(file)

	errors.SetLogger(logEntry)

	srv := server.New(r.context, logEntry, r.settings, application)
	if r.settings.MetricsPort > 0 {
		metrics := telemetry.NewMetrics()
		metrics.ServeMetrics(r.context, r.settings.MetricsPort, logEntry)
		srv.SetMetrics(metrics)
	}

	if err = srv.Listen(); err != nil {
		return err
	}
	defer srv.Close()

	<-r.context.Done()
	return nil
}

func (r *Run) Usage() {
	r.flagSet.Usage()
}
