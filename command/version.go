package command

import (
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Set via ldflags at build time.
var (
	BuildDate   = ""
	BuildName   = "dev"
	VersionName = "0"
)

var _ Cmd = &Version{}

type Version struct{}

func NewVersion() *Version {
	return &Version{}
}

func (v Version) Execute(_ Args, _ *logrus.Entry) error {
	date := BuildDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	println(strings.TrimPrefix(VersionName, "v") + " " + date + " " + BuildName)
	println("go version " + runtime.Version() + " " + runtime.GOOS + "/" + runtime.GOARCH)
	return nil
}

func (v Version) Usage() {
	println("Usage of version:\n  version	Print current version and build information.")
}
