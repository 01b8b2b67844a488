package logging_test

import (
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gangwayhq/gangway/logging"
)

func newFormatterEntry() *logrus.Entry {
	entry := logrus.New().WithField("status", 200)
	entry.Time = time.Now()
	entry.Level = logrus.InfoLevel
	entry.Message = "hello"
	return entry
}

func TestLogFormatter(t *testing.T) {
	b, err := logging.NewLogFormatter(false).Format(newFormatterEntry())
	if err != nil {
		t.Fatal(err)
	}

	out := string(b)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected single-line output, got %q", out)
	}
	for _, key := range []string{`"timestamp"`, `"message"`, `"status"`} {
		if !strings.Contains(out, key) {
			t.Errorf("expected the %s key, got %q", key, out)
		}
	}
}

func TestLogFormatter_Pretty(t *testing.T) {
	b, err := logging.NewLogFormatter(true).Format(newFormatterEntry())
	if err != nil {
		t.Fatal(err)
	}

	if out := string(b); strings.Count(out, "\n") < 2 {
		t.Errorf("expected indented output, got %q", out)
	}
}
