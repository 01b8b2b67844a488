package logging

import (
	"regexp"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

var keyRegex = regexp.MustCompile(`"([A-Za-z0-9-_]+)":`)

// LogFormatter renders entries as single-line JSON. With pretty printing
// enabled the output gets indented and field keys colorized, meant for
// local development only.
type LogFormatter struct {
	inner  *logrus.JSONFormatter
	pretty bool
}

func NewLogFormatter(pretty bool) logrus.Formatter {
	return &LogFormatter{
		inner: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
			PrettyPrint: pretty,
		},
		pretty: pretty,
	}
}

func (f *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b, err := f.inner.Format(entry)
	if !f.pretty || err != nil {
		return b, err
	}

	return keyRegex.ReplaceAllFunc(b, func(key []byte) []byte {
		return []byte(color.HiGreenString("%s", string(key)))
	}), nil
}
