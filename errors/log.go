package errors

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var _ logrus.Hook = &LogHook{}

// LogHook lifts wrapped error details into the log entry message.
type LogHook struct{}

func (l *LogHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.ErrorLevel}
}

func (l *LogHook) Fire(entry *logrus.Entry) error {
	err, exist := entry.Data[logrus.ErrorKey]
	if !exist {
		return nil
	}

	delete(entry.Data, logrus.ErrorKey)

	gerr, ok := err.(*Error)
	if !ok {
		entry.Message = appendMsg(entry.Message, fmt.Sprintf("%v", err))
		return nil
	}

	entry.Message = appendMsg(entry.Message, gerr.LogError())

	return nil
}

func appendMsg(msg string, messages ...string) string {
	for _, m := range messages {
		if m == "" {
			continue
		}
		if msg == "" {
			msg = m
			continue
		}
		msg += ": " + m
	}
	return msg
}
