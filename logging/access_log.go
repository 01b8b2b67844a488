package logging

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gangwayhq/gangway/config/request"
)

// AccessLog writes one log line per completed request: method, path,
// resulting status and latency, plus the configured header subset.
type AccessLog struct {
	conf   *Config
	logger logrus.FieldLogger
}

func NewAccessLog(c *Config, logger logrus.FieldLogger) *AccessLog {
	conf := c
	if conf == nil {
		conf = &DefaultConfig
	}
	return &AccessLog{
		conf:   conf,
		logger: logger,
	}
}

func (log *AccessLog) ServeHTTP(rw http.ResponseWriter, req *http.Request, nextHandler http.Handler, startTime time.Time) {
	nextHandler.ServeHTTP(rw, req)
	serveDone := time.Now()

	fields := Fields{
		"method": req.Method,
		"proto":  req.Proto,
		"uid":    req.Context().Value(request.UID),
	}

	if h, ok := nextHandler.(fmt.Stringer); ok && h.String() != "" {
		fields["handler"] = h.String()
	}

	requestFields := Fields{
		"headers": filterHeader(log.conf.RequestHeaders, req.Header),
	}
	fields["request"] = requestFields

	if req.ContentLength > 0 {
		requestFields["bytes"] = req.ContentLength
	}

	path := &url.URL{
		Path:     req.URL.Path,
		RawPath:  req.URL.RawPath,
		RawQuery: req.URL.RawQuery,
	}
	fields["path"] = path.String()

	if req.Host != "" {
		requestFields["addr"] = req.Host
		requestFields["host"], requestFields["port"] = splitHostPort(req.Host)
	}

	var statusCode int
	var writtenBytes int
	if recorder, ok := rw.(RecorderInfo); ok {
		statusCode = recorder.StatusCode()
		writtenBytes = recorder.WrittenBytes()
	}

	fields["realtime"] = RoundMS(serveDone.Sub(startTime))
	fields["status"] = statusCode

	// nothing was written since the client went away mid-request
	if statusCode == 0 && req.Context().Err() != nil {
		fields["client_abort"] = true
	}

	responseFields := Fields{
		"headers": filterHeader(log.conf.ResponseHeaders, rw.Header()),
	}
	fields["response"] = responseFields

	if writtenBytes > 0 {
		responseFields["bytes"] = writtenBytes
	}

	fields["client_ip"], _ = splitHostPort(req.RemoteAddr)

	entry := log.logger.WithFields(logrus.Fields(fields))

	if statusCode >= http.StatusInternalServerError {
		entry.Error()
	} else {
		entry.Info()
	}
}
