package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/gangwayhq/gangway/app"
	"github.com/gangwayhq/gangway/config"
	"github.com/gangwayhq/gangway/config/request"
	"github.com/gangwayhq/gangway/errors"
	"github.com/gangwayhq/gangway/logging"
	"github.com/gangwayhq/gangway/telemetry"
)

// HTTPServer is the dispatch server: it terminates the transport, translates
// each request into an app.Environment, invokes the bound application
// adapter exactly once and serializes the returned response. Malformed
// request framing is rejected by the underlying net/http server before the
// adapter is reached.
type HTTPServer struct {
	accessLog *logging.AccessLog
	ctx       context.Context
	handler   app.Handler
	listener  net.Listener
	log       *logrus.Entry
	metrics   *telemetry.Metrics
	settings  *config.Settings
	srv       *http.Server
	uidFn     func() string
}

// New creates the dispatch server for the given application adapter. The
// adapter reference is explicit; there is no ambient registry. The adapter
// gets wrapped with the fault boundary so a panicking application still
// produces a well-formed 500 response.
func New(ctx context.Context, logger *logrus.Entry, settings *config.Settings, application app.Handler) *HTTPServer {
	if settings == nil {
		defaults := config.DefaultSettings
		settings = &defaults
	}

	httpSrv := &HTTPServer{
		accessLog: logging.NewAccessLog(nil, logger),
		ctx:       ctx,
		handler:   app.Recover(application),
		log:       logger,
		settings:  settings,
		uidFn: func() string {
			return xid.New().String()
		},
	}

	httpSrv.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", settings.DefaultPort),
		Handler:           httpSrv,
		IdleTimeout:       settings.IdleTimeout,
		ReadHeaderTimeout: settings.ReadHeaderTimeout,
	}

	return httpSrv
}

// SetMetrics enables request instrumentation.
func (s *HTTPServer) SetMetrics(m *telemetry.Metrics) {
	s.metrics = m
}

func (s *HTTPServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return ""
}

// Listen binds the configured port and starts serving until the server
// context gets cancelled.
func (s *HTTPServer) Listen() error {
	ln, err := net.Listen("tcp4", s.srv.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.log.WithField("addr", ln.Addr().String()).Info("gangway is serving")

	go s.listenForCtx()

	go func() {
		if serveErr := s.srv.Serve(ln); serveErr != nil && serveErr != http.ErrServerClosed {
			s.log.Error(serveErr)
		}
	}()
	return nil
}

// Close closes the listener.
func (s *HTTPServer) Close() error {
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

func (s *HTTPServer) listenForCtx() {
	<-s.ctx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	s.log.WithField("deadline", "10s").Warn("shutting down")
	_ = s.srv.Shutdown(ctx)
}

func (s *HTTPServer) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	startTime := time.Now()

	uid := s.uidFn()
	ctx := context.WithValue(req.Context(), request.UID, uid)
	ctx = context.WithValue(ctx, request.StartTime, startTime)
	*req = *req.WithContext(ctx)

	req.Header.Set("X-Request-Id", uid)
	rw.Header().Set("X-Request-Id", uid)

	sr := logging.NewStatusRecorder(rw)
	s.accessLog.ServeHTTP(sr, req, &dispatchHandler{s}, startTime)

	if s.metrics != nil {
		s.metrics.Record(req.Method, sr.StatusCode(), time.Since(startTime))
	}
}

var _ fmt.Stringer = &dispatchHandler{}

type dispatchHandler struct {
	s *HTTPServer
}

func (d *dispatchHandler) String() string {
	if str, ok := d.s.handler.(fmt.Stringer); ok {
		return str.String()
	}
	return ""
}

func (d *dispatchHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	s := d.s

	env, err := app.NewEnvironment(req.Method, req.URL.Path, req.URL.RawQuery, req.Header, req.Body)
	if err != nil {
		// invalid request metadata, the adapter never sees it
		errors.DefaultHTML.WithError(err).ServeHTTP(rw, req)
		return
	}

	res, err := s.invoke(req.Context(), env)
	if err != nil {
		if req.Context().Err() != nil { // client is gone, nothing to write
			return
		}
		errors.DefaultHTML.WithError(err).ServeHTTP(rw, req)
		return
	}

	writeResponse(rw, res)
}

// invoke calls the adapter within the configured time budget. The in-flight
// call gets abandoned on timeout or client disconnect; interruption is
// best-effort since a blocking adapter cannot be stopped from here.
func (s *HTTPServer) invoke(ctx context.Context, env *app.Environment) (*app.Response, error) {
	resCh := make(chan *app.Response, 1)
	go func() {
		resCh <- s.handler.Handle(env)
	}()

	timer := time.NewTimer(s.settings.HandleTimeout)
	defer timer.Stop()

	select {
	case res := <-resCh:
		return res, nil
	case <-timer.C:
		return nil, errors.ServerTimeout.Messagef("handle exceeded %s", s.settings.HandleTimeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// writeResponse serializes the adapter response. The content-length header
// always reflects the actual body size; an adapter supplied value gets
// overridden.
func writeResponse(rw http.ResponseWriter, res *app.Response) {
	header := rw.Header()
	for key, values := range res.Header {
		if http.CanonicalHeaderKey(key) == "Content-Length" {
			continue
		}
		header[key] = values
	}
	header.Set("Content-Length", strconv.Itoa(res.ContentLength()))

	rw.WriteHeader(res.Status)

	for _, chunk := range res.Body {
		if _, err := rw.Write(chunk); err != nil {
			return // broken connection, nothing to repair
		}
	}
}
