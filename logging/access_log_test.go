package logging_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gangwayhq/gangway/internal/test"
	"github.com/gangwayhq/gangway/logging"
)

func TestAccessLog_ClientAbort(t *testing.T) {
	log, hook := test.NewLogger()
	accessLog := logging.NewAccessLog(nil, log)

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/download", nil).WithContext(ctx)
	cancel() // client is gone before anything got written

	sr := logging.NewStatusRecorder(httptest.NewRecorder())
	accessLog.ServeHTTP(sr, req, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}), time.Now())

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Data["status"] != 0 {
		t.Errorf("expected status 0, got %v", entry.Data["status"])
	}
	if entry.Data["client_abort"] != true {
		t.Errorf("expected the client_abort field, got %v", entry.Data["client_abort"])
	}
}

func TestAccessLog_CompletedRequest(t *testing.T) {
	log, hook := test.NewLogger()
	accessLog := logging.NewAccessLog(nil, log)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	sr := logging.NewStatusRecorder(httptest.NewRecorder())
	accessLog.ServeHTTP(sr, req, http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(http.StatusOK)
	}), time.Now())

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if entry.Data["status"] != http.StatusOK {
		t.Errorf("expected status 200, got %v", entry.Data["status"])
	}
	if _, exist := entry.Data["client_abort"]; exist {
		t.Error("expected no client_abort field for a completed request")
	}
}
