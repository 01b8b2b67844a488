package errors

import (
	_ "embed"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"

	"github.com/gangwayhq/gangway/config/request"
)

var (
	DefaultHTML *Template
	DefaultJSON *Template
)

const HeaderErrorCode = "Gangway-Error"

//go:embed error.html
var errorHTML []byte

//go:embed error.json
var errorJSON []byte

func init() {
	var err error
	DefaultHTML, err = NewTemplate("text/html", "default.html", errorHTML, nil)
	if err != nil {
		panic(err)
	}
	DefaultJSON, err = NewTemplate("application/json", "default.json", errorJSON, nil)
	if err != nil {
		panic(err)
	}
}

type Template struct {
	log  *logrus.Entry
	mime string
	raw  []byte
	tpl  *template.Template
}

func NewTemplateFromFile(path string, logger *logrus.Entry) (*Template, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	tplFile, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	mime := "text/html"
	if strings.HasSuffix(path, ".json") {
		mime = "application/json"
	}

	_, fileName := filepath.Split(path)
	return NewTemplate(mime, fileName, tplFile, logger)
}

// SetLogger updates the default templates with the configured "daemon" logger.
func SetLogger(log *logrus.Entry) {
	DefaultJSON.log = log
	DefaultHTML.log = log
}

func NewTemplate(mime, name string, src []byte, logger *logrus.Entry) (*Template, error) {
	tpl, err := template.New(name).Parse(string(src))
	if err != nil {
		return nil, err
	}

	return &Template{
		log:  logger,
		mime: mime,
		raw:  src,
		tpl:  tpl,
	}, nil
}

// WithError returns a handler which renders the error template with the
// status and message of the given error.
func (t *Template) WithError(err error) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", t.mime)

		goErr, ok := err.(GoError)
		if !ok {
			goErr = Server.With(err)
		}

		rw.Header().Set(HeaderErrorCode, goErr.Error())
		rw.WriteHeader(goErr.HTTPStatus())

		if req.Method == http.MethodHead {
			return
		}

		reqID, _ := req.Context().Value(request.UID).(string)
		data := map[string]interface{}{
			"http_status": goErr.HTTPStatus(),
			"message":     goErr.Error(),
			"path":        req.URL.EscapedPath(),
			"request_id":  escapeValue(t.mime, reqID),
		}
		if tplErr := t.tpl.Execute(rw, data); tplErr != nil && t.log != nil {
			t.log.WithFields(data).Error(tplErr)
		}
	})
}

func escapeValue(mime, val string) string {
	if strings.HasPrefix(mime, "text/html") {
		return template.HTMLEscapeString(val)
	}
	return template.JSEscapeString(val)
}
