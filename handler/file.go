package handler

import (
	"io"
	"mime"
	"net/http"
	"path"
	"path/filepath"

	"github.com/gangwayhq/gangway/app"
)

var _ app.Handler = &File{}

// File serves files below a root directory. It reads from the filesystem per
// request but still honors the adapter contract: same environment shape in,
// some well-formed response out, failures converted into a page.
type File struct {
	rootDir  http.Dir
	fallback app.Handler
}

func NewFile(root string, fallback app.Handler) *File {
	return &File{
		rootDir:  http.Dir(root),
		fallback: fallback,
	}
}

func (f *File) Handle(env *app.Environment) *app.Response {
	if env.Method() != http.MethodGet && env.Method() != http.MethodHead {
		return f.miss(env)
	}

	file, err := f.rootDir.Open(path.Clean(env.Path()))
	if err != nil {
		return f.miss(env)
	}
	defer file.Close()

	info, err := file.Stat()
	// no directory listing
	if err != nil || info.IsDir() {
		return f.miss(env)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return f.miss(env)
	}

	res := app.NewResponse(http.StatusOK)
	if ct := mime.TypeByExtension(filepath.Ext(env.Path())); ct != "" {
		res.Header.Set("Content-Type", ct)
	}
	res.Body = [][]byte{content}
	return res
}

func (f *File) miss(env *app.Environment) *app.Response {
	if f.fallback != nil {
		return f.fallback.Handle(env)
	}
	return notFound()
}

func (f *File) String() string {
	return "file"
}
