package frontend

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// FS embeds the dashboard build
//
//go:embed all:dist
var FS embed.FS

// GetHTTPFS returns the embedded dashboard for HTTP serving. It fails when
// dist holds no index.html.
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded dist")
	}

	if _, err := fs.Stat(sub, "index.html"); err != nil {
		return nil, goerr.Wrap(err, "frontend is not built")
	}

	return http.FS(sub), nil
}
