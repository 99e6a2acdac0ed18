// Package web contiene las vistas embebidas de la pantalla de
// administración del registro.
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

// NewEngine crea el motor de plantillas con las vistas embebidas.
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, err
	}
	return html.NewFileSystem(http.FS(sub), ".html"), nil
}
