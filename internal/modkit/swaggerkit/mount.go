// Package swaggerkit serves Swagger UI over an OpenAPI doc assembled from modules
package swaggerkit

import (
	"net/http"

	phttp "stubdemo/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI and doc.json live
const DocsPath = "/docs"

// Mount serves the Swagger UI and JSON doc if enabled
func (d *Doc) Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	toIndex := func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/index.html", http.StatusMovedPermanently)
	}
	r.Get(DocsPath, toIndex)
	r.Get(DocsPath+"/", toIndex)
	r.Get(DocsPath+"/doc.json", d.serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("stubdemo"),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}
