package http

import (
	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the swagger UI under prefix, reading the spec from docURL
func MountSwagger(r Router, prefix, docURL string) {
	r.Handle(prefix+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(docURL),
	))
}
