// Package echo adapts Echo routers for promexpose.
//
// # Quick Start
//
//	e := echolib.New()
//
//	att, err := echopromexpose.Attach(e, "/metrics")
//	if err != nil {
//	    log.Fatal(err)
//	}
package echo

import (
	"net/http"

	"github.com/kroma-labs/promexpose"
	echolib "github.com/labstack/echo/v4"
)

// Router wraps an Echo instance as a promexpose.Router.
//
//	att, err := promexpose.Attach(echopromexpose.Router(e), "/metrics", registry)
func Router(e *echolib.Echo) promexpose.Router {
	return router{e: e}
}

type router struct {
	e *echolib.Echo
}

func (a router) Method(method, pattern string, h http.Handler) {
	a.e.Add(method, pattern, echolib.WrapHandler(h))
}

// Attach registers the metrics endpoint on an Echo instance. It
// accepts the same optional configuration argument as
// promexpose.Attach.
func Attach(e *echolib.Echo, path string, opts ...any) (*promexpose.Attachment, error) {
	return promexpose.Attach(Router(e), path, opts...)
}
