// Package fiber adapts Fiber apps for promexpose.
//
// Fiber runs on fasthttp, so registered handlers go through the
// fiber/middleware/adaptor bridge.
//
// # Quick Start
//
//	app := fiberlib.New()
//
//	att, err := fiberpromexpose.Attach(app, "/metrics")
//	if err != nil {
//	    log.Fatal(err)
//	}
package fiber

import (
	"net/http"

	fiberlib "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/kroma-labs/promexpose"
)

// Router wraps a Fiber app as a promexpose.Router.
//
//	att, err := promexpose.Attach(fiberpromexpose.Router(app), "/metrics", registry)
func Router(app *fiberlib.App) promexpose.Router {
	return router{app: app}
}

type router struct {
	app *fiberlib.App
}

func (a router) Method(method, pattern string, h http.Handler) {
	a.app.Add(method, pattern, adaptor.HTTPHandler(h))
}

// Attach registers the metrics endpoint on a Fiber app. It accepts the
// same optional configuration argument as promexpose.Attach.
func Attach(app *fiberlib.App, path string, opts ...any) (*promexpose.Attachment, error) {
	return promexpose.Attach(Router(app), path, opts...)
}
