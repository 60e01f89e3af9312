// Package gin adapts Gin routers for promexpose.
//
// # Quick Start
//
//	r := ginlib.New()
//
//	att, err := ginpromexpose.Attach(r, "/metrics")
//	if err != nil {
//	    log.Fatal(err)
//	}
package gin

import (
	"net/http"

	ginlib "github.com/gin-gonic/gin"
	"github.com/kroma-labs/promexpose"
)

// Router wraps a Gin engine as a promexpose.Router.
//
//	att, err := promexpose.Attach(ginpromexpose.Router(r), "/metrics", registry)
func Router(r *ginlib.Engine) promexpose.Router {
	return router{r: r}
}

type router struct {
	r *ginlib.Engine
}

func (a router) Method(method, pattern string, h http.Handler) {
	a.r.Handle(method, pattern, WrapHandler(h))
}

// WrapHandler wraps an http.Handler as a Gin handler.
//
//	r.GET("/custom", ginpromexpose.WrapHandler(myHandler))
func WrapHandler(h http.Handler) ginlib.HandlerFunc {
	return func(c *ginlib.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Attach registers the metrics endpoint on a Gin engine. It accepts
// the same optional configuration argument as promexpose.Attach.
func Attach(r *ginlib.Engine, path string, opts ...any) (*promexpose.Attachment, error) {
	return promexpose.Attach(Router(r), path, opts...)
}
