package promexpose

import (
	"fmt"
	"net/http"
	"strings"
)

// Router is the host-server capability promexpose registers against.
//
// It matches chi's registration signature, so a chi.Router can be
// passed to Attach unmodified. The adapter packages wrap gin, echo,
// fiber and grpc-gateway routers into this interface.
type Router interface {
	Method(method, pattern string, h http.Handler)
}

// defaultMethod is the verb used when none is configured.
const defaultMethod = "get"

// methodNames maps recognized verb names (lowercase) to their
// canonical registration form.
var methodNames = map[string]string{
	"get":     http.MethodGet,
	"head":    http.MethodHead,
	"post":    http.MethodPost,
	"put":     http.MethodPut,
	"patch":   http.MethodPatch,
	"delete":  http.MethodDelete,
	"options": http.MethodOptions,
	"trace":   http.MethodTrace,
}

// resolveMethod validates a configured verb name and returns the
// canonical method string for registration. An empty name resolves to
// the default verb.
func resolveMethod(name string) (string, error) {
	if name == "" {
		name = defaultMethod
	}
	m, ok := methodNames[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return m, nil
}
