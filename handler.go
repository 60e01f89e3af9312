package promexpose

import (
	"bytes"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog/log"
)

// snapshotFormat is the exposition format served by the handler. The
// format string doubles as the Content-Type header value.
var snapshotFormat = expfmt.NewFormat(expfmt.TypeTextPlain)

// errorBody is the JSON payload written when a snapshot cannot be
// produced.
type errorBody struct {
	Message string `json:"message"`
}

// Handler builds the http.Handler that serves metric snapshots from p.
//
// On each request the provider is resolved with the request context,
// the registry is gathered, and the snapshot is encoded into a buffer
// before anything is written, so Content-Length always matches the
// body exactly. An empty registry yields a well-formed empty snapshot.
//
// Provider, gather and encode failures are logged and rendered as a
// JSON 500; they are never retried.
//
// Attach calls this internally; it is exported for callers that want
// to mount the endpoint by hand:
//
//	mux.Handle("/metrics", promexpose.Handler(promexpose.GathererOf(reg)))
func Handler(p Provider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gatherer, err := p(r.Context())
		if err != nil {
			writeSnapshotError(w, "resolving metrics registry failed", err)
			return
		}

		families, err := gatherer.Gather()
		if err != nil {
			writeSnapshotError(w, "gathering metrics failed", err)
			return
		}

		var buf bytes.Buffer
		enc := expfmt.NewEncoder(&buf, snapshotFormat)
		for _, mf := range families {
			if err := enc.Encode(mf); err != nil {
				writeSnapshotError(w, "encoding metrics snapshot failed", err)
				return
			}
		}

		w.Header().Set("Content-Type", string(snapshotFormat))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			log.Error().Err(err).Msg("promexpose: failed to write metrics snapshot")
		}
	})
}

// writeSnapshotError logs the failure and renders a JSON error body.
func writeSnapshotError(w http.ResponseWriter, message string, err error) {
	log.Error().Err(err).Msg("promexpose: " + message)
	writeJSONError(w, http.StatusInternalServerError, message)
}

// writeJSONError writes a minimal JSON error response.
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errorBody{Message: message}); err != nil {
		// Headers are already written, nothing more to send.
		log.Error().Err(err).Int("status_code", statusCode).
			Msg("promexpose: failed to encode JSON error response")
	}
}
