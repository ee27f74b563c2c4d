package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"catalog/internal/auth"
	"catalog/pkg/domain"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type sessionContextKey struct{}

// sessionFromContext returns the session attached by withSession.
func sessionFromContext(ctx context.Context) (domain.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(domain.Session)

	return session, ok
}

// withSession authenticates the request with a Bearer session token. The
// live session ends up in the request context, anything else is a 401.
func withSession(verifier *auth.Verifier, sessions storage.SessionStorage, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		id, err := verifier.SessionID(token)
		if err != nil {
			writeError(w, r, err)

			return
		}

		session, err := sessions.SessionByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, serrors.ErrNotFound) {
				writeError(w, r, serrors.With(serrors.ErrUnauthorized, "session revoked"))

				return
			}
			writeError(w, r, err)

			return
		}

		if session.Expired(time.Now()) {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "session expired"))

			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), sessionContextKey{}, session)))
	}
}

type durationRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *durationRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// withDuration records a request duration histogram labeled by route pattern,
// method and status.
func withDuration(hist metric.Float64Histogram, mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, route := mux.Handler(r)
		if route == "" {
			route = "unmatched"
		}

		rec := &durationRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		mux.ServeHTTP(rec, r)

		hist.Record(r.Context(), time.Since(start).Seconds(),
			metric.WithAttributes(
				attribute.String("route", route),
				attribute.String("method", r.Method),
				attribute.String("status", strconv.Itoa(rec.status)),
			))
	})
}
