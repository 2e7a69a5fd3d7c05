package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// RecoverMessage is the body error returned when a handler panics.
const RecoverMessage = "Erro interno do servidor"

// RecoverJSONMiddleware turns handler panics into a JSON 500 so a single bad
// request never takes the process down.
func RecoverJSONMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Errorw("Handler panic",
					"request_id", RequestID(r.Context()),
					"path", r.RequestURI,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"error":   RecoverMessage,
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
