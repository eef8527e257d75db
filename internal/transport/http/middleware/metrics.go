package middleware

import (
	"net/http"
	"strings"
	"time"

	"hrtracker/internal/platform/metrics"
)

func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if collector == nil {
				next.ServeHTTP(w, r)
				return
			}
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			assignment := r.Method == http.MethodPost && strings.Contains(r.URL.Path, "/schedules/assign")
			collector.Record(recorder.status, time.Since(start), assignment)
		})
	}
}
