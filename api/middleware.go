package api

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/logging"
)

// requestLogger attaches a fresh LogData with a request id to every request
// and emits one structured completion line. Handlers pick the LogData up via
// logging.GetLogData to add timings and data items.
func requestLogger(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		logData := logging.NewLogData(logger)

		requestID, err := uuid.NewV4()
		if err == nil {
			logData.AddData("requestID", requestID.String())
		}
		logData.AddData("method", req.Method)
		logData.AddData("path", req.URL.Path)

		endTimer := logData.AddTiming("durationMs")
		next.ServeHTTP(w, req.WithContext(logging.WithLogData(req.Context(), logData)))
		endTimer()

		logData.Log().Info("Request.Complete")
	})
}
