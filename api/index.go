package handler

import (
	"net/http"
	"stayadmin/config"
	"stayadmin/di"
	"stayadmin/shared/logger"
	"sync"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entrypoint. The verification consumer does not run here.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		handler = di.InitializeService().HTTP.Handler()
	})

	r.RequestURI = r.URL.String()

	handler.ServeHTTP(w, r)
}
