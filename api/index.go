package handler

import (
	"barber/config"
	"barber/di"
	"barber/shared/logger"
	httpTransport "barber/transport/http"
	"net/http"
	"sync"
)

var (
	service *httpTransport.HTTP
	once    sync.Once
)

// Handler serves the API from a serverless function. The dependency graph is
// built on the first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		service = di.InitializeService()
	})

	service.ServeHTTP(w, r)
}
