package handler

import (
	"estate/config"
	"estate/di"
	"estate/shared/logger"
	"estate/transport/http"
	nethttp "net/http"
	"sync"
)

var (
	server *http.HTTP
	once   sync.Once
)

// Handler serves requests on platforms that own the listener.
func Handler(w nethttp.ResponseWriter, r *nethttp.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		server = di.InitializeService()
	})

	r.RequestURI = r.URL.String()

	server.ServeHTTP(w, r)
}
