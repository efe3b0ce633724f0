package handler

import (
	"net/http"
	"sync"

	"staysync/config"
	"staysync/di"
	"staysync/shared/logger"
	"staysync/shared/timezone"
)

var (
	app  *di.Application
	once sync.Once
)

// Handler serves the operator API and the webhook endpoint on serverless platforms. The scheduler
// and the change feed consumer do not run in this mode.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.UseJSON(cfg)
		logger.SetLogLevel(cfg)
		timezone.Init(cfg.App.Timezone)

		app = di.InitializeService()
	})

	app.HTTP.ServeHTTP(w, r)
}
