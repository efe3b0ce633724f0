package di

import (
	"staysync/transport/event"
	"staysync/transport/http"
	"staysync/transport/scheduler"
)

// Application holds the long-running parts started by cmd/app.
type Application struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
	Consumer  *event.Consumer
}
