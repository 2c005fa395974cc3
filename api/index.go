package handler

import (
	"log"
	"net/http"
	"sync"

	"github.com/amirasaad/backoffice/infra/initializer"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/webapi"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

var (
	once    sync.Once
	httpApp http.HandlerFunc
)

// Handler is the serverless entry point. The application is built on the
// first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	// This is needed to set the proper request path in `*fiber.Ctx`
	r.RequestURI = r.URL.String()

	once.Do(func() { httpApp = handler() })
	httpApp.ServeHTTP(w, r)
}

// building the fiber application
func handler() http.HandlerFunc {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	// Serverless instances have no long-lived consumers or schedulers; the
	// sweep runs from the server or the CLI.
	deps, _, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		log.Fatal(err)
	}
	return adaptor.FiberApp(webapi.SetupApp(app.New(deps, cfg)))
}
