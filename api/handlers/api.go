package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/swiftwheels/swiftwheels-web/api"
	"github.com/swiftwheels/swiftwheels-web/api/scheduler"
	"github.com/swiftwheels/swiftwheels-web/booking"
	"github.com/swiftwheels/swiftwheels-web/config"
	"github.com/swiftwheels/swiftwheels-web/models"
	"github.com/swiftwheels/swiftwheels-web/upstream"
)

// requestTimeout bounds a full page render, upstream calls included.
const requestTimeout = 25 * time.Second

// App stores the router, config and upstream services, so it can be reused
type App struct {
	Router  *mux.Router
	Config  config.Config
	Catalog upstream.CatalogService
	Contact upstream.ContactService
	Booking upstream.BookingService
	Drafts  *booking.Store

	jobs *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()
	r.Use(api.RequestMiddleware)
	r.Use(api.TimeoutMiddleware(requestTimeout))

	p := Pages{}
	f := Fleet{Catalog: a.Catalog}
	c := Contact{Service: a.Contact}
	b := Booking{Catalog: a.Catalog, Service: a.Booking, Drafts: a.Drafts}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	r.Handle("/", http.HandlerFunc(p.HomeHandler)).Methods("GET")
	r.Handle("/about", http.HandlerFunc(p.AboutHandler)).Methods("GET")
	r.Handle("/pricing", http.HandlerFunc(p.PricingHandler)).Methods("GET")

	r.Handle("/fleet", http.HandlerFunc(f.ListHandler)).Methods("GET")
	r.Handle("/fleet/{slug}", http.HandlerFunc(f.DetailHandler)).Methods("GET")

	r.Handle("/contact", http.HandlerFunc(c.FormHandler)).Methods("GET")
	r.Handle("/contact", http.HandlerFunc(c.SubmitHandler)).Methods("POST")

	r.Handle("/book", http.HandlerFunc(b.StartHandler)).Methods("GET")
	r.Handle("/book/{slug}", http.HandlerFunc(b.StartHandler)).Methods("GET")
	r.Handle("/book", http.HandlerFunc(b.StepHandler)).Methods("POST")

	r.NotFoundHandler = api.RequestMiddleware(http.HandlerFunc(notFoundHandler))
	return r
}

// Initialize is invoked by main to wire the upstream clients and create a router
func (a *App) Initialize() error {
	if a.Config.UpstreamURL == "" {
		// without the rental API there is nothing to serve; kill the pod
		err := fmt.Errorf("UPSTREAM_URL is not set")
		zap.S().With(err).Error("failed to configure upstream clients")
		return err
	}

	client := upstream.NewClient(a.Config.UpstreamURL)
	if a.Catalog == nil {
		a.Catalog = upstream.NewCatalogService(client)
	}
	if a.Contact == nil {
		a.Contact = upstream.NewContactService(client)
	}
	if a.Booking == nil {
		a.Booking = upstream.NewBookingService(client)
	}
	if a.Drafts == nil {
		a.Drafts = booking.NewStore(a.Config.DraftTTL)
	}
	zap.S().Infow("swiftwheels-web wired to rental API", "upstream", a.Config.UpstreamURL)

	a.jobs = scheduler.New(a.Drafts, a.Catalog)
	a.jobs.Start()

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
