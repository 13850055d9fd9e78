package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/internal/checkin/store"
	"github.com/illiaantonenko/attendance/pkg/httpx"
	"github.com/illiaantonenko/attendance/pkg/jwtx"
	"github.com/illiaantonenko/attendance/pkg/slogx"

	_ "github.com/illiaantonenko/attendance/api/checkin" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keychain     *jwtx.Keychain
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	QrService      *service.QrService
	CheckInService *service.CheckInService
	EventService   *service.EventService
}

func NewRouter(
	keychain *jwtx.Keychain,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keychain:     keychain,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerQR()
	r.registerCheckIn()
	r.registerEvents()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Attendance Check-In Service API
//	@version		0.1.0
//	@description	One-time QR check-in token protocol for the attendance platform: token issuance,
//	@description	time-boxed validity, single-use redemption, geofence admission, and the durable audit trail.
//	@description
//	@description				Identity is supplied by the API gateway via the X-User-ID and X-User-Role headers.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	GatewayIdentity
//	@in							header
//	@name						X-User-ID
//	@description				Authenticated user ID forwarded by the API gateway.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerQR() {
	generate := &QrGenerateHandler{QrService: r.QrService}
	active := &QrActiveHandler{QrService: r.QrService}
	validate := &QrValidateHandler{QrService: r.QrService}

	// POST /v1/events/{id}/qr - moderate rate limit by user (teacher operation)
	r.Mux.Handle("POST /v1/events/{id}/qr",
		httpx.Chain(generate,
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /v1/events/{id}/qr/active - moderate rate limit by user
	r.Mux.Handle("GET /v1/events/{id}/qr/active",
		httpx.Chain(active,
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /v1/qr/validate - strict rate limit by IP (pre-auth scanner traffic)
	r.Mux.Handle("POST /v1/qr/validate",
		httpx.Chain(validate,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerCheckIn() {
	checkIn := &CheckInHandler{CheckInService: r.CheckInService}
	manual := &CheckInManualHandler{CheckInService: r.CheckInService}
	status := &CheckInStatusHandler{CheckInService: r.CheckInService}

	// POST /check-in - strict rate limit by user (redemption attempts)
	r.Mux.Handle("POST /v1/check-in",
		httpx.Chain(checkIn,
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	// POST /v1/events/{id}/check-in/manual - moderate rate limit by user
	r.Mux.Handle("POST /v1/events/{id}/check-in/manual",
		httpx.Chain(manual,
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /v1/events/{id}/check-in/status - lenient rate limit by user
	r.Mux.Handle("GET /v1/events/{id}/check-in/status",
		httpx.Chain(status,
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerEvents() {
	create := &EventsCreateHandler{EventService: r.EventService}

	// POST /v1/events - moderate rate limit by user
	r.Mux.Handle("POST /v1/events",
		httpx.Chain(create,
			httpx.IdentityMiddleware(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keychain),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
