package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"weatherfav/internal/deps"
	"weatherfav/internal/http/handlers/favorite/add_favorite"
	"weatherfav/internal/http/handlers/favorite/delete_favorite"
	"weatherfav/internal/http/handlers/favorite/get_favorite"
	"weatherfav/internal/http/handlers/favorite/list_favorites"
	"weatherfav/internal/http/handlers/middlewares/auth"
	"weatherfav/internal/http/handlers/middlewares/compressor"
	"weatherfav/internal/http/handlers/middlewares/logger"
	"weatherfav/internal/http/handlers/system/dbcheck"
	"weatherfav/internal/http/handlers/system/health"
	"weatherfav/internal/http/handlers/system/initdb"
	"weatherfav/internal/http/handlers/user/create_user"
	"weatherfav/internal/http/handlers/user/delete_user"
	"weatherfav/internal/http/handlers/user/login"
	"weatherfav/internal/http/handlers/user/logout"
	"weatherfav/internal/http/handlers/user/update_password"
	"weatherfav/internal/http/handlers/weather"
	"weatherfav/internal/http/httputils"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Services - все зависимости HTTP слоя
type Services struct {
	Users     deps.UserService
	Favorites deps.FavoritesService
	Sessions  deps.SessionService
	Tokens    deps.TokenService
	Weather   deps.WeatherService
	Admin     deps.AdminService
}

func (s Services) validate() error {
	if s.Users == nil || s.Favorites == nil || s.Sessions == nil ||
		s.Tokens == nil || s.Weather == nil || s.Admin == nil {
		return errors.New("all services must be provided")
	}
	return nil
}

type Server struct {
	httpServer *http.Server
	router     *mux.Router
	log        *zerolog.Logger
	svc        Services
	addr       string
}

func NewServer(log *zerolog.Logger, addr string, svc Services) (*Server, error) {
	if addr == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := svc.validate(); err != nil {
		return nil, err
	}

	s := &Server{
		router: mux.NewRouter(),
		log:    log,
		svc:    svc,
		addr:   addr,
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	log := *s.log

	s.router.Use(logger.MiddlewareLogging(s.log))
	s.router.Use(compressor.MiddlewareCompressing())
	s.router.Use(auth.MiddlewareAuth(s.svc.Tokens))

	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusNotFound, "not found")
	})
	s.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	api := s.router.PathPrefix("/api").Subrouter()

	/*
		System
	*/
	api.HandleFunc("/health", health.HandlerHealth()).Methods(http.MethodGet)
	api.HandleFunc("/db-check", dbcheck.HandlerDBCheck(s.svc.Admin, log)).Methods(http.MethodGet)
	api.HandleFunc("/init-db", initdb.HandlerInitDB(s.svc.Admin, log)).Methods(http.MethodPost)

	/*
		Users & sessions
	*/
	api.HandleFunc("/create-user", create_user.HandlerCreateUser(s.svc.Users, log)).Methods(http.MethodPost)                 // 201
	api.HandleFunc("/delete-user", delete_user.HandlerDeleteUser(s.svc.Users, log)).Methods(http.MethodDelete)               // 200
	api.HandleFunc("/update-password", update_password.HandlerUpdatePassword(s.svc.Users, log)).Methods(http.MethodPut)      // 200
	api.HandleFunc("/login", login.HandlerLogin(s.svc.Users, s.svc.Sessions, s.svc.Tokens, log)).Methods(http.MethodPost)    // 200
	api.HandleFunc("/logout", logout.HandlerLogout(s.svc.Users, s.svc.Sessions, log)).Methods(http.MethodPost)               // 200

	/*
		Favorites
	*/
	api.HandleFunc("/add-favorite", add_favorite.HandlerAddFavorite(s.svc.Users, s.svc.Favorites, log)).Methods(http.MethodPost) // 201
	api.HandleFunc("/get-favorites/{user}", list_favorites.HandlerListFavorites(s.svc.Users, s.svc.Favorites, log)).Methods(http.MethodGet)
	api.HandleFunc("/get-favorite/{user}/{city}", get_favorite.HandlerGetFavorite(s.svc.Users, s.svc.Favorites, log)).Methods(http.MethodGet)
	api.HandleFunc("/delete-favorite", delete_favorite.HandlerDeleteFavorite(s.svc.Users, s.svc.Favorites, log)).Methods(http.MethodDelete)

	/*
		Weather proxy
	*/
	api.HandleFunc("/weather/{city}", weather.HandlerCurrent(s.svc.Weather, log)).Methods(http.MethodGet)
	api.HandleFunc("/forecast/{city}", weather.HandlerForecast(s.svc.Weather, log)).Methods(http.MethodGet)
}

// Handler нужен для тестов через httptest
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.addr).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
