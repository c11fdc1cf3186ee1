package server

import (
	_ "embed"
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/hupe1980/zof/logging"
	"github.com/hupe1980/zof/solver"
)

//go:embed templates/index.html
var indexHTML string

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Logger receives request and solve logs. Defaults to NoOpLogger.
	Logger logging.Logger
	// Mode is the gin mode (gin.DebugMode, gin.ReleaseMode, gin.TestMode).
	Mode string
	// Defaults pre-fill the form and backstop omitted optional fields.
	Defaults Defaults
}

// Server wires the solver engine to the HTTP boundary.
type Server struct {
	engine   *solver.Engine
	logger   logging.Logger
	router   *gin.Engine
	defaults Defaults
}

// New constructs a Server around an engine with optional overrides.
func New(engine *solver.Engine, optFns ...func(o *Options)) *Server {
	opts := Options{
		Logger:   logging.NoOpLogger{},
		Mode:     gin.ReleaseMode,
		Defaults: DefaultConfig().Defaults,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	gin.SetMode(opts.Mode)

	s := &Server{
		engine:   engine,
		logger:   opts.Logger,
		router:   gin.Default(),
		defaults: opts.Defaults,
	}

	s.router.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.POST("/", s.handleForm)
	s.router.GET("/plot", s.handlePlot)

	api := s.router.Group("/api/v1")
	api.POST("/solve", s.handleSolve)
	api.GET("/methods", s.handleMethods)
}

// Router exposes the underlying gin engine for tests and embedding.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run starts the HTTP server on addr and blocks until it exits.
func (s *Server) Run(addr string) error {
	s.logger.Info("starting web front end", "addr", addr)
	return s.router.Run(addr)
}
