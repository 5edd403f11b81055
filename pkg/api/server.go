// Package api is the run-control HTTP surface: project, recording,
// spec, run, and suite CRUD, artifact download, the live event
// websocket, and health endpoints. Handlers stay thin; everything
// stateful lives in pkg/services and pkg/queue.
package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dappsmith/conductor/pkg/config"
	"github.com/dappsmith/conductor/pkg/database"
	"github.com/dappsmith/conductor/pkg/events"
	"github.com/dappsmith/conductor/pkg/generator"
	"github.com/dappsmith/conductor/pkg/queue"
	"github.com/dappsmith/conductor/pkg/sandbox"
	"github.com/dappsmith/conductor/pkg/services"
)

// Deps bundles everything the server routes to.
type Deps struct {
	Config         *config.Config
	DB             *database.Client
	Projects       *services.ProjectService
	Recordings     *services.RecordingService
	Specs          *services.SpecService
	Clarifications *services.ClarificationService
	Runs           *services.RunService
	Suites         *services.SuiteRunService
	Artifacts      *services.ArtifactService
	Queue          *queue.Queue
	Pool           *queue.WorkerPool
	ConnManager    *events.ConnectionManager
	Supervisor     *sandbox.Supervisor
	Generator      generator.Generator

	// APIKey, when non-empty, is required on every request except the
	// health probes.
	APIKey string
}

// Server is the run-control HTTP server.
type Server struct {
	cfg            *config.Config
	db             *database.Client
	projects       *services.ProjectService
	recordings     *services.RecordingService
	specs          *services.SpecService
	clarifications *services.ClarificationService
	runs           *services.RunService
	suites         *services.SuiteRunService
	artifacts      *services.ArtifactService
	queue          *queue.Queue
	pool           *queue.WorkerPool
	connManager    *events.ConnectionManager
	supervisor     *sandbox.Supervisor
	generator      generator.Generator

	engine    *gin.Engine
	http      *http.Server
	startedAt time.Time
}

// NewServer wires the routes and returns a server ready to Start.
func NewServer(deps Deps) *Server {
	s := &Server{
		cfg:            deps.Config,
		db:             deps.DB,
		projects:       deps.Projects,
		recordings:     deps.Recordings,
		specs:          deps.Specs,
		clarifications: deps.Clarifications,
		runs:           deps.Runs,
		suites:         deps.Suites,
		artifacts:      deps.Artifacts,
		queue:          deps.Queue,
		pool:           deps.Pool,
		connManager:    deps.ConnManager,
		supervisor:     deps.Supervisor,
		generator:      deps.Generator,
		startedAt:      time.Now(),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(), securityHeaders(), corsHeaders())

	// Probes and the websocket sit outside the versioned group: probes
	// must work unauthenticated, and browsers cannot attach headers to
	// websocket upgrades.
	engine.GET("/healthz", s.healthzHandler)
	engine.GET("/readyz", s.readyzHandler)
	engine.GET("/ws", s.wsHandler)

	v1 := engine.Group("/api/v1")
	if deps.APIKey != "" {
		v1.Use(apiKeyAuth(deps.APIKey))
	}

	v1.POST("/projects", s.createProjectHandler)
	v1.GET("/projects", s.listProjectsHandler)
	v1.GET("/projects/:id", s.getProjectHandler)
	v1.PATCH("/projects/:id", s.updateProjectHandler)
	v1.DELETE("/projects/:id", s.deleteProjectHandler)

	v1.POST("/recordings", s.createRecordingHandler)
	v1.GET("/recordings", s.listRecordingsHandler)
	v1.GET("/recordings/:id", s.getRecordingHandler)
	v1.DELETE("/recordings/:id", s.deleteRecordingHandler)
	v1.POST("/recordings/:id/generate", s.generateSpecHandler)

	v1.POST("/specs", s.createSpecHandler)
	v1.GET("/specs", s.listSpecsHandler)
	v1.GET("/specs/:id", s.getSpecHandler)
	v1.PUT("/specs/:id/code", s.updateSpecCodeHandler)
	v1.POST("/specs/:id/status", s.setSpecStatusHandler)
	v1.DELETE("/specs/:id", s.deleteSpecHandler)
	v1.GET("/specs/:id/clarifications", s.listClarificationsHandler)

	v1.POST("/clarifications/:id/answer", s.answerClarificationHandler)
	v1.POST("/clarifications/:id/skip", s.skipClarificationHandler)

	v1.POST("/runs", s.createRunHandler)
	v1.GET("/runs", s.listRunsHandler)
	v1.GET("/runs/:id", s.getRunHandler)
	v1.POST("/runs/:id/cancel", s.cancelRunHandler)
	v1.POST("/runs/:id/heal", s.healRunHandler)
	v1.DELETE("/runs/:id", s.deleteRunHandler)
	v1.GET("/runs/:id/artifacts", s.listArtifactsHandler)
	v1.POST("/runs/:id/stream/start", s.startStreamHandler)
	v1.POST("/runs/:id/stream/stop", s.stopStreamHandler)

	v1.GET("/artifacts/:id", s.getArtifactHandler)
	v1.GET("/artifacts/:id/download", s.downloadArtifactHandler)

	v1.POST("/suite-runs", s.createSuiteRunHandler)
	v1.GET("/suite-runs", s.listSuiteRunsHandler)
	v1.GET("/suite-runs/:id", s.getSuiteRunHandler)
	v1.POST("/suite-runs/:id/cancel", s.cancelSuiteRunHandler)

	v1.GET("/system/info", s.systemInfoHandler)

	s.engine = engine
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start blocks serving HTTP on addr until Shutdown.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// StartWithListener serves on an already-bound listener. Tests use this
// to grab a random port before the serve goroutine starts.
func (s *Server) StartWithListener(ln net.Listener) error {
	s.http = &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.Serve(ln)
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
