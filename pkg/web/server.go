// Package web serves the overlay API and the websocket state feed.
package web

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/lenslate/lenslate/pkg/capture"
	"github.com/lenslate/lenslate/pkg/hub"
)

// CaptureController is the part of the capture loop the API drives.
type CaptureController interface {
	Snapshot() capture.Session
	Trigger(ctx context.Context) bool
	SetLanguage(ctx context.Context, slot capture.Slot, code string) error
}

// Server exposes the overlay state over HTTP and websocket.
type Server struct {
	app        *fiber.App
	port       string
	logger     *slog.Logger
	controller CaptureController
	overlayHub *hub.Hub
}

// NewServer wires the routes for the given controller.
func NewServer(port string, controller CaptureController, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		port:       port,
		logger:     logger.With("component", "web"),
		controller: controller,
		overlayHub: hub.New(logger),
	}

	app := fiber.New(fiber.Config{
		AppName:               "lenslate",
		DisableStartupMessage: true,
	})

	// CORS for local overlay development
	app.Use(cors.New())

	api := app.Group("/api")
	api.Get("/state", s.handleState)
	api.Get("/languages", s.handleLanguages)
	api.Post("/language", s.handleSetLanguage)
	api.Post("/capture", s.handleCapture)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/overlay", websocket.New(s.handleOverlayWS))

	s.app = app
	return s
}

// Start runs the server. It blocks until Shutdown.
func (s *Server) Start() error {
	go s.overlayHub.Run()
	s.logger.Info("overlay server listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// StartAsync runs the server in a goroutine.
func (s *Server) StartAsync() {
	go func() {
		if err := s.Start(); err != nil {
			s.logger.Error("overlay server failed", "error", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// PublishState broadcasts a session snapshot to every overlay viewer.
// Wire it to capture.Controller.OnUpdate.
func (s *Server) PublishState(session capture.Session) {
	if err := s.overlayHub.BroadcastJSON(stateResponse(session)); err != nil {
		s.logger.Warn("state broadcast failed", "error", err)
	}
}
