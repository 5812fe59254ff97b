package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/lenslate/lenslate/pkg/capture"
	"github.com/lenslate/lenslate/pkg/hub"
	"github.com/lenslate/lenslate/pkg/translate"
)

// StateResponse is the overlay's view of the session.
type StateResponse struct {
	capture.Session
	DisplayText string `json:"display_text"`
}

func stateResponse(session capture.Session) StateResponse {
	return StateResponse{Session: session, DisplayText: session.DisplayText()}
}

// handleState returns the current session snapshot.
func (s *Server) handleState(c *fiber.Ctx) error {
	return c.JSON(stateResponse(s.controller.Snapshot()))
}

// handleLanguages returns the supported language catalog.
func (s *Server) handleLanguages(c *fiber.Ctx) error {
	return c.JSON(translate.Catalog())
}

// SetLanguageRequest selects a new code for one slot of the pair.
type SetLanguageRequest struct {
	Slot string `json:"slot"`
	Code string `json:"code"`
}

// handleSetLanguage changes one half of the language pair.
func (s *Server) handleSetLanguage(c *fiber.Ctx) error {
	var req SetLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	err := s.controller.SetLanguage(c.Context(), capture.Slot(req.Slot), req.Code)
	switch {
	case errors.Is(err, capture.ErrUnknownSlot),
		errors.Is(err, translate.ErrUnsupportedLanguage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(stateResponse(s.controller.Snapshot()))
}

// handleCapture triggers one pipeline run outside the polling schedule.
func (s *Server) handleCapture(c *fiber.Ctx) error {
	started := s.controller.Trigger(c.Context())
	if !started {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "capture already in progress",
		})
	}
	return c.JSON(stateResponse(s.controller.Snapshot()))
}

// handleOverlayWS streams state snapshots to a viewer. The current state
// is sent immediately on connect.
func (s *Server) handleOverlayWS(c *websocket.Conn) {
	c.WriteJSON(stateResponse(s.controller.Snapshot()))
	client := hub.NewClient(s.overlayHub, c)
	client.Run()
}
