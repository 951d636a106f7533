package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/application/usecase"
)

// TrackHandler receives page-view beacons. Always answers 200: telemetry
// must never surface an error to the storefront.
type TrackHandler struct {
	uc *usecase.TelemetryUseCase
}

// NewTrackHandler builds the handler.
func NewTrackHandler(uc *usecase.TelemetryUseCase) *TrackHandler {
	return &TrackHandler{uc: uc}
}

// Track godoc
// @Summary      Record a page view (public, best-effort)
// @Tags         telemetry
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TrackRequest  true  "Page view"
// @Success      200   {object}  dto.TrackResponse
// @Router       /api/track [post]
func (h *TrackHandler) Track(c *fiber.Ctx) error {
	var in dto.TrackRequest
	if err := c.BodyParser(&in); err != nil {
		in = dto.TrackRequest{}
	}
	if in.Locale == "" {
		in.Locale = GetLocale(c)
	}
	return c.JSON(h.uc.Track(in))
}
