package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/soltixdb/varint/internal/compression"
	"github.com/soltixdb/varint/internal/models"
	"github.com/soltixdb/varint/internal/varint"
)

// Health reports liveness together with the codec limits in force
func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   Version,
		Uptime:    time.Since(h.startedAt).Truncate(time.Second).String(),
		Codec: models.CodecLimits{
			MaxVarintLen: varint.MaxLen64,
			MaxBatch:     h.maxBatch,
			MaxBlockSize: compression.MaxEncodedSize(h.maxBatch),
			Compression:  h.defaultCompression.String(),
		},
	})
}

// NotFound answers unknown routes with NOT_FOUND
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return respondError(c, models.NewAPIError(fiber.StatusNotFound, models.CodeNotFound,
		"no route for "+c.Method()+" "+c.Path()))
}
