package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/soltixdb/varint/internal/compression"
	"github.com/soltixdb/varint/internal/config"
	"github.com/soltixdb/varint/internal/logging"
	"github.com/soltixdb/varint/internal/models"
	"github.com/soltixdb/varint/internal/varint"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Handler contains all HTTP handlers
type Handler struct {
	logger             *logging.Logger
	maxBatch           int
	defaultCompression compression.Algorithm
	uintSeq            *compression.UintSequence
	delta              *compression.DeltaEncoder
	startedAt          time.Time
}

// New creates a new handler instance
func New(logger *logging.Logger, codecCfg config.CodecConfig) (*Handler, error) {
	algo, err := compression.ParseAlgorithm(codecCfg.Compression)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		logger:             logger,
		maxBatch:           codecCfg.MaxBatch,
		defaultCompression: algo,
		uintSeq:            compression.NewUintSequence(),
		delta:              compression.NewDeltaEncoder(),
		startedAt:          time.Now(),
	}, nil
}

// requestLogger returns the logger stored by the logging middleware, tagged
// with the request ID.
func requestLogger(c *fiber.Ctx) *logging.Logger {
	ctx := c.UserContext()
	return logging.FromContext(ctx).WithContext(ctx)
}

// respondError writes an APIError as an ErrorResponse
func respondError(c *fiber.Ctx, apiErr *models.APIError) error {
	return c.Status(apiErr.Status).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Path:    c.Path(),
			Details: apiErr.Details,
		},
	})
}

// badRequest responds with INVALID_REQUEST
func badRequest(c *fiber.Ctx, message string) error {
	return respondError(c, models.NewAPIError(fiber.StatusBadRequest, models.CodeInvalidRequest, message))
}

// codecError maps codec failures onto API error codes
func codecError(err error, index int) *models.APIError {
	code := models.CodeInvalidRequest
	switch {
	case errors.Is(err, varint.ErrIncomplete):
		code = models.CodeIncompleteVarint
	case errors.Is(err, varint.ErrOverflow):
		code = models.CodeVarintOverflow
	case errors.Is(err, varint.ErrInvalidArgument):
		code = models.CodeInvalidArgument
	case errors.Is(err, compression.ErrBlockTooLarge):
		code = models.CodeBlockTooLarge
	case errors.Is(err, compression.ErrLengthMismatch):
		code = models.CodeCorruptBlock
	}

	details := map[string]interface{}{"index": index}
	var decErr *varint.DecodeError
	if errors.As(err, &decErr) {
		details["offset"] = decErr.Offset
	}

	return models.NewAPIError(fiber.StatusBadRequest, code, err.Error()).WithDetails(details)
}
