package handlers

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/soltixdb/varint/internal/models"
	"github.com/soltixdb/varint/internal/varint"
)

// Encode handles POST /v1/encode
func (h *Handler) Encode(c *fiber.Ctx) error {
	var req models.EncodeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}
	if err := models.ValidateBatch(len(req.Values), h.maxBatch); err != nil {
		return badRequest(c, err.Error())
	}

	resp := models.EncodeResponse{
		Encoded: make([]string, len(req.Values)),
		Lengths: make([]int, len(req.Values)),
	}

	for i, s := range req.Values {
		var e varint.Encoded
		if req.Signed {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return badRequest(c, fmt.Sprintf("values[%d]: %v", i, err))
			}
			e = varint.EncodeInt64(v)
		} else {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return badRequest(c, fmt.Sprintf("values[%d]: %v", i, err))
			}
			e = varint.EncodeUint64(v)
		}
		resp.Encoded[i] = e.String()
		resp.Lengths[i] = e.Len()
	}

	return c.JSON(resp)
}

// Decode handles POST /v1/decode. Each entry must hold exactly one varint.
func (h *Handler) Decode(c *fiber.Ctx) error {
	var req models.DecodeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}
	if err := models.ValidateBatch(len(req.Encoded), h.maxBatch); err != nil {
		return badRequest(c, err.Error())
	}

	resp := models.DecodeResponse{
		Values:   make([]string, len(req.Encoded)),
		Consumed: make([]int, len(req.Encoded)),
	}

	for i, s := range req.Encoded {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return badRequest(c, fmt.Sprintf("encoded[%d]: %v", i, err))
		}

		var n int
		if req.Signed {
			var v int64
			v, n, err = varint.DecodeInt64(raw)
			resp.Values[i] = strconv.FormatInt(v, 10)
		} else {
			var v uint64
			v, n, err = varint.DecodeUint64(raw)
			resp.Values[i] = strconv.FormatUint(v, 10)
		}
		if err != nil {
			requestLogger(c).Debug("Decode rejected",
				"index", i, "input", s, "error", err)
			return respondError(c, codecError(err, i))
		}
		if n != len(raw) {
			return badRequest(c, fmt.Sprintf("encoded[%d]: %d trailing bytes", i, len(raw)-n))
		}
		resp.Consumed[i] = n
	}

	return c.JSON(resp)
}
