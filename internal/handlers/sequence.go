package handlers

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/soltixdb/varint/internal/compression"
	"github.com/soltixdb/varint/internal/models"
)

// EncodeSequence handles POST /v1/sequence/encode
func (h *Handler) EncodeSequence(c *fiber.Ctx) error {
	var req models.SequenceEncodeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}
	if err := models.ValidateBatch(len(req.Values), h.maxBatch); err != nil {
		return badRequest(c, err.Error())
	}

	algo := h.defaultCompression
	if req.Compression != "" {
		var err error
		if algo, err = compression.ParseAlgorithm(req.Compression); err != nil {
			return badRequest(c, err.Error())
		}
	}

	var raw []byte
	if req.Delta {
		values := make([]int64, len(req.Values))
		for i, s := range req.Values {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return badRequest(c, fmt.Sprintf("values[%d]: %v", i, err))
			}
			values[i] = v
		}
		raw = h.delta.Encode(values)
	} else {
		values := make([]uint64, len(req.Values))
		for i, s := range req.Values {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return badRequest(c, fmt.Sprintf("values[%d]: %v", i, err))
			}
			values[i] = v
		}
		raw = h.uintSeq.Encode(values)
	}

	block, err := compression.Pack(algo, raw)
	if err != nil {
		h.logger.Error("Failed to pack sequence", "error", err, "compression", algo.String())
		return err
	}

	return c.JSON(models.SequenceEncodeResponse{
		Block:       hex.EncodeToString(block),
		Size:        len(block),
		RawSize:     len(raw),
		Compression: algo.String(),
	})
}

// DecodeSequence handles POST /v1/sequence/decode
func (h *Handler) DecodeSequence(c *fiber.Ctx) error {
	var req models.SequenceDecodeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}

	block, err := hex.DecodeString(req.Block)
	if err != nil {
		return badRequest(c, "block: "+err.Error())
	}

	raw, err := compression.Unpack(block, compression.MaxEncodedSize(h.maxBatch))
	if err != nil {
		requestLogger(c).Debug("Sequence block rejected", "block_bytes", len(block), "error", err)
		return respondError(c, codecError(err, 0))
	}

	var values []string
	if req.Delta {
		decoded, err := h.delta.Decode(raw)
		if err != nil {
			return respondError(c, codecError(err, 0))
		}
		values = make([]string, len(decoded))
		for i, v := range decoded {
			values[i] = strconv.FormatInt(v, 10)
		}
	} else {
		decoded, err := h.uintSeq.Decode(raw)
		if err != nil {
			return respondError(c, codecError(err, 0))
		}
		values = make([]string, len(decoded))
		for i, v := range decoded {
			values[i] = strconv.FormatUint(v, 10)
		}
	}

	if len(values) > h.maxBatch {
		return badRequest(c, fmt.Sprintf("block holds %d values, limit is %d", len(values), h.maxBatch))
	}

	return c.JSON(models.SequenceDecodeResponse{
		Values: values,
		Count:  len(values),
	})
}
