package api

import (
	"bytes"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// ZstdRequestMiddleware transparently decompresses zstd-encoded request
// bodies so large score arrays can be shipped compressed. Response
// compression is left to fiber's compress middleware.
func ZstdRequestMiddleware(whitelistedRoutes []string) fiber.Handler {
	if whitelistedRoutes == nil {
		whitelistedRoutes = []string{"/health"}
	}

	return func(c *fiber.Ctx) error {
		path := c.Path()
		for _, route := range whitelistedRoutes {
			if path == route {
				return c.Next()
			}
		}

		contentEncoding := c.Get("content-encoding")
		if strings.ToLower(contentEncoding) == "zstd" {
			body := c.Body()
			if len(body) > 0 {
				decoder, err := zstd.NewReader(bytes.NewReader(body))
				if err != nil {
					log.Err(err).Msg("Failed to create zstd decoder")
					return c.Status(fiber.StatusBadRequest).JSON(
						Response[struct{}]{Success: false, Error: "failed to decompress zstd body"})
				}
				defer decoder.Close()

				decompressed, err := io.ReadAll(decoder)
				if err != nil {
					log.Err(err).Msg("Failed to decompress request")
					return c.Status(fiber.StatusBadRequest).JSON(
						Response[struct{}]{Success: false, Error: "failed to decompress zstd body"})
				}

				c.Request().SetBody(decompressed)
				log.Debug().
					Int("compressed_size", len(body)).
					Int("decompressed_size", len(decompressed)).
					Msg("Request body decompressed")
			}
		}

		return c.Next()
	}
}
