package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Service-layer sentinel errors. Controllers translate these into HTTP
// codes via FromServiceError so the services stay transport-free.
var (
	// ErrNotFound: unknown student/educator/report. Distinct from an
	// empty-but-valid result (e.g. a student with no attendance yet).
	ErrNotFound = errors.New("record not found")

	// ErrNothingToAggregate: a quarter with zero monthly score records.
	// Surfaced to the caller, never retried automatically.
	ErrNothingToAggregate = errors.New("no records to aggregate for this period")

	// ErrRender: chart/document generation failed. The request fails;
	// no partial document is ever returned.
	ErrRender = errors.New("report document generation failed")
)

// FromServiceError maps the error taxonomy onto the JSON envelope.
func FromServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return Error(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrNothingToAggregate):
		return Error(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrRender):
		return Error(c, fiber.StatusInternalServerError, err.Error())
	default:
		return FromFiberError(c, err)
	}
}
