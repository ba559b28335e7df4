package advocate

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/advocates", h.getAdvocates)
	app.Get("/api/advocates/:id", h.getAdvocate)
}

func (h *Handler) RegisterProtectedRoutes(app fiber.Router) {
	app.Post("/api/seed", h.seed)
}

func (h *Handler) getAdvocates(c *fiber.Ctx) error {
	advocates, err := h.service.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"data": ToResponseList(advocates)})
}

func (h *Handler) getAdvocate(c *fiber.Ctx) error {
	a, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Advocate not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(ToResponse(a))
}

// seed inserts the request body (a JSON array of advocates) or, for an empty body,
// the bundled sample data.
func (h *Handler) seed(c *fiber.Ctx) error {
	var advocates []Advocate
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&advocates); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
	}

	created, err := h.service.Seed(c.UserContext(), advocates)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.Is(err, ErrSeedDisabled):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "seed not allowed"})
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ve.Fields})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"advocates": ToResponseList(created)})
}
