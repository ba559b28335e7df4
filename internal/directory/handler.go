package directory

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/api/directory", h.getView)
	app.Get("/api/directory/options", h.getOptions)
	app.Post("/api/directory/actions", h.applyAction)
}

func (h *Handler) RegisterProtectedRoutes(app fiber.Router) {
	app.Post("/api/directory/refresh", h.refresh)
}

// searchQuery is the query-string form of a filter state:
// ?q=text&degree=MD&degree=PhD&specialty=Anxiety&minYears=5&expertOnly=true
type searchQuery struct {
	Text        string
	Degrees     []string
	Specialties []string
	MinYears    *int `validate:"omitempty,gte=0"`
	ExpertOnly  bool
}

type actionRequest struct {
	State  FilterState `json:"state"`
	Action Action      `json:"action"`
}

func (h *Handler) getView(c *fiber.Ctx) error {
	q, err := parseSearchQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": ErrInvalidMinYears.Error()})
	}
	return c.JSON(h.service.View(q.state()))
}

func (h *Handler) getOptions(c *fiber.Ctx) error {
	return c.JSON(h.service.Options())
}

// applyAction runs one controller transition on the state sent by the client and
// returns the view for the resulting state.
func (h *Handler) applyAction(c *fiber.Ctx) error {
	req := new(actionRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	next, err := Apply(req.State, req.Action)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.service.View(next))
}

func (h *Handler) refresh(c *fiber.Ctx) error {
	store, err := h.service.Refresh(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"total": store.Len(), "generation": store.Generation()})
}

func parseSearchQuery(c *fiber.Ctx) (searchQuery, error) {
	args := c.Context().QueryArgs()
	q := searchQuery{Text: string(args.Peek("q"))}
	for _, v := range args.PeekMulti("degree") {
		q.Degrees = append(q.Degrees, string(v))
	}
	for _, v := range args.PeekMulti("specialty") {
		q.Specialties = append(q.Specialties, string(v))
	}
	if raw := strings.TrimSpace(string(args.Peek("minYears"))); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, ErrInvalidMinYears
		}
		q.MinYears = &n
	}
	if raw := strings.TrimSpace(string(args.Peek("expertOnly"))); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return q, ErrInvalidExpertOnly
		}
		q.ExpertOnly = on
	}
	return q, nil
}

// state builds the filter state through the controller transitions, so a query
// string and a sequence of UI actions produce identical states.
func (q searchQuery) state() FilterState {
	s := SetQuickText(Reset(), q.Text)
	s = SetExpertOnly(s, q.ExpertOnly)
	for _, d := range q.Degrees {
		if d != "" && !s.hasDegree(d) {
			s = ToggleDegree(s, d)
		}
	}
	for _, sp := range q.Specialties {
		if sp != "" && !s.hasSpecialty(sp) {
			s = ToggleSpecialty(s, sp)
		}
	}
	return SetMinYears(s, q.MinYears)
}
