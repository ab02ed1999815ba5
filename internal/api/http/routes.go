package httpapi

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mnallaretnam/weather-dashboard/internal/dashboard"
	"github.com/mnallaretnam/weather-dashboard/internal/session"
	"github.com/mnallaretnam/weather-dashboard/internal/weather"
)

var validate = validator.New()

const sessionCookie = "sid"

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, sessions *session.Store) {
	v1 := app.Group("/api/v1")

	// Raw normalized records, session-independent.
	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		city, err := parseCityQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := service.Search(c.UserContext(), city)
		switch {
		case res.Status == weather.StatusNotFound:
			return fiber.NewError(fiber.StatusNotFound, "city not found")
		case res.Current == nil:
			return fiber.NewError(fiber.StatusServiceUnavailable, "current conditions unavailable")
		}
		return c.JSON(res.Current)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		var req forecastQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := service.Search(c.UserContext(), req.City)
		switch {
		case res.Status == weather.StatusNotFound:
			return fiber.NewError(fiber.StatusNotFound, "city not found")
		case len(res.Forecast) == 0:
			return fiber.NewError(fiber.StatusServiceUnavailable, "forecast unavailable")
		}

		forecast := res.Forecast
		if req.Days < len(forecast) {
			forecast = forecast[:req.Days]
		}
		return c.JSON(fiber.Map{
			"location": res.Location,
			"days":     len(forecast),
			"forecast": forecast,
		})
	})

	// Session-scoped dashboard endpoints. The host UI framework drives
	// these from its button/toggle events.
	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		sid := sessionID(c)
		st := sessions.Get(sid)
		return c.JSON(renderFor(c, service, st))
	})

	v1.Post("/dashboard/search", func(c *fiber.Ctx) error {
		var body searchBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		sid := sessionID(c)
		st := sessions.Get(sid)

		// An empty search clears the dashboard instead of searching.
		city := strings.TrimSpace(body.City)
		if city == "" {
			st = session.Clear(st)
			sessions.Put(sid, st)
			return c.JSON(dashboard.Empty(st))
		}

		st = session.SetCity(st, city)
		sessions.Put(sid, st)

		res := service.Search(c.UserContext(), city)
		return c.JSON(dashboard.Render(st, res))
	})

	v1.Post("/dashboard/unit", func(c *fiber.Ctx) error {
		var body unitBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		sid := sessionID(c)
		st := session.SetUnit(sessions.Get(sid), body.Fahrenheit)
		sessions.Put(sid, st)
		return c.JSON(renderFor(c, service, st))
	})

	v1.Post("/dashboard/theme", func(c *fiber.Ctx) error {
		var body themeBody
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		sid := sessionID(c)
		st := session.SetTheme(sessions.Get(sid), body.Light)
		sessions.Put(sid, st)
		return c.JSON(renderFor(c, service, st))
	})

	v1.Post("/dashboard/clear", func(c *fiber.Ctx) error {
		sid := sessionID(c)
		st := session.Clear(sessions.Get(sid))
		sessions.Put(sid, st)
		return c.JSON(dashboard.Empty(st))
	})
}

// renderFor re-renders the session's dashboard: a fresh fetch for the last
// searched city, or the empty page when nothing was searched yet.
func renderFor(c *fiber.Ctx, service *weather.Service, st session.State) dashboard.Page {
	if st.LastCity == "" {
		return dashboard.Empty(st)
	}
	res := service.Search(c.UserContext(), st.LastCity)
	return dashboard.Render(st, res)
}

// sessionID returns the session cookie, minting one when absent.
func sessionID(c *fiber.Ctx) string {
	if sid := c.Cookies(sessionCookie); sid != "" {
		return sid
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		HTTPOnly: true,
	})
	return sid
}

type searchBody struct {
	City string `json:"city"`
}

type unitBody struct {
	Fahrenheit bool `json:"fahrenheit"`
}

type themeBody struct {
	Light bool `json:"light"`
}

// cityQuery holds the query parameter identifying a place.
type cityQuery struct {
	City string `validate:"required"`
}

func parseCityQuery(c *fiber.Ctx) (string, error) {
	q := cityQuery{City: c.Query("city")}
	if err := validate.Struct(q); err != nil {
		return "", err
	}
	return q.City, nil
}

// forecastQuery holds query parameters for the forecast endpoint.
type forecastQuery struct {
	City string `validate:"required"`
	Days int    `validate:"required,min=1,max=7"`
}

func (f *forecastQuery) bind(c *fiber.Ctx) error {
	f.City = c.Query("city")

	daysStr := c.Query("days")
	if daysStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "days query parameter is required")
	}
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "days must be an integer")
	}
	f.Days = days
	return nil
}
