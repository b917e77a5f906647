package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ametelkin/weathercast/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. The
// defaultUnits apply when a request carries no units token.
func RegisterRoutes(app *fiber.App, service *weather.Service, defaultUnits weather.UnitSystem) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		q, err := parseWeatherQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		res := service.GetConditions(c.Context(), q.Location, q.units(defaultUnits))
		if !res.OK() {
			return fiber.NewError(fiber.StatusBadGateway, res.Err.Error())
		}

		return c.JSON(fiber.Map{
			"location": res.Location,
			"source":   res.Source,
			"snapshot": res.Snapshot,
		})
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		q, err := parseWeatherQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		units := q.units(defaultUnits)
		window, err := service.GetForecast(c.Context(), q.Location, units)
		if err != nil {
			if errors.Is(err, weather.ErrLocationNotFound) {
				return fiber.NewError(fiber.StatusNotFound, err.Error())
			}
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch forecast")
		}

		return c.JSON(fiber.Map{
			"location": weather.NormalizeLocation(q.Location),
			"units":    units.Label(),
			"forecast": window,
		})
	})
}

// weatherQuery holds query parameters shared by the weather endpoints.
type weatherQuery struct {
	Location string `validate:"required"`
	Units    string
}

func (q weatherQuery) units(def weather.UnitSystem) weather.UnitSystem {
	if q.Units == "" {
		return def
	}
	return weather.UnitSystemFromToken(q.Units)
}

func parseWeatherQuery(c *fiber.Ctx) (weatherQuery, error) {
	var q weatherQuery

	q.Location = weather.NormalizeLocation(c.Query("location"))
	q.Units = c.Query("units")

	if err := validate.Struct(q); err != nil {
		return q, err
	}

	return q, nil
}
