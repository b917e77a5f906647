package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/ametelkin/weathercast/internal/weather"
)

// OpenWeatherProvider implements the weather.Provider interface for
// OpenWeatherMap's current-conditions and 5-day forecast endpoints.
type OpenWeatherProvider struct {
	name        string
	apiKey      string
	currentURL  string
	forecastURL string
	httpCfg     HTTPClientConfig
	circuit     *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, apiKey string) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &OpenWeatherProvider{
		name:        "openweathermap",
		apiKey:      apiKey,
		currentURL:  "https://api.openweathermap.org/data/2.5/weather",
		forecastURL: "https://api.openweathermap.org/data/2.5/forecast",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

func (p *OpenWeatherProvider) FetchCurrent(ctx context.Context, location string, units weather.UnitSystem) (weather.CurrentObservation, error) {
	resp, err := p.get(ctx, p.currentURL, location, units)
	if err != nil {
		return weather.CurrentObservation{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentObservation{}, fmt.Errorf("decode current conditions: %w", err)
	}

	return weather.CurrentObservation{
		Temperature: payload.Main.Temp,
		WindSpeed:   payload.Wind.Speed,
		Humidity:    payload.Main.Humidity,
	}, nil
}

func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, location string, units weather.UnitSystem) ([]weather.ForecastItem, error) {
	resp, err := p.get(ctx, p.forecastURL, location, units)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		List []struct {
			DtTxt string `json:"dt_txt"`
			Main  struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
		} `json:"list"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode forecast list: %w", err)
	}

	items := make([]weather.ForecastItem, 0, len(payload.List))
	for _, entry := range payload.List {
		item := weather.ForecastItem{
			Timestamp:   entry.DtTxt,
			Temperature: entry.Main.Temp,
		}
		if len(entry.Weather) > 0 {
			item.Description = entry.Weather[0].Description
			item.Icon = entry.Weather[0].Icon
		}
		items = append(items, item)
	}

	return items, nil
}

func (p *OpenWeatherProvider) get(ctx context.Context, baseURL, location string, units weather.UnitSystem) (*http.Response, error) {
	if p.apiKey == "" {
		return nil, fmt.Errorf("openweather api key is not configured")
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("q", location)
		values.Set("appid", p.apiKey)
		values.Set("units", string(units))

		u := fmt.Sprintf("%s?%s", baseURL, values.Encode())
		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		return req, nil
	}

	return doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
}
