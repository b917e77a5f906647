package weather

import "time"

// DefaultForecastDates bounds how many distinct future dates a forecast
// window may hold.
const DefaultForecastDates = 3

// The two fixed sample times retained from the forecast feed. Everything
// else is deliberately dropped; two readings per day are enough for the
// report and the chart.
const (
	sampleTimeNoon    = "12:00"
	sampleTimeEvening = "21:00"
)

// AggregateForecast reduces a chronologically ordered raw forecast feed
// to a bounded per-date window relative to referenceDate.
//
// Items are admitted when their time-of-day is exactly 12:00 or 21:00 and
// their date is strictly after referenceDate. Once maxDates distinct
// dates have been admitted no new date opens, but items for already
// admitted dates keep appending. A feed with fewer qualifying dates
// yields a smaller window; an empty feed yields an empty window.
func AggregateForecast(items []ForecastItem, referenceDate time.Time, maxDates int) ForecastWindow {
	if maxDates <= 0 {
		maxDates = DefaultForecastDates
	}

	window := ForecastWindow{Days: make(map[string][]ForecastSample)}
	refDay := referenceDate.Format(DateLayout)

	for _, item := range items {
		ts, err := time.Parse(TimestampLayout, item.Timestamp)
		if err != nil {
			continue
		}

		sampleTime := ts.Format("15:04")
		if sampleTime != sampleTimeNoon && sampleTime != sampleTimeEvening {
			continue
		}

		// ISO dates compare correctly as strings.
		day := ts.Format(DateLayout)
		if day <= refDay {
			continue
		}

		if _, admitted := window.Days[day]; !admitted {
			if len(window.Dates) >= maxDates {
				continue
			}
			window.Dates = append(window.Dates, day)
		}

		window.Days[day] = append(window.Days[day], ForecastSample{
			Time:        sampleTime,
			Temperature: item.Temperature,
			Description: item.Description,
			Icon:        item.Icon,
		})
	}

	return window
}
