package report

import (
	"fmt"
	"io"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderTemperatureChart renders the series as a PNG line chart of
// temperature over forecast dates. The series must hold at least two
// points for a line to exist.
func RenderTemperatureChart(w io.Writer, points []Point, unitLabel string) error {
	if len(points) < 2 {
		return fmt.Errorf("need at least two forecast points to chart, got %d", len(points))
	}

	xs := make([]time.Time, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Date
		ys[i] = p.Temperature
	}

	graph := chart.Chart{
		Title: "Temperature forecast",
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: fmt.Sprintf("Temperature (%s)", unitLabel),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "temperature",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: drawing.ColorRed,
					StrokeWidth: 2,
					DotColor:    drawing.ColorRed,
					DotWidth:    3,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(chart.PNG, w)
}
