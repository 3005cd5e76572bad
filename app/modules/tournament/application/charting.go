package tournamentservice

import (
	"bytes"

	tournamentdomain "github.com/Black-And-White-Club/swiss-tournament/app/modules/tournament/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colours used by rendered charts.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	Leader     drawing.Color
	TextColor  drawing.Color
}

// DefaultChartPalette is a dark background with green bars and gold leaders.
func DefaultChartPalette() ChartPalette {
	return ChartPalette{
		Background: drawing.ColorFromHex("14201a"),
		Bar:        drawing.ColorFromHex("3f7d58"),
		Leader:     drawing.ColorFromHex("d4a73c"),
		TextColor:  drawing.ColorFromHex("e8ede9"),
	}
}

const (
	barWidth   = 40
	barSpacing = 20
)

// GenerateStandingsChart produces a PNG bar chart of wins per player in
// standings order. Players tied for the most wins are drawn in the leader colour.
func GenerateStandingsChart(standings []tournamentdomain.Standing, palette ChartPalette) ([]byte, error) {
	if len(standings) == 0 {
		return renderNoDataPlaceholder(palette)
	}

	topWins := standings[0].Wins
	for _, st := range standings {
		topWins = max(topWins, st.Wins)
	}

	bars := make([]chart.Value, len(standings))
	for i, st := range standings {
		colour := palette.Bar
		if st.Wins == topWins && topWins > 0 {
			colour = palette.Leader
		}
		bars[i] = chart.Value{
			Label: st.Name,
			Value: float64(st.Wins),
			Style: chart.Style{
				FillColor:   colour,
				StrokeColor: colour,
			},
		}
	}

	graph := chart.BarChart{
		Title:      "Wins",
		TitleStyle: chart.Style{FontColor: palette.TextColor},
		Width:      max(400, len(bars)*(barWidth+barSpacing)+120),
		Height:     400,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			// A zero-height range cannot be drawn, so the axis always spans at least one win.
			Range: &chart.ContinuousRange{Min: 0, Max: float64(max(topWins, 1))},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// renderNoDataPlaceholder draws a message on an empty canvas. chart.Chart
// refuses to render without a series, so this goes through the renderer directly.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
		msg    = "No players registered"
	)

	r, err := chart.PNG(width, height)
	if err != nil {
		return nil, err
	}

	r.SetFillColor(palette.Background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetFont(font)
	r.SetFontColor(palette.TextColor)
	r.SetFontSize(12.0)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)

	buffer := bytes.NewBuffer([]byte{})
	if err := r.Save(buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
