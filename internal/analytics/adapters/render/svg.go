// Package render draws computed charts as SVG.
package render

import (
	"errors"
	"io"
	"slices"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sales-analytics-service/internal/analytics/core/domain"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 512

	MinSize = 200
	MaxSize = 4096
)

var ErrInvalidSize = errors.New("invalid chart size")

// Palette is the dashboard series palette.
var Palette = []drawing.Color{
	drawing.ColorFromHex("1ABC9C"),
	drawing.ColorFromHex("34495E"),
	drawing.ColorFromHex("E74C3C"),
	drawing.ColorFromHex("F1C40F"),
	drawing.ColorFromHex("7F8C8D"),
	drawing.ColorFromHex("5DADE2"),
	drawing.ColorFromHex("E67E22"),
	drawing.ColorFromHex("9B59B6"),
}

// Context carries the per-request rendering settings.
type Context struct {
	Width   int
	Height  int
	Palette []drawing.Color
	Printer *message.Printer
}

func DefaultContext() Context {
	return Context{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Palette: Palette,
		Printer: message.NewPrinter(language.Vietnamese),
	}
}

// Validate checks the image size bounds.
func (rc Context) Validate() error {
	if rc.Width < MinSize || rc.Width > MaxSize || rc.Height < MinSize || rc.Height > MaxSize {
		return ErrInvalidSize
	}
	return nil
}

func (rc Context) color(i int) drawing.Color {
	p := rc.Palette
	if len(p) == 0 {
		p = Palette
	}
	return p[i%len(p)]
}

func (rc Context) format(v any) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	if rc.Printer == nil {
		return message.NewPrinter(language.Vietnamese).Sprintf("%.0f", f)
	}
	return rc.Printer.Sprintf("%.0f", f)
}

// SVG writes c to w. Bar and histogram charts plot their first series;
// line charts plot every series over the union of their labels.
func SVG(w io.Writer, c *domain.Chart, rc Context) error {
	if err := rc.Validate(); err != nil {
		return err
	}
	if c.Empty() {
		return noData(w, c.Title, rc)
	}

	if c.Kind == domain.KindLine && len(labels(c.Series)) > 1 {
		return lines(w, c, rc)
	}
	return bars(w, c, rc)
}

func bars(w io.Writer, c *domain.Chart, rc Context) error {
	points := c.Series[0].Points
	if len(points) == 0 {
		return noData(w, c.Title, rc)
	}

	values := make([]chart.Value, len(points))
	var top float64
	for i, p := range points {
		values[i] = chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: rc.color(0), StrokeColor: rc.color(0)},
		}
		top = max(top, p.Value)
	}

	spacing := 4
	width := (rc.Width-120)/len(points) - spacing
	width = max(width, 2)

	graph := chart.BarChart{
		Title:      c.Title,
		Width:      rc.Width,
		Height:     rc.Height,
		BarWidth:   width,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		YAxis: chart.YAxis{
			Range:          yRange(top),
			ValueFormatter: rc.format,
		},
		Bars: values,
	}
	return graph.Render(chart.SVG, w)
}

func lines(w io.Writer, c *domain.Chart, rc Context) error {
	axis := labels(c.Series)
	index := make(map[string]int, len(axis))
	ticks := make([]chart.Tick, len(axis))
	for i, l := range axis {
		index[l] = i
		ticks[i] = chart.Tick{Value: float64(i), Label: l}
	}

	var top float64
	series := make([]chart.Series, 0, len(c.Series))
	for i, s := range c.Series {
		xs := make([]float64, 0, len(s.Points))
		ys := make([]float64, 0, len(s.Points))
		for _, p := range s.Points {
			xs = append(xs, float64(index[p.Label]))
			ys = append(ys, p.Value)
			top = max(top, p.Value)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: rc.color(i),
				StrokeWidth: 2,
				DotColor:    rc.color(i),
				DotWidth:    3,
			},
		})
	}

	graph := chart.Chart{
		Title:  c.Title,
		Width:  rc.Width,
		Height: rc.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 160, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{
			Range:          yRange(top),
			ValueFormatter: rc.format,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	return graph.Render(chart.SVG, w)
}

// labels returns the sorted union of point labels across series.
func labels(series []domain.Series) []string {
	seen := map[string]struct{}{}
	for _, s := range series {
		for _, p := range s.Points {
			seen[p.Label] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// yRange is never zero; go-chart rejects a zero y delta.
func yRange(top float64) *chart.ContinuousRange {
	if top <= 0 {
		top = 1
	}
	return &chart.ContinuousRange{Min: 0, Max: top * 1.1}
}

func noData(w io.Writer, title string, rc Context) error {
	r, err := chart.SVG(rc.Width, rc.Height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)
	r.SetFontColor(rc.color(4))

	r.SetFontSize(16)
	tb := r.MeasureText(title)
	r.Text(title, (rc.Width-tb.Width())/2, 40)

	r.SetFontSize(14)
	msg := "No data"
	mb := r.MeasureText(msg)
	r.Text(msg, (rc.Width-mb.Width())/2, rc.Height/2)

	return r.Save(w)
}
