package domain

type Kind string

const (
	KindBar       Kind = "bar"
	KindLine      Kind = "line"
	KindHistogram Kind = "histogram"
)

type Descriptor struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind"`
}

// Point is one labelled value of a plotted series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Chart is the computed dataset of one chart.
//
// Records holds the typed result rows (one of the record types in this
// package); Series is the same data projected for plotting.
type Chart struct {
	Descriptor

	Records any      `json:"records"`
	Series  []Series `json:"series"`

	Rows    int `json:"rows"`    // rows in the snapshot
	Skipped int `json:"skipped"` // rows excluded for lacking a required field
}

// Empty reports whether the chart has nothing to plot.
func (c *Chart) Empty() bool {
	for _, s := range c.Series {
		for _, p := range s.Points {
			if p.Value != 0 {
				return false
			}
		}
	}
	return true
}
