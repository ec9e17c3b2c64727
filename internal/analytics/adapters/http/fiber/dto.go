package fiber

import "sales-analytics-service/internal/analytics/core/domain"

type ChartDescriptorResponse struct {
	ID    int    `json:"id" example:"2"`
	Name  string `json:"name" example:"sales-by-group"`
	Title string `json:"title" example:"Sales by item group"`
	Kind  string `json:"kind" example:"bar"`
}

type CatalogResponse struct {
	Charts []ChartDescriptorResponse `json:"charts"`
}

type PointResponse struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type SeriesResponse struct {
	Name   string          `json:"name"`
	Points []PointResponse `json:"points"`
}

// ChartResponse is one computed chart.
// @Description Records holds chart-specific rows; Series is the plotted projection.
type ChartResponse struct {
	ChartDescriptorResponse
	Rows    int              `json:"rows"`
	Skipped int              `json:"skipped"`
	Records any              `json:"records" swaggertype:"array,object"`
	Series  []SeriesResponse `json:"series"`
}

type DashboardResponse struct {
	Charts []ChartResponse `json:"charts"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid bin width"`
}

func descriptorResponse(d domain.Descriptor) ChartDescriptorResponse {
	return ChartDescriptorResponse{ID: d.ID, Name: d.Name, Title: d.Title, Kind: string(d.Kind)}
}

func chartResponse(c *domain.Chart) ChartResponse {
	resp := ChartResponse{
		ChartDescriptorResponse: descriptorResponse(c.Descriptor),
		Rows:                    c.Rows,
		Skipped:                 c.Skipped,
		Records:                 c.Records,
		Series:                  make([]SeriesResponse, 0, len(c.Series)),
	}
	for _, s := range c.Series {
		sr := SeriesResponse{Name: s.Name, Points: make([]PointResponse, 0, len(s.Points))}
		for _, p := range s.Points {
			sr.Points = append(sr.Points, PointResponse{Label: p.Label, Value: p.Value})
		}
		resp.Series = append(resp.Series, sr)
	}
	return resp
}
