package dto

type LayerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// TimelineResponse lists the years and layers available on the timeline
type TimelineResponse struct {
	Years       []int           `json:"years"`
	DefaultYear int             `json:"default_year"`
	Layers      []LayerResponse `json:"layers"`
}

// SnapshotResponse holds the values of the active layers for one year
// @Description Timeline snapshot
type SnapshotResponse struct {
	Year   int                `json:"year"`
	Layers []string           `json:"layers"`
	Values map[string]float64 `json:"values"`
}
