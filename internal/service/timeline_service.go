package service

import (
	"arctic-chronicler/internal/catalog"
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
)

// TimelineService serves the year-by-year Arctic statistics.
type TimelineService interface {
	Overview() *dto.TimelineResponse
	Snapshot(year int, layers []string) (*dto.SnapshotResponse, error)
}

type timelineService struct {
	catalog *catalog.Catalog
}

func NewTimelineService(cat *catalog.Catalog) TimelineService {
	return &timelineService{catalog: cat}
}

func (s *timelineService) Overview() *dto.TimelineResponse {
	layers := s.catalog.Layers()
	resp := &dto.TimelineResponse{
		Years:       s.catalog.Years(),
		DefaultYear: s.catalog.DefaultYear(),
		Layers:      make([]dto.LayerResponse, 0, len(layers)),
	}
	for _, l := range layers {
		resp.Layers = append(resp.Layers, dto.LayerResponse{ID: l.ID, Name: l.Name, Icon: l.Icon})
	}
	return resp
}

// Snapshot restricts a year's statistics to the active layers. No layers means ice only.
func (s *timelineService) Snapshot(year int, layers []string) (*dto.SnapshotResponse, error) {
	stats, ok := s.catalog.YearStats(year)
	if !ok {
		return nil, domain.NewInvalidYearError(year)
	}
	if len(layers) == 0 {
		layers = []string{catalog.LayerIce}
	}

	values := make(map[string]float64, len(layers))
	for _, layer := range layers {
		v, ok := stats.Value(layer)
		if !ok || !s.catalog.HasLayer(layer) {
			return nil, domain.NewInvalidInputError("unknown timeline layer: "+layer).WithContext("layer", layer)
		}
		values[layer] = v
	}

	active := make([]string, len(layers))
	copy(active, layers)
	return &dto.SnapshotResponse{Year: year, Layers: active, Values: values}, nil
}
