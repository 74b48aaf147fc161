package service

import (
	"arctic-chronicler/internal/catalog"
	"arctic-chronicler/internal/dto"
)

// CatalogService exposes the character creation options.
type CatalogService interface {
	Roles() []dto.RoleResponse
	Avatars() *dto.AvatarsResponse
}

type catalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) CatalogService {
	return &catalogService{catalog: cat}
}

func (s *catalogService) Roles() []dto.RoleResponse {
	roles := s.catalog.Roles()
	out := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleResponse{
			ID:          string(r.ID),
			Name:        r.Name,
			Description: r.Description,
			Icon:        r.Icon,
		})
	}
	return out
}

func (s *catalogService) Avatars() *dto.AvatarsResponse {
	return &dto.AvatarsResponse{Avatars: s.catalog.Avatars()}
}
