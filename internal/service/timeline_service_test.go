package service

import (
	"testing"

	"arctic-chronicler/internal/catalog"
	"arctic-chronicler/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineService_Overview(t *testing.T) {
	svc := NewTimelineService(loadCatalog(t))

	resp := svc.Overview()
	assert.Equal(t, 2025, resp.DefaultYear)
	assert.Len(t, resp.Years, 6)
	assert.Len(t, resp.Layers, 4)
}

func TestTimelineService_Snapshot(t *testing.T) {
	cat := loadCatalog(t)
	svc := NewTimelineService(cat)

	resp, err := svc.Snapshot(2050, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{catalog.LayerIce}, resp.Layers)
	assert.Len(t, resp.Values, 1)

	stats, _ := cat.YearStats(2050)
	resp, err = svc.Snapshot(2050, []string{catalog.LayerAnimals, catalog.LayerCO2})
	require.NoError(t, err)
	assert.Equal(t, stats.Bears, resp.Values[catalog.LayerAnimals])
	assert.Equal(t, stats.CO2, resp.Values[catalog.LayerCO2])

	_, err = svc.Snapshot(1999, nil)
	requireCode(t, err, domain.CodeInvalidYear)

	_, err = svc.Snapshot(2025, []string{"wind"})
	requireCode(t, err, domain.CodeInvalidInput)
}

func TestCatalogService(t *testing.T) {
	cat := loadCatalog(t)
	svc := NewCatalogService(cat)

	roles := svc.Roles()
	require.Len(t, roles, 4)
	assert.Equal(t, "climatologist", roles[0].ID)
	assert.Equal(t, cat.Avatars(), svc.Avatars().Avatars)
}
