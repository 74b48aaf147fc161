package service

import (
	"context"
	"errors"
	"testing"

	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
	"arctic-chronicler/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMissionService_List(t *testing.T) {
	cat := loadCatalog(t)
	ctx := context.Background()
	store := new(MockExpeditionStore)
	svc := NewMissionService(cat, store, new(MockMissionAttemptRepository), nil)

	store.On("Load", ctx, "e1").Return(newExpedition("e1", domain.RoleBiologist, "ecosystem"), nil)

	resp, err := svc.List(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "biologist", resp.Role)
	require.Len(t, resp.Missions, 2)

	completed := map[string]bool{}
	for _, m := range resp.Missions {
		completed[m.ID] = m.Completed
	}
	assert.Equal(t, map[string]bool{"bear-migration": false, "ecosystem": true}, completed)
}

func TestMissionService_Get(t *testing.T) {
	cat := loadCatalog(t)
	ctx := context.Background()
	store := new(MockExpeditionStore)
	svc := NewMissionService(cat, store, new(MockMissionAttemptRepository), nil)

	store.On("Load", ctx, "e1").Return(newExpedition("e1", domain.RoleClimatologist), nil)

	resp, err := svc.Get(ctx, "e1", "ice-melt")
	require.NoError(t, err)
	assert.Equal(t, "line", resp.ChartType)
	assert.Equal(t, "млн км²", resp.Unit)
	assert.NotEmpty(t, resp.Question)
	assert.NotEmpty(t, resp.Data)

	_, err = svc.Get(ctx, "e1", "bear-migration")
	requireCode(t, err, domain.CodeMissionNotFound)

	_, err = svc.Get(ctx, "e1", "no-such-mission")
	requireCode(t, err, domain.CodeMissionNotFound)
}

// partialContent hides the dataset or answer of selected missions.
type partialContent struct {
	missionContent
	noDataset map[string]bool
	noAnswer  map[string]bool
}

func (p partialContent) Dataset(id string) (domain.MissionDataset, bool) {
	if p.noDataset[id] {
		return domain.MissionDataset{}, false
	}
	return p.missionContent.Dataset(id)
}

func (p partialContent) AnswerSpec(id string) (domain.MissionAnswerSpec, bool) {
	if p.noAnswer[id] {
		return domain.MissionAnswerSpec{}, false
	}
	return p.missionContent.AnswerSpec(id)
}

func TestMissionService_Get_MissingContent(t *testing.T) {
	cat := loadCatalog(t)
	ctx := context.Background()
	store := new(MockExpeditionStore)
	svc := NewMissionService(cat, store, new(MockMissionAttemptRepository), nil).(*missionService)
	svc.content = partialContent{
		missionContent: cat,
		noDataset:      map[string]bool{"ice-melt": true},
		noAnswer:       map[string]bool{"co2-analysis": true},
	}

	store.On("Load", ctx, "e1").Return(newExpedition("e1", domain.RoleClimatologist), nil)

	resp, err := svc.Get(ctx, "e1", "ice-melt")
	assert.Nil(t, resp)
	requireCode(t, err, domain.CodeMissionNotFound)

	resp, err = svc.Get(ctx, "e1", "co2-analysis")
	assert.Nil(t, resp)
	requireCode(t, err, domain.CodeMissionNotFound)

	_, err = svc.Check(ctx, "e1", "co2-analysis", &dto.CheckAnswerRequest{Answer: "140"})
	requireCode(t, err, domain.CodeMissionNotFound)
}

func TestMissionService_Check(t *testing.T) {
	cat := loadCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		role      domain.Role
		missionID string
		answer    string
		correct   bool
		parsed    bool
		ratio     float64
	}{
		{"ice within band", domain.RoleClimatologist, "ice-melt", "6.5", true, true, 0.15},
		{"ice with comma", domain.RoleClimatologist, "ice-melt", " 7,9 ", true, true, 0.15},
		{"ice outside band", domain.RoleClimatologist, "ice-melt", "8.2", false, true, 0.15},
		{"bear override ratio", domain.RoleBiologist, "bear-migration", "6.6", true, true, 0.20},
		{"unparsable", domain.RoleEngineer, "eco-station", "много", false, false, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockExpeditionStore)
			attempts := new(MockMissionAttemptRepository)
			svc := NewMissionService(cat, store, attempts, nil)

			store.On("Load", ctx, "e1").Return(newExpedition("e1", tt.role), nil)
			var recorded *domain.MissionAttempt
			attempts.On("CreateAttempt", ctx, mock.AnythingOfType("*domain.MissionAttempt")).
				Run(func(args mock.Arguments) { recorded = args.Get(1).(*domain.MissionAttempt) }).
				Return(nil)

			resp, err := svc.Check(ctx, "e1", tt.missionID, &dto.CheckAnswerRequest{Answer: tt.answer})
			require.NoError(t, err)

			assert.Equal(t, tt.correct, resp.Correct)
			assert.InDelta(t, tt.ratio, resp.ToleranceRatio, 1e-9)
			assert.Equal(t, tt.parsed, resp.UserAnswer != nil)

			require.NotNil(t, recorded)
			assert.Equal(t, "e1", recorded.ExpeditionID)
			assert.Equal(t, tt.missionID, recorded.MissionID)
			assert.Equal(t, tt.answer, recorded.RawAnswer)
			assert.Equal(t, tt.correct, recorded.IsCorrect)
			assert.Equal(t, tt.parsed, recorded.ParsedAnswer != nil)
		})
	}
}

func TestMissionService_Check_RecordFailureKeepsVerdict(t *testing.T) {
	cat := loadCatalog(t)
	ctx := context.Background()
	store := new(MockExpeditionStore)
	attempts := new(MockMissionAttemptRepository)

	recorder, err := metrics.NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)
	svc := NewMissionService(cat, store, attempts, recorder)

	store.On("Load", ctx, "e1").Return(newExpedition("e1", domain.RoleClimatologist), nil)
	attempts.On("CreateAttempt", ctx, mock.Anything).Return(errors.New("ORA-12541: no listener"))

	resp, err := svc.Check(ctx, "e1", "co2-analysis", &dto.CheckAnswerRequest{Answer: "140"})
	require.NoError(t, err)
	assert.True(t, resp.Correct)
	assert.Equal(t, 140.0, resp.ReferenceAnswer)
}

func TestMissionService_Check_Rejections(t *testing.T) {
	cat := loadCatalog(t)
	ctx := context.Background()
	store := new(MockExpeditionStore)
	attempts := new(MockMissionAttemptRepository)
	svc := NewMissionService(cat, store, attempts, nil)

	store.On("Load", ctx, "e1").Return(newExpedition("e1", domain.RoleClimatologist), nil)
	store.On("Load", ctx, "gone").Return(nil, domain.NewExpeditionNotFoundError("gone"))

	var verrs domain.ValidationErrors
	_, err := svc.Check(ctx, "e1", "ice-melt", &dto.CheckAnswerRequest{Answer: "   "})
	assert.ErrorAs(t, err, &verrs)

	_, err = svc.Check(ctx, "e1", "ice-melt", nil)
	requireCode(t, err, domain.CodeInvalidInput)

	_, err = svc.Check(ctx, "e1", "renewable", &dto.CheckAnswerRequest{Answer: "150"})
	requireCode(t, err, domain.CodeMissionNotFound)

	_, err = svc.Check(ctx, "gone", "ice-melt", &dto.CheckAnswerRequest{Answer: "7"})
	requireCode(t, err, domain.CodeExpeditionNotFound)

	attempts.AssertNotCalled(t, "CreateAttempt", mock.Anything, mock.Anything)
}
