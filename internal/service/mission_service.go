package service

import (
	"context"
	"time"

	"arctic-chronicler/internal/catalog"
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
	"arctic-chronicler/internal/logger"
	"arctic-chronicler/internal/metrics"
	"arctic-chronicler/internal/util"
	"arctic-chronicler/internal/validation"

	"go.uber.org/zap"
)

// MissionService exposes the data missions of an expedition's role and checks answers.
type MissionService interface {
	List(ctx context.Context, expeditionID string) (*dto.MissionListResponse, error)
	Get(ctx context.Context, expeditionID, missionID string) (*dto.MissionDetailResponse, error)
	Check(ctx context.Context, expeditionID, missionID string, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error)
}

// missionContent resolves the per-mission data behind a catalog mission.
type missionContent interface {
	Dataset(missionID string) (domain.MissionDataset, bool)
	AnswerSpec(missionID string) (domain.MissionAnswerSpec, bool)
}

type missionService struct {
	catalog   *catalog.Catalog
	content   missionContent
	store     domain.ExpeditionStore
	attempts  domain.MissionAttemptRepository
	validator *validation.Validator
	metrics   *metrics.Recorder
	now       func() time.Time
}

func NewMissionService(
	cat *catalog.Catalog,
	store domain.ExpeditionStore,
	attempts domain.MissionAttemptRepository,
	recorder *metrics.Recorder,
) MissionService {
	return &missionService{
		catalog:   cat,
		content:   cat,
		store:     store,
		attempts:  attempts,
		validator: validation.NewValidator(),
		metrics:   recorder,
		now:       time.Now,
	}
}

func (s *missionService) List(ctx context.Context, expeditionID string) (*dto.MissionListResponse, error) {
	exp, err := s.store.Load(ctx, expeditionID)
	if err != nil {
		return nil, err
	}

	missions := s.catalog.MissionsForRole(exp.Character.Role)
	resp := &dto.MissionListResponse{
		Role:     string(exp.Character.Role),
		Missions: make([]dto.MissionSummaryResponse, 0, len(missions)),
	}
	for _, m := range missions {
		resp.Missions = append(resp.Missions, dto.MissionSummaryResponse{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Completed:   exp.HasCompleted(m.ID),
		})
	}
	return resp, nil
}

func (s *missionService) Get(ctx context.Context, expeditionID, missionID string) (*dto.MissionDetailResponse, error) {
	if errs := s.validator.ValidateMissionID(missionID); len(errs) > 0 {
		return nil, errs
	}
	exp, err := s.store.Load(ctx, expeditionID)
	if err != nil {
		return nil, err
	}
	m, err := missionForExpedition(s.catalog, exp, missionID)
	if err != nil {
		return nil, err
	}

	ds, ok := s.content.Dataset(missionID)
	if !ok {
		return nil, domain.NewMissionNotFoundError(missionID)
	}
	spec, ok := s.content.AnswerSpec(missionID)
	if !ok {
		return nil, domain.NewMissionNotFoundError(missionID)
	}

	resp := &dto.MissionDetailResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Question:    ds.Question,
		Unit:        spec.Unit,
		ChartType:   string(ds.ChartType),
		Data:        make([]dto.DataPointResponse, 0, len(ds.Points)),
		Completed:   exp.HasCompleted(m.ID),
	}
	for _, p := range ds.Points {
		resp.Data = append(resp.Data, dto.DataPointResponse{Year: p.Year, Value: p.Value, Label: p.Label})
	}
	return resp, nil
}

// Check evaluates a numeric answer. Failing to persist the attempt does not
// change the verdict.
func (s *missionService) Check(ctx context.Context, expeditionID, missionID string, req *dto.CheckAnswerRequest) (*dto.CheckAnswerResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := s.validator.ValidateMissionID(missionID); len(errs) > 0 {
		return nil, errs
	}
	if errs := s.validator.ValidateAnswer(req.Answer); len(errs) > 0 {
		return nil, errs
	}

	exp, err := s.store.Load(ctx, expeditionID)
	if err != nil {
		return nil, err
	}
	if _, err := missionForExpedition(s.catalog, exp, missionID); err != nil {
		return nil, err
	}

	spec, ok := s.content.AnswerSpec(missionID)
	if !ok {
		return nil, domain.NewMissionNotFoundError(missionID)
	}
	spec.ToleranceRatio = s.catalog.Tolerances().Lookup(missionID)

	verdict := domain.Judge(domain.QuizSubmission{MissionID: missionID, UserAnswer: req.Answer}, spec)
	s.recordAttempt(ctx, exp.ID, verdict)

	return &dto.CheckAnswerResponse{
		MissionID:       missionID,
		Correct:         verdict.Correct,
		UserAnswer:      finiteOrNil(verdict.UserAnswer),
		ReferenceAnswer: spec.ReferenceAnswer,
		Unit:            spec.Unit,
		ToleranceRatio:  spec.ToleranceRatio,
	}, nil
}

func (s *missionService) recordAttempt(ctx context.Context, expeditionID string, v domain.QuizVerdict) {
	label := metrics.VerdictIncorrect
	switch {
	case !v.Parsed():
		label = metrics.VerdictUnparsable
	case v.Correct:
		label = metrics.VerdictCorrect
	}
	s.metrics.RecordMissionVerdict(v.MissionID, label)

	attempt := &domain.MissionAttempt{
		ID:             util.NewULID(),
		ExpeditionID:   expeditionID,
		MissionID:      v.MissionID,
		RawAnswer:      v.RawAnswer,
		ParsedAnswer:   finiteOrNil(v.UserAnswer),
		IsCorrect:      v.Correct,
		ToleranceRatio: v.Answer.ToleranceRatio,
		AttemptedAt:    s.now().UTC(),
	}
	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		logger.Get().Error("Failed to record mission attempt",
			zap.String("expedition_id", expeditionID),
			zap.String("mission_id", v.MissionID),
			zap.Error(err),
		)
	}
}
