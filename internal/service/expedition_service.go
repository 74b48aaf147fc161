package service

import (
	"context"
	"strings"
	"time"

	"arctic-chronicler/internal/catalog"
	"arctic-chronicler/internal/domain"
	"arctic-chronicler/internal/dto"
	"arctic-chronicler/internal/logger"
	"arctic-chronicler/internal/metrics"
	"arctic-chronicler/internal/util"
	"arctic-chronicler/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ExpeditionService manages the lifecycle of a player's expedition.
type ExpeditionService interface {
	Create(ctx context.Context, req *dto.CreateExpeditionRequest) (*dto.CreateExpeditionResponse, error)
	Get(ctx context.Context, expeditionID string) (*dto.ExpeditionResponse, error)
	Progress(ctx context.Context, expeditionID string) (*dto.ProgressResponse, error)
	CompleteMission(ctx context.Context, expeditionID, missionID string) (*dto.CompleteMissionResponse, error)
}

type expeditionService struct {
	catalog      *catalog.Catalog
	store        domain.ExpeditionStore
	attempts     domain.MissionAttemptRepository
	tokens       TokenService
	validator    *validation.Validator
	metrics      *metrics.Recorder
	historyLimit int
	now          func() time.Time
}

func NewExpeditionService(
	cat *catalog.Catalog,
	store domain.ExpeditionStore,
	attempts domain.MissionAttemptRepository,
	tokens TokenService,
	recorder *metrics.Recorder,
	historyLimit int,
) ExpeditionService {
	return &expeditionService{
		catalog:      cat,
		store:        store,
		attempts:     attempts,
		tokens:       tokens,
		validator:    validation.NewValidator(),
		metrics:      recorder,
		historyLimit: historyLimit,
		now:          time.Now,
	}
}

func (s *expeditionService) Create(ctx context.Context, req *dto.CreateExpeditionRequest) (*dto.CreateExpeditionResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := s.validator.ValidateCreateExpedition(req.Name, req.Role, req.Avatar); len(errs) > 0 {
		return nil, errs
	}

	role := domain.Role(req.Role)
	if _, ok := s.catalog.Role(role); !ok {
		return nil, domain.NewInvalidRoleError(req.Role)
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = s.catalog.Avatars()[0]
	} else if !s.catalog.IsAvatar(avatar) {
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("avatar", avatar)}
	}

	name := strings.TrimSpace(req.Name)
	now := s.now().UTC()
	exp := &domain.Expedition{
		ID:                util.NewULID(),
		Character:         domain.Character{Name: name, Role: role, Avatar: avatar},
		CompletedMissions: []string{},
		Messages: []domain.ChatMessage{{
			ID:        util.NewULID(),
			Sender:    domain.SenderAI,
			Text:      s.catalog.Greeting(name),
			Timestamp: now,
		}},
		CreatedAt: now,
	}

	if err := s.store.Save(ctx, exp); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(exp.ID)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordExpeditionCreated()
	logger.Get().Info("Expedition created",
		zap.String("expedition_id", exp.ID),
		zap.String("role", string(role)),
	)

	return &dto.CreateExpeditionResponse{
		Expedition: *toExpeditionResponse(s.catalog, exp),
		Token:      token,
		ExpiresAt:  expiresAt,
	}, nil
}

func (s *expeditionService) Get(ctx context.Context, expeditionID string) (*dto.ExpeditionResponse, error) {
	exp, err := s.store.Load(ctx, expeditionID)
	if err != nil {
		return nil, err
	}
	return toExpeditionResponse(s.catalog, exp), nil
}

// Progress loads the expedition state and the attempt history concurrently.
func (s *expeditionService) Progress(ctx context.Context, expeditionID string) (*dto.ProgressResponse, error) {
	var (
		exp    *domain.Expedition
		stats  *domain.AttemptStats
		recent []*domain.MissionAttempt
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		exp, err = s.store.Load(gctx, expeditionID)
		return err
	})
	g.Go(func() error {
		var err error
		if stats, err = s.attempts.GetStats(gctx, expeditionID); err != nil {
			return domain.NewInternalError("failed to load attempt statistics", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if recent, err = s.attempts.ListAttempts(gctx, expeditionID, s.historyLimit); err != nil {
			return domain.NewInternalError("failed to load attempt history", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.ProgressResponse{
		ExpeditionID:      exp.ID,
		Role:              string(exp.Character.Role),
		CompletedMissions: len(exp.CompletedMissions),
		TotalMissions:     len(s.catalog.MissionsForRole(exp.Character.Role)),
		Attempts:          stats.Attempts,
		CorrectAttempts:   stats.Correct,
		RecentAttempts:    make([]dto.AttemptResponse, 0, len(recent)),
	}
	for _, a := range recent {
		resp.RecentAttempts = append(resp.RecentAttempts, toAttemptResponse(a))
	}
	return resp, nil
}

// CompleteMission is idempotent: completing a mission twice leaves one entry.
func (s *expeditionService) CompleteMission(ctx context.Context, expeditionID, missionID string) (*dto.CompleteMissionResponse, error) {
	if errs := s.validator.ValidateMissionID(missionID); len(errs) > 0 {
		return nil, errs
	}

	exp, err := s.store.Load(ctx, expeditionID)
	if err != nil {
		return nil, err
	}
	if _, err := missionForExpedition(s.catalog, exp, missionID); err != nil {
		return nil, err
	}

	added := exp.MarkCompleted(missionID)
	if added {
		if err := s.store.Save(ctx, exp); err != nil {
			return nil, err
		}
		logger.Get().Info("Mission completed",
			zap.String("expedition_id", exp.ID),
			zap.String("mission_id", missionID),
		)
	}

	completed := make([]string, len(exp.CompletedMissions))
	copy(completed, exp.CompletedMissions)
	return &dto.CompleteMissionResponse{
		MissionID:         missionID,
		AlreadyCompleted:  !added,
		CompletedMissions: completed,
	}, nil
}
