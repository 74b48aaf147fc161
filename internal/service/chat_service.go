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

// ChatService answers questions with the keyword assistant and keeps the transcript.
type ChatService interface {
	Ask(ctx context.Context, expeditionID string, req *dto.ChatRequest) (*dto.ChatReplyResponse, error)
	History(ctx context.Context, expeditionID string) (*dto.ChatHistoryResponse, error)
	QuickQuestions() *dto.QuickQuestionsResponse
}

// DefaultTranscriptLimit applies when no transcript limit is configured.
const DefaultTranscriptLimit = 100

type chatService struct {
	catalog   *catalog.Catalog
	store     domain.ExpeditionStore
	validator *validation.Validator
	metrics   *metrics.Recorder
	limit     int
	now       func() time.Time
}

func NewChatService(cat *catalog.Catalog, store domain.ExpeditionStore, recorder *metrics.Recorder, transcriptLimit int) ChatService {
	if transcriptLimit <= 0 {
		transcriptLimit = DefaultTranscriptLimit
	}
	return &chatService{
		catalog:   cat,
		store:     store,
		validator: validation.NewValidator(),
		metrics:   recorder,
		limit:     transcriptLimit,
		now:       time.Now,
	}
}

func (s *chatService) Ask(ctx context.Context, expeditionID string, req *dto.ChatRequest) (*dto.ChatReplyResponse, error) {
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := s.validator.ValidateChatText(req.Text); len(errs) > 0 {
		return nil, errs
	}

	exp, err := s.store.Load(ctx, expeditionID)
	if err != nil {
		return nil, err
	}

	reply, keyword := s.reply(req.Text)
	now := s.now().UTC()
	question := domain.ChatMessage{ID: util.NewULID(), Sender: domain.SenderUser, Text: req.Text, Timestamp: now}
	answer := domain.ChatMessage{ID: util.NewULID(), Sender: domain.SenderAI, Text: reply, Timestamp: now}
	exp.AppendMessages(s.limit, question, answer)

	if err := s.store.Save(ctx, exp); err != nil {
		return nil, err
	}

	s.metrics.RecordChatResponse(keyword)
	logger.Get().Debug("Assistant replied",
		zap.String("expedition_id", exp.ID),
		zap.String("keyword", keyword),
	)

	return &dto.ChatReplyResponse{
		Question: toChatMessageResponse(question),
		Reply:    toChatMessageResponse(answer),
	}, nil
}

// reply returns the assistant text and the keyword that produced it ("" on fallback).
func (s *chatService) reply(text string) (string, string) {
	table := s.catalog.Keywords()
	if entry, ok := table.Match(text); ok {
		return entry.Response, entry.Keyword
	}
	return s.catalog.Fallback(), ""
}

func (s *chatService) History(ctx context.Context, expeditionID string) (*dto.ChatHistoryResponse, error) {
	exp, err := s.store.Load(ctx, expeditionID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ChatHistoryResponse{Messages: make([]dto.ChatMessageResponse, 0, len(exp.Messages))}
	for _, m := range exp.Messages {
		resp.Messages = append(resp.Messages, toChatMessageResponse(m))
	}
	return resp, nil
}

func (s *chatService) QuickQuestions() *dto.QuickQuestionsResponse {
	return &dto.QuickQuestionsResponse{Questions: s.catalog.QuickQuestions()}
}
