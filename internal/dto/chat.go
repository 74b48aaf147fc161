package dto

import "time"

// ChatRequest represents a question to the assistant
// @Description Request body for the assistant chat
type ChatRequest struct {
	Text string `json:"text"`
}

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatReplyResponse carries the stored question and the assistant reply
type ChatReplyResponse struct {
	Question ChatMessageResponse `json:"question"`
	Reply    ChatMessageResponse `json:"reply"`
}

type ChatHistoryResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

type QuickQuestionsResponse struct {
	Questions []string `json:"questions"`
}
