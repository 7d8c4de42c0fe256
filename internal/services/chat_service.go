package services

import (
	"fmt"
	"time"

	"balcao/internal/chat"
	"balcao/internal/domain"
	"balcao/internal/repos"
)

type ChatService struct {
	Messages *repos.MessageRepo
	Hub      *chat.Hub

	// Retention is the rolling window messages survive; older ones are
	// pruned whenever the room is loaded.
	Retention time.Duration
}

func NewChatService(msgs *repos.MessageRepo, hub *chat.Hub, retention time.Duration) *ChatService {
	return &ChatService{Messages: msgs, Hub: hub, Retention: retention}
}

// History prunes expired messages then returns the survivors oldest-first.
func (s *ChatService) History() ([]domain.Message, error) {
	cutoff := time.Now().Add(-s.Retention)
	if _, err := s.Messages.PruneBefore(cutoff); err != nil {
		return nil, err
	}
	return s.Messages.ListAsc()
}

// Post persists one message and broadcasts "{username}: {text}" to every
// connected client, the sender included.
func (s *ChatService) Post(username, text string) error {
	if err := s.Messages.Insert(username, text, time.Now()); err != nil {
		return err
	}
	s.Hub.Publish(fmt.Sprintf("%s: %s", username, text))
	return nil
}
