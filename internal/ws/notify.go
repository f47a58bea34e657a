package ws

import (
	"encoding/json"
	"time"

	"career-advisor/internal/domain/career"
)

const EventRecommendationCreated = "recommendation_created"

type RecommendationEvent struct {
	Type             string `json:"type"`
	RecommendationID string `json:"recommendation_id"`
	CareerID         string `json:"career_id"`
	CareerPath       string `json:"career_path"`
	Timestamp        string `json:"timestamp"`
}

// Notifier publishes recommendation events to every connected client.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) NotifyRecommendation(recommendationID string, id career.CategoryID, title string) {
	if n == nil || n.hub == nil {
		return
	}

	evt := RecommendationEvent{
		Type:             EventRecommendationCreated,
		RecommendationID: recommendationID,
		CareerID:         string(id),
		CareerPath:       title,
		Timestamp:        n.now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
