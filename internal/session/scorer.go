package session

import (
	"context"
	"math/rand/v2"
)

// Scorer grades a student message. The machine treats it as an injectable
// collaborator; RandomScorer is the placeholder default.
type Scorer interface {
	Score(ctx context.Context, message string) (accuracy float64, feedback string, err error)
}

// Responder produces the tutor's reply to a student message.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}

// RandomScorer returns a uniform-random accuracy in [70, 100) and a fixed
// feedback line. It is a stand-in until a real scoring engine is wired.
type RandomScorer struct {
	Feedback string
}

// NewRandomScorer creates a RandomScorer with the default feedback line.
func NewRandomScorer() *RandomScorer {
	return &RandomScorer{Feedback: "Bonne tentative! Continuez à pratiquer."}
}

func (s *RandomScorer) Score(_ context.Context, _ string) (float64, string, error) {
	return 70 + rand.Float64()*30, s.Feedback, nil
}

// StaticResponder replies with the same canned line to every message.
type StaticResponder struct {
	Message string
}

func (r *StaticResponder) Reply(_ context.Context, _ string) (string, error) {
	return r.Message, nil
}
