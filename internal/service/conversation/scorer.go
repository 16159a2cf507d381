package conversation

import (
	"context"
	"math/rand/v2"

	"github.com/parlezvous/parlezvous-backend/internal/domain"
)

// RandomScorer grades every student message with a uniform random accuracy in
// [70, 100) and a fixed feedback line. It stands in for a real language model
// and keeps the scoring contract exercised end to end.
type RandomScorer struct {
	Feedback string
}

// NewRandomScorer creates a scorer with the default feedback line.
func NewRandomScorer() *RandomScorer {
	return &RandomScorer{
		Feedback: "Bonne tentative! Continuez à pratiquer.",
	}
}

// Score implements Scorer.
func (s *RandomScorer) Score(_ context.Context, _ string) (float64, string, error) {
	return 70 + rand.Float64()*30, s.Feedback, nil
}

// StaticResponder replies to every student message with a fixed phrase.
type StaticResponder struct {
	Message string
}

// Reply implements Responder.
func (r *StaticResponder) Reply(_ context.Context, _ *domain.Conversation, _ string) (string, error) {
	return r.Message, nil
}
