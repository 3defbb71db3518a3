package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Game holds the gameplay counters exported on /metrics.
// A nil *Game is valid and records nothing.
type Game struct {
	votes       *prometheus.CounterVec
	submissions prometheus.Counter
}

func NewGame(reg prometheus.Registerer) (*Game, error) {
	g := &Game{
		votes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stylist_votes_total",
				Help: "Total number of votes cast, by vote type.",
			},
			[]string{"type"},
		),
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stylist_submissions_total",
			Help: "Total number of outfit photos uploaded.",
		}),
	}
	for _, c := range []prometheus.Collector{g.votes, g.submissions} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (g *Game) VoteCast(voteType string) {
	if g == nil {
		return
	}
	g.votes.WithLabelValues(voteType).Inc()
}

func (g *Game) SubmissionCreated() {
	if g == nil {
		return
	}
	g.submissions.Inc()
}
