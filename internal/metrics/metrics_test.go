package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame(t *testing.T) {
	reg := prometheus.NewRegistry()
	g, err := NewGame(reg)
	require.NoError(t, err)

	g.VoteCast("brilliant")
	g.VoteCast("brilliant")
	g.VoteCast("meh")
	g.SubmissionCreated()

	assert.Equal(t, 2.0, testutil.ToFloat64(g.votes.WithLabelValues("brilliant")))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.votes.WithLabelValues("meh")))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.submissions))

	_, err = NewGame(reg)
	assert.Error(t, err, "second registration on the same registry must fail")
}

func TestGame_NilSafe(t *testing.T) {
	var g *Game
	assert.NotPanics(t, func() {
		g.VoteCast("meh")
		g.SubmissionCreated()
	})
}
