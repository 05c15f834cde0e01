package pagerank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nao1215/inferank/internal/model"
)

// corpus0 is the four-page corpus used by the original exercise.
func corpus0() *model.LinkGraph {
	return model.NewLinkGraph(map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"2.html", "4.html"},
		"4.html": {"2.html"},
	})
}

// withDangling is a corpus where c.html has no outbound links.
func withDangling() *model.LinkGraph {
	return model.NewLinkGraph(map[string][]string{
		"a.html": {"b.html"},
		"b.html": {"a.html", "c.html"},
		"c.html": nil,
	})
}

func pingPong() *model.LinkGraph {
	return model.NewLinkGraph(map[string][]string{
		"A": {"B"},
		"B": {"A"},
	})
}

func TestSettings_Validate(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr error
	}{
		{"damping of one", func(s *Settings) { s.Damping = 1 }, ErrInvalidDamping},
		{"negative damping", func(s *Settings) { s.Damping = -0.1 }, ErrInvalidDamping},
		{"zero samples", func(s *Settings) { s.Samples = 0 }, ErrInvalidSamples},
		{"negative threshold", func(s *Settings) { s.Threshold = -1 }, ErrInvalidThreshold},
		{"zero iteration cap", func(s *Settings) { s.MaxIterations = 0 }, ErrInvalidMaxIterations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), tt.wantErr)
		})
	}
}

func TestTransition(t *testing.T) {
	t.Run("linked page", func(t *testing.T) {
		dist, err := Transition(corpus0(), "1.html", DefaultDamping)
		require.NoError(t, err)
		assert.InDelta(t, 0.0375, dist["1.html"], 1e-12)
		assert.InDelta(t, 0.8875, dist["2.html"], 1e-12)
		assert.InDelta(t, 1.0, dist.Sum(), 1e-12)
	})

	t.Run("dangling page is uniform", func(t *testing.T) {
		dist, err := Transition(withDangling(), "c.html", DefaultDamping)
		require.NoError(t, err)
		for _, p := range dist.Pages() {
			assert.InDelta(t, 1.0/3, dist[p], 1e-12, p)
		}
	})

	t.Run("errors", func(t *testing.T) {
		_, err := Transition(corpus0(), "9.html", DefaultDamping)
		assert.ErrorIs(t, err, ErrUnknownPage)

		_, err = Transition(model.NewLinkGraph(nil), "1.html", DefaultDamping)
		assert.ErrorIs(t, err, ErrEmptyGraph)

		_, err = Transition(corpus0(), "1.html", 1.5)
		assert.ErrorIs(t, err, ErrInvalidDamping)
	})
}

func TestIterate_PingPong(t *testing.T) {
	ranks, iterations, err := Iterate(pingPong(), DefaultSettings())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ranks["A"], 1e-9)
	assert.InDelta(t, 0.5, ranks["B"], 1e-9)
	assert.Equal(t, 1, iterations)
}

func TestIterate_Corpus0(t *testing.T) {
	ranks, _, err := Iterate(corpus0(), DefaultSettings())
	require.NoError(t, err)

	want := model.RankVector{
		"1.html": 0.2198,
		"2.html": 0.4294,
		"3.html": 0.2198,
		"4.html": 0.1311,
	}
	for page, v := range want {
		assert.InDelta(t, v, ranks[page], 2e-3, page)
	}
	assert.InDelta(t, 1.0, ranks.Sum(), 1e-3)
}

func TestIterate_FixedPoint(t *testing.T) {
	for name, g := range map[string]*model.LinkGraph{
		"corpus0":  corpus0(),
		"dangling": withDangling(),
		"pingpong": pingPong(),
	} {
		t.Run(name, func(t *testing.T) {
			s := DefaultSettings()
			ranks, _, err := Iterate(g, s)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, ranks.Sum(), 1e-3)

			next, err := Step(g, ranks, s.Damping)
			require.NoError(t, err)
			assert.Less(t, next.MaxDelta(ranks), s.Threshold)
		})
	}
}

func TestIterate_StrictThreshold(t *testing.T) {
	// The ping-pong corpus is already at its fixed point, so every change
	// is exactly zero. With a zero threshold, zero is not strictly less
	// than the threshold and the solver must hit the iteration cap.
	s := DefaultSettings()
	s.Threshold = 0
	s.MaxIterations = 5

	_, iterations, err := Iterate(pingPong(), s)
	assert.ErrorIs(t, err, ErrNotConverged)
	assert.Equal(t, 5, iterations)
}

func TestIterate_Errors(t *testing.T) {
	_, _, err := Iterate(model.NewLinkGraph(nil), DefaultSettings())
	assert.ErrorIs(t, err, ErrEmptyGraph)

	s := DefaultSettings()
	s.Damping = 1
	_, _, err = Iterate(corpus0(), s)
	assert.ErrorIs(t, err, ErrInvalidDamping)

	// Iterate does not use the sample count.
	s = DefaultSettings()
	s.Samples = 0
	_, _, err = Iterate(corpus0(), s)
	assert.NoError(t, err)
}

func TestSample_SumsToOne(t *testing.T) {
	ranks, err := Sample(corpus0(), DefaultSettings(), NewRand(42))
	require.NoError(t, err)
	assert.Len(t, ranks, 4)
	assert.InDelta(t, 1.0, ranks.Sum(), 1e-9)
	for page, v := range ranks {
		assert.GreaterOrEqual(t, v, 0.0, page)
		assert.LessOrEqual(t, v, 1.0, page)
	}
}

func TestSample_ReportsUnvisitedPages(t *testing.T) {
	s := DefaultSettings()
	s.Samples = 1
	ranks, err := Sample(corpus0(), s, NewRand(7))
	require.NoError(t, err)
	assert.Len(t, ranks, 4)
	assert.InDelta(t, 1.0, ranks.Sum(), 1e-12)
}

func TestSample_AgreesWithIterate(t *testing.T) {
	for name, g := range map[string]*model.LinkGraph{
		"corpus0":  corpus0(),
		"dangling": withDangling(),
	} {
		t.Run(name, func(t *testing.T) {
			s := DefaultSettings()
			s.Samples = 100000

			sampled, err := Sample(g, s, NewRand(20240101))
			require.NoError(t, err)
			iterated, _, err := Iterate(g, s)
			require.NoError(t, err)

			assert.InDelta(t, 1.0, sampled.Sum(), 1e-9)
			for _, page := range iterated.Pages() {
				assert.InDelta(t, iterated[page], sampled[page], 0.01, page)
			}
		})
	}
}

func TestSample_SameSeedSameResult(t *testing.T) {
	a, err := Sample(corpus0(), DefaultSettings(), NewRand(99))
	require.NoError(t, err)
	b, err := Sample(corpus0(), DefaultSettings(), NewRand(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSample_Errors(t *testing.T) {
	_, err := Sample(model.NewLinkGraph(nil), DefaultSettings(), NewRand(1))
	assert.ErrorIs(t, err, ErrEmptyGraph)

	s := DefaultSettings()
	s.Samples = 0
	_, err = Sample(corpus0(), s, NewRand(1))
	assert.ErrorIs(t, err, ErrInvalidSamples)
}

func TestStep_Errors(t *testing.T) {
	_, err := Step(model.NewLinkGraph(nil), nil, DefaultDamping)
	assert.ErrorIs(t, err, ErrEmptyGraph)

	_, err = Step(corpus0(), nil, -1)
	assert.ErrorIs(t, err, ErrInvalidDamping)
}
