package collision

import (
	"testing"

	"github.com/arloliu/dicol/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker(-1)

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Observe_DenseSequence(t *testing.T) {
	tracker := NewTracker(4)

	require.NoError(t, tracker.Observe(0, "cat"))
	require.NoError(t, tracker.Observe(1, "dog"))
	require.NoError(t, tracker.Observe(0, "cat")) // repeat is fine
	require.NoError(t, tracker.Observe(2, "car"))

	require.Equal(t, 3, tracker.Count())
}

func TestTracker_Observe_Violations(t *testing.T) {
	tests := []struct {
		name    string
		observe func(*Tracker) error
	}{
		{
			name: "code reused for a different key",
			observe: func(tr *Tracker) error {
				return tr.Observe(0, "dog")
			},
		},
		{
			name: "key moved to another code",
			observe: func(tr *Tracker) error {
				return tr.Observe(1, "cat")
			},
		},
		{
			name: "code skips ahead",
			observe: func(tr *Tracker) error {
				return tr.Observe(5, "dog")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracker := NewTracker(0)
			require.NoError(t, tracker.Observe(0, "cat"))

			err := tt.observe(tracker)
			require.ErrorIs(t, err, errs.ErrInvariantViolation)
			require.Equal(t, 1, tracker.Count())
		})
	}
}
