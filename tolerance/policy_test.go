package tolerance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvgeom/tolerance"
)

func TestNewPolicyDefaults(t *testing.T) {
	p := tolerance.NewPolicy()
	require.Equal(t, tolerance.DefaultPolicy(), p)
	require.NoError(t, p.Validate())
	require.True(t, p.Equal32(0, 1e-7))
	require.False(t, p.Equal32(1, 1.0001))
}

func TestNewPolicyOptions(t *testing.T) {
	loose := tolerance.NewPolicy(tolerance.WithMaxAbsoluteDiff(1e-3), tolerance.WithMaxUlps(0))
	require.Equal(t, 1e-3, loose.MaxAbsoluteDiff)
	require.EqualValues(t, 0, loose.MaxUlps)
	require.True(t, loose.Equal32(1, 1.0001))
	require.True(t, loose.Equal64(10, 10.005))

	strict := tolerance.NewPolicy(tolerance.WithMaxAbsoluteDiff(0), tolerance.WithMaxUlps(0))
	require.False(t, strict.Equal32(1, math.Nextafter32(1, 2)))
	require.True(t, strict.EqualSlices([]float32{1, 2}, []float32{1, 2}))
	require.False(t, strict.EqualSlices([]float32{1, 2}, []float32{1}))
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { tolerance.WithMaxAbsoluteDiff(-1) })
	require.Panics(t, func() { tolerance.WithMaxAbsoluteDiff(math.NaN()) })
	require.Panics(t, func() { tolerance.WithMaxAbsoluteDiff(math.Inf(1)) })
	require.Panics(t, func() { tolerance.WithMaxAbsoluteDiff(math.MaxFloat32 * 2) })
	require.NotPanics(t, func() { tolerance.WithMaxAbsoluteDiff(math.MaxFloat32) })
	require.Panics(t, func() { tolerance.WithMaxUlps(-1) })
}

// TestValidate_Float32Range: a hand-built band that would narrow to +Inf is
// rejected, since Equal32 would then accept any finite pair.
func TestValidate_Float32Range(t *testing.T) {
	wide := tolerance.Policy{MaxAbsoluteDiff: 1e39, MaxUlps: 5}
	require.ErrorIs(t, wide.Validate(), tolerance.ErrInvalidPolicy)

	edge := tolerance.Policy{MaxAbsoluteDiff: math.MaxFloat32, MaxUlps: 5}
	require.NoError(t, edge.Validate())

	for _, p := range []tolerance.Policy{
		{MaxAbsoluteDiff: math.NaN()},
		{MaxAbsoluteDiff: math.Inf(1)},
		{MaxAbsoluteDiff: -1e-9},
	} {
		require.ErrorIs(t, p.Validate(), tolerance.ErrInvalidPolicy, "%v", p.MaxAbsoluteDiff)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    tolerance.Policy
		wantErr bool
	}{
		{name: "empty document", doc: "", want: tolerance.DefaultPolicy()},
		{name: "partial override", doc: "max_ulps: 8\n", want: tolerance.Policy{MaxAbsoluteDiff: 1e-5, MaxUlps: 8}},
		{name: "full override", doc: "max_absolute_diff: 1e-4\nmax_ulps: 2\n", want: tolerance.Policy{MaxAbsoluteDiff: 1e-4, MaxUlps: 2}},
		{name: "unknown key", doc: "epsilon: 1\n", wantErr: true},
		{name: "negative band", doc: "max_absolute_diff: -1\n", wantErr: true},
		{name: "band beyond float32", doc: "max_absolute_diff: 1e39\n", wantErr: true},
		{name: "negative ulps", doc: "max_ulps: -3\n", wantErr: true},
		{name: "not yaml", doc: "max_ulps: [\n", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := tolerance.ParsePolicy([]byte(tc.doc))
			if tc.wantErr {
				require.ErrorIs(t, err, tolerance.ErrInvalidPolicy)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, p)
		})
	}
}
