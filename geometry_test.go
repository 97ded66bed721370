package svganim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type GeometryTest struct {
	Description string
	D           string
	Start       Tuple
	End         Tuple
	Length      float64
}

var geometryTests = []GeometryTest{
	{
		"absolute line",
		"M0 0 L3 4",
		Tuple{0, 0}, Tuple{3, 4}, 5,
	},
	{
		"relative line",
		"M0 0 l3 4",
		Tuple{0, 0}, Tuple{3, 4}, 5,
	},
	{
		"implicit line-to after repeated pairs",
		"M0 0 L1 1 2 2",
		Tuple{0, 0}, Tuple{2, 2}, 2 * math.Sqrt2,
	},
	{
		"implicit relative line-to after move",
		"m1 1 1 1",
		Tuple{1, 1}, Tuple{2, 2}, math.Sqrt2,
	},
	{
		"closed triangle",
		"M0 0 L10 0 L10 10 Z",
		Tuple{0, 0}, Tuple{0, 0}, 20 + math.Sqrt(200),
	},
	{
		"horizontal absolute",
		"M1 1 H5",
		Tuple{1, 1}, Tuple{5, 1}, 4,
	},
	{
		"horizontal relative",
		"M1 1 h5",
		Tuple{1, 1}, Tuple{6, 1}, 5,
	},
	{
		"vertical with repeated parameter group",
		"M0 0 V3 2",
		Tuple{0, 0}, Tuple{0, 2}, 4,
	},
	{
		"cubic curve uses chord length",
		"M0 0 C0 1 1 1 1 0",
		Tuple{0, 0}, Tuple{1, 0}, 1,
	},
	{
		"relative cubic curve",
		"m1 1 c0 1 1 1 1 0",
		Tuple{1, 1}, Tuple{2, 1}, 1,
	},
	{
		"quadratic curve uses chord length",
		"M0 0 Q1 1 2 0",
		Tuple{0, 0}, Tuple{2, 0}, 2,
	},
	{
		"smooth curve uses chord length",
		"M0 0 S1 1 2 0",
		Tuple{0, 0}, Tuple{2, 0}, 2,
	},
	{
		"arc uses chord length",
		"M0 0 A1 1 0 0 1 0 2",
		Tuple{0, 0}, Tuple{0, 2}, 2,
	},
	{
		"comma separated coordinates",
		"M0,0 L3,4",
		Tuple{0, 0}, Tuple{3, 4}, 5,
	},
	{
		"exponent coordinates",
		"M0 0 L3e0 4e0",
		Tuple{0, 0}, Tuple{3, 4}, 5,
	},
	{
		"uppercase exponent coordinates",
		"M0 0 L1E1 0",
		Tuple{0, 0}, Tuple{10, 0}, 10,
	},
	{
		"leading dot coordinates",
		"M.5 .5 L1.5 .5",
		Tuple{0.5, 0.5}, Tuple{1.5, 0.5}, 1,
	},
	{
		"compact negative coordinates",
		"M0 0L3-4",
		Tuple{0, 0}, Tuple{3, -4}, 5,
	},
	{
		"second decimal point starts a new number",
		"M1.5.5 L2.5.5",
		Tuple{1.5, 0.5}, Tuple{2.5, 0.5}, 1,
	},
	{
		"truncated parameters keep partial geometry",
		"M0 0 L3 4 L5",
		Tuple{0, 0}, Tuple{3, 4}, 5,
	},
	{
		"unknown command stops the replay",
		"M0 0 L1 0 B5 5",
		Tuple{0, 0}, Tuple{1, 0}, 1,
	},
	{
		"numbers after close stop the replay",
		"M0 0 L1 0 Z 5 5",
		Tuple{0, 0}, Tuple{0, 0}, 2,
	},
	{
		"letter inside a parameter run stops the replay",
		"M0 0 C1 1 L2 2 3 3",
		Tuple{0, 0}, Tuple{0, 0}, 0,
	},
}

func TestEvaluateSubpath(t *testing.T) {
	for _, test := range geometryTests {
		subpaths := SplitSubpaths(TokenizePath(test.D))
		require.Len(t, subpaths, 1, test.Description)

		geom, ok := EvaluateSubpath(subpaths[0])
		require.True(t, ok, test.Description)
		require.Equal(t, test.Start, geom.Start, test.Description)
		require.Equal(t, test.End, geom.End, test.Description)
		require.InDelta(t, test.Length, geom.Length, 1e-9, test.Description)
	}
}

func TestEvaluateSubpathNoGeometry(t *testing.T) {
	for _, d := range []string{
		"",
		"   ",
		"L1 1 2 2",
		"5 5 M0 0 L1 0",
		"Z",
	} {
		_, ok := EvaluateSubpath(Subpath(TokenizePath(d)))
		require.False(t, ok, "expected no geometry for %q", d)
	}
}

func TestEvaluateSubpathZeroLength(t *testing.T) {
	subpaths := SplitSubpaths(TokenizePath("M5 5"))
	require.Len(t, subpaths, 1)

	geom, ok := EvaluateSubpath(subpaths[0])
	require.True(t, ok)
	require.Equal(t, Tuple{5, 5}, geom.Start)
	require.Equal(t, Tuple{5, 5}, geom.End)
	require.Zero(t, geom.Length)
}
