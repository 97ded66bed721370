package renderer

import (
	"image"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubBackend struct{}

func (s *stubBackend) Name() string { return "stub" }

func (s *stubBackend) Init(width, height int) error { return nil }
func (s *stubBackend) Render(svg []byte) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (s *stubBackend) Close() {}

func TestRegister(t *testing.T) {
	Register("stub", func() Backend { return &stubBackend{} })

	b := Get("stub")
	require.NotNil(t, b)
	require.Equal(t, "stub", b.Name())
	require.Contains(t, Available(), "stub")
}

func TestGetUnknown(t *testing.T) {
	require.Nil(t, Get("no-such-backend"))
}

func TestAvailable(t *testing.T) {
	names := Available()
	require.True(t, sort.StringsAreSorted(names))
	require.Contains(t, names, BackendChromium)
	require.Contains(t, names, BackendNative)
}

func TestGetReturnsFreshInstances(t *testing.T) {
	first := Get(BackendNative)
	second := Get(BackendNative)
	require.NotNil(t, first)
	require.NotNil(t, second)
	require.NotSame(t, first, second)
}

func TestDefault(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	require.Equal(t, BackendChromium, b.Name())
}
