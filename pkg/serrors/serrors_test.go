package serrors_test

import (
	"errors"
	"testing"
	"urlintel/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrUnavailable,
		serrors.ErrTimeout,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrBadRequest, "invalid url %q", "::")
	require.Equal(t, `invalid url "::"`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "querying phishtank")
	require.Equal(t, "querying phishtank: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrUnavailable)
	require.Equal(t, "UNAVAILABLE", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnavailable, base, "reading")

	require.ErrorIs(t, e, serrors.ErrUnavailable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrBadRequest, "errors.Is should not match a different kind")
}

func TestAsMatchesWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrInternal, base, "reading")

	var got customError
	require.ErrorAs(t, e, &got)
	require.Equal(t, "root cause", got.msg)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrTimeout, base, "slow source")

	require.Equal(t, serrors.ErrTimeout, e.Kind())
	require.Equal(t, "slow source", e.Message())
	require.Equal(t, base, e.Cause())
	require.Equal(t, base, errors.Unwrap(e))
}
