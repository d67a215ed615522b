package algovista

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iayr1/algovista-sub001/catalog"
	"github.com/iayr1/algovista-sub001/widget"
)

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	_, err := catalog.Default().Get("nonexistent-algo")
	require.Error(t, err)

	got := translateError(err)
	assert.ErrorIs(t, got, ErrNotFound)
	assert.ErrorIs(t, got, catalog.ErrNotFound)

	var unknown *ErrUnknownAlgorithm
	require.True(t, errors.As(got, &unknown))
	assert.Equal(t, "nonexistent-algo", unknown.ID)
	assert.Equal(t, `algovista: unknown algorithm "nonexistent-algo"`, got.Error())

	wrapped := translateError(fmt.Errorf("lookup: %w", catalog.ErrNotFound))
	assert.ErrorIs(t, wrapped, ErrNotFound)

	kind := translateError(fmt.Errorf("x: %w", widget.ErrUnknownKind))
	assert.ErrorIs(t, kind, widget.ErrUnknownKind)
	assert.NotErrorIs(t, kind, ErrNotFound)

	other := errors.New("boom")
	assert.Same(t, other, translateError(other))
}

func TestErrRender(t *testing.T) {
	cause := errors.New("disk full")
	err := &ErrRender{View: "detail", ID: "k-means", cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `algovista: render detail "k-means": disk full`, err.Error())

	err = &ErrRender{View: "index", cause: cause}
	assert.Equal(t, "algovista: render index: disk full", err.Error())
}
