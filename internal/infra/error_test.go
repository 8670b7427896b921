//go:build unit

package infra_test

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"testing"

	"salon-booking/internal/infra"

	"github.com/stretchr/testify/assert"
)

func TestStoreError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := infra.WrapStoreErr(logger, infra.KindIOFailure, "file", "failed to write pending", fs.ErrPermission)

	assert.True(t, infra.IsKind(err, infra.KindIOFailure))
	assert.False(t, infra.IsKind(err, infra.KindDBFailure))
	assert.True(t, errors.Is(err, fs.ErrPermission), "the cause stays reachable")
	assert.Contains(t, err.Error(), "file store: IO_FAILURE: failed to write pending")

	var se infra.StoreError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "file", se.Backend)

	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindIOFailure))
}
