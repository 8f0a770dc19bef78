package sitepdf_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/sitepdf"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := sitepdf.Errorf(sitepdf.EUNAVAILABLE, "HTTP %d for %s", 404, "https://example.com")

	assert.Equal(t, sitepdf.EUNAVAILABLE, sitepdf.ErrorCode(err))
	assert.Equal(t, "HTTP 404 for https://example.com", sitepdf.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetching seed: %w", sitepdf.Errorf(sitepdf.ENOTFOUND, "no article found"))

	assert.Equal(t, sitepdf.ENOTFOUND, sitepdf.ErrorCode(err))
	assert.Equal(t, "no article found", sitepdf.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, sitepdf.EINTERNAL, sitepdf.ErrorCode(err))
	assert.Equal(t, "Internal error.", sitepdf.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitepdf.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sitepdf.ErrorMessage(nil))
}
