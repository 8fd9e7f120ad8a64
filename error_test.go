package pressgate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pressgate/pressgate"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pressgate.Errorf(pressgate.ENOTFOUND, "article %q not found", "test")

	assert.Equal(t, pressgate.ENOTFOUND, pressgate.ErrorCode(err))
	assert.Equal(t, "article \"test\" not found", pressgate.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pressgate.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pressgate.EINTERNAL, pressgate.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving article: %w", pressgate.Errorf(pressgate.EINVALID, "URL required"))

	assert.Equal(t, pressgate.EINVALID, pressgate.ErrorCode(err))
	assert.Equal(t, "URL required", pressgate.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pressgate.ErrorMessage(nil))
}
