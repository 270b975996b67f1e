package mdxport_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/mdxport"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mdxport.Errorf(mdxport.ENOTFOUND, "locator %q matched nothing", "css:#main")

	assert.Equal(t, mdxport.ENOTFOUND, mdxport.ErrorCode(err))
	assert.Equal(t, "locator \"css:#main\" matched nothing", mdxport.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdxport.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mdxport.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("select content: %w", mdxport.Errorf(mdxport.ENOTFOUND, "missing"))

	assert.Equal(t, mdxport.ENOTFOUND, mdxport.ErrorCode(err))
	assert.Equal(t, "missing", mdxport.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, mdxport.EINTERNAL, mdxport.ErrorCode(err))
	assert.Equal(t, "connection refused", mdxport.ErrorMessage(err))
}
