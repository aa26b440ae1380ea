package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := New(CodeNotFound, "file not found")
		assert.Equal(t, "[NOT_FOUND] file not found", err.Error())
	})

	t.Run("Wrap", func(t *testing.T) {
		original := errors.New("permission denied")
		err := Wrap(original, CodeInternal, "read failed")
		assert.Equal(t, "[INTERNAL_ERROR] read failed: permission denied", err.Error())
		assert.ErrorIs(t, err, original)
	})

	t.Run("WrapNil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "nothing"))
	})

	t.Run("IsCode", func(t *testing.T) {
		err := New(CodeValidationError, "invalid dialect")
		assert.True(t, IsCode(err, CodeValidationError))
		assert.False(t, IsCode(err, CodeNotFound))
	})

	t.Run("IsCodeThroughFmtWrap", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeNotSupported, "dialect"))
		assert.True(t, IsCode(err, CodeNotSupported))
		assert.Equal(t, CodeNotSupported, CodeOf(err))
	})
}

func TestAddContext(t *testing.T) {
	t.Run("DomainErrorKeepsCode", func(t *testing.T) {
		err := AddContext(New(CodeNotSupported, "unsupported file"), CtxPath, "a.vue")
		err = AddContext(err, CtxDialect, "vue")
		require.True(t, IsCode(err, CodeNotSupported))
		assert.Equal(t, "[NOT_SUPPORTED] unsupported file {dialect=vue path=a.vue}", err.Error())
	})

	t.Run("ForeignErrorBecomesInternal", func(t *testing.T) {
		base := errors.New("boom")
		err := AddContext(base, CtxOperation, "scan")
		assert.True(t, IsCode(err, CodeInternal))
		assert.ErrorIs(t, err, base)
		assert.Equal(t, CodeInternal, CodeOf(base))
	})
}
