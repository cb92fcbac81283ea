package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/skillstub/internal/skill"
)

func TestFromStatus(t *testing.T) {
	assert.NoError(t, FromStatus(skill.StatusSuccess, "ok"))

	err := FromStatus(skill.StatusFailure, "skill failed")
	require.Error(t, err)
	assert.Equal(t, CodeFailure, ExitCodeOf(err))

	err = FromStatus(skill.StatusError, "skill unknown")
	require.Error(t, err)
	assert.Equal(t, CodeError, ExitCodeOf(err))
}

func TestExitCodeOf(t *testing.T) {
	assert.Equal(t, CodeOK, ExitCodeOf(nil))
	assert.Equal(t, CodeCLI, ExitCodeOf(errors.New("plain")))
	assert.Equal(t, 7, ExitCodeOf(New(7, "custom")))

	// Wrapped ExitErrors still surface their code.
	wrapped := fmt.Errorf("outer: %w", New(CodeError, "inner"))
	assert.Equal(t, CodeError, ExitCodeOf(wrapped))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeFailure, "dispatch", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "dispatch: boom", err.Error())

	assert.Equal(t, CodeFailure, ExitCodeOf(Wrap(CodeFailure, "no cause", nil)))
}

func TestNormalize(t *testing.T) {
	// Errors never carry exit code 0.
	assert.Equal(t, CodeCLI, ExitCodeOf(New(0, "zero")))
	assert.Equal(t, CodeCLI, ExitCodeOf(New(-3, "negative")))
}
