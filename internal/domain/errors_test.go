package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvisionError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := &ProvisionError{Step: StepTest, Output: "nginx: [emerg] syntax error", Err: cause}

	assert.ErrorIs(t, err, ErrProvisioningFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "nginx: [emerg] syntax error", err.Diagnostics())
	assert.Contains(t, err.Error(), "test")

	noOutput := &ProvisionError{Step: StepReload, Err: cause}
	assert.Equal(t, "exit status 1", noOutput.Diagnostics())
	assert.ErrorIs(t, &ProvisionError{Step: StepHelper}, ErrProvisioningFailed)
}
