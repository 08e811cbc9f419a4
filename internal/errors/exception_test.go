package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to update task: %w", ErrOptimisticLock)

	assert.Equal(t, http.StatusConflict, StatusCode(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusCode(ErrTaskNotFound))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
	assert.True(t, errors.Is(wrapped, ErrOptimisticLock))
}

func TestMessageHidesInternalErrors(t *testing.T) {
	assert.Equal(t, "task not found", Message(ErrTaskNotFound))
	assert.Equal(t, "Internal Server Error", Message(errors.New("sql: connection refused")))
}
