package app

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsServerClosed(t *testing.T) {
	assert.True(t, isServerClosed(http.ErrServerClosed))
	assert.True(t, isServerClosed(fmt.Errorf("serving: %w", http.ErrServerClosed)))
	assert.False(t, isServerClosed(errors.New("listen tcp :8080: bind: address already in use")))
	assert.False(t, isServerClosed(nil))
}
