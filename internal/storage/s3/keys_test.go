package s3

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildObjectKey(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	now := time.UnixMilli(1700000000000)

	key := BuildObjectKey(userID, projectID, "site-plan.pdf", now)
	assert.Equal(t, fmt.Sprintf("%s/%s/1700000000000.pdf", userID, projectID), key)
}

func TestBuildObjectKey_NoExtension(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()
	now := time.UnixMilli(1700000000000)

	key := BuildObjectKey(userID, projectID, "drawing", now)
	assert.Equal(t, fmt.Sprintf("%s/%s/1700000000000", userID, projectID), key)
}

func TestBuildObjectKey_UniquePerUpload(t *testing.T) {
	userID := uuid.New()
	projectID := uuid.New()

	first := BuildObjectKey(userID, projectID, "plan.pdf", time.UnixMilli(1))
	second := BuildObjectKey(userID, projectID, "plan.pdf", time.UnixMilli(2))
	assert.NotEqual(t, first, second)
}
