package s3

import (
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
)

// BuildObjectKey derives a storage key namespaced by owner and project, with a
// millisecond upload timestamp so every upload lands at a distinct key.
// The original file name only contributes its extension.
func BuildObjectKey(userID, projectID uuid.UUID, fileName string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%d%s", userID, projectID, now.UnixMilli(), path.Ext(fileName))
}
