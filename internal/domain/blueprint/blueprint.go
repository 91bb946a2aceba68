package blueprint

import (
	"time"

	"github.com/google/uuid"
)

const DefaultVersion = 1

type Blueprint struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	StoragePath string    `json:"storage_path"`
	FileType    *string   `json:"file_type"`
	Version     int       `json:"version"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type CreateBlueprintInput struct {
	UserID      uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	StoragePath string
	FileType    *string
}

type ListBlueprintsFilter struct {
	UserID    uuid.UUID
	ProjectID *uuid.UUID
}
