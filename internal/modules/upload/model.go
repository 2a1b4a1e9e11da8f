package upload

import (
	"time"

	"github.com/google/uuid"
)

// UploadedFile records a stored design file. Orders reference the URL;
// nothing cleans up files whose orders were never created.
type UploadedFile struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"` // original client file name
	FileURL   string    `json:"file_url"`  // serving path under /uploads/
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}
