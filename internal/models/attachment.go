package models

import "time"

// Attachment references an uploaded file by its opaque storage URL. The
// backend never inspects contents, only metadata for display.
type Attachment struct {
	ID         int       `json:"id"`
	OwnerType  string    `json:"owner_type"` // submission, record, warranty
	OwnerID    int       `json:"owner_id"`
	FileName   string    `json:"file_name"`
	StorageKey string    `json:"storage_key"`
	MimeType   string    `json:"mime_type"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	AttachmentOwnerSubmission = "submission"
	AttachmentOwnerRecord     = "record"
	AttachmentOwnerWarranty   = "warranty"
)
