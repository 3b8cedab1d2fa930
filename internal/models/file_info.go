package models

import "time"

// Upload statuses.
const (
	FileStatusUploaded = "uploaded"
	FileStatusImported = "imported"
	FileStatusRejected = "rejected"
)

// FileInfo describes a file held in the upload store.
type FileInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploadedAt"`
	Status     string    `json:"status"` // "uploaded", "imported", "rejected"
}
