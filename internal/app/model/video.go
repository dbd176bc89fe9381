package model

import (
	"time"
)

// Status is the lifecycle state of a video record. Transitions only move
// forward: pending -> processing -> completed|failed. A failed record may
// re-enter processing on a retried run.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no further automatic transition occurs.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanBeginProcessing reports whether a processing run may start from s.
func (s Status) CanBeginProcessing() bool {
	return s == StatusPending || s == StatusFailed
}

// Video represents one user-submitted video and its translation job.
type Video struct {
	ID                   string                 `json:"id" db:"id"`
	Title                string                 `json:"title" db:"title"`
	Description          string                 `json:"description" db:"description"`
	OriginalLanguage     string                 `json:"original_language" db:"original_language"`
	TargetLanguage       string                 `json:"target_language" db:"target_language"`
	OriginalURL          string                 `json:"original_url" db:"original_url"`
	StoredURL            string                 `json:"stored_url" db:"stored_url"`
	TranslatedURL        string                 `json:"translated_url" db:"translated_url"`
	Transcript           string                 `json:"transcript" db:"transcript"`
	TranslatedTranscript string                 `json:"translated_transcript" db:"translated_transcript"`
	Summary              string                 `json:"summary" db:"summary"`
	Status               Status                 `json:"status" db:"status"`
	ErrorMessage         string                 `json:"error_message" db:"error_message"`
	Metadata             map[string]interface{} `json:"metadata" db:"metadata"`
	CreatedAt            time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time              `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for Video
func (Video) TableName() string {
	return "videos"
}

// SourceKind discriminates the two intake variants.
type SourceKind int

const (
	SourceFile SourceKind = iota
	SourceURL
)

// Source is the tagged intake variant: either uploaded bytes or a
// user-supplied URL. Exactly one arm is populated, selected by Kind.
type Source struct {
	Kind        SourceKind
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
	URL         string
}

// FileSource builds a file-backed source.
func FileSource(name, contentType string, data []byte) Source {
	return Source{
		Kind:        SourceFile,
		FileName:    name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}
}

// URLSource builds a URL-backed source.
func URLSource(url string) Source {
	return Source{Kind: SourceURL, URL: url}
}
