package testutil

import (
	"time"

	"vidglobe/internal/app/model"
)

// TestVideos provides sample video records for testing
var TestVideos = []model.Video{
	{
		ID:               "2f7c9a1e-4b3d-4e8f-9a6c-1d2e3f4a5b6c",
		Title:            "Conference Keynote 2024",
		Description:      "Opening keynote on distributed systems",
		OriginalLanguage: "en",
		TargetLanguage:   "es",
		StoredURL:        "http://localhost:9000/vidglobe/videos/keynote-2024.mp4",
		Status:           model.StatusPending,
		CreatedAt:        time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
	},
	{
		ID:               "7d1b2c3e-8f9a-4b5c-8d7e-2a3b4c5d6e7f",
		Title:            "Product Demo",
		OriginalLanguage: "en",
		TargetLanguage:   "fr",
		StoredURL:        "http://localhost:9000/vidglobe/videos/product-demo.mp4",
		TranslatedURL:    "http://localhost:9000/vidglobe/dubbed/product-demo-fr.mp3",
		Summary:          "Walkthrough of the new dashboard and its reporting features.",
		Status:           model.StatusCompleted,
		CreatedAt:        time.Date(2024, 3, 11, 15, 30, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 3, 11, 15, 42, 0, 0, time.UTC),
	},
	{
		ID:               "c4d5e6f7-1a2b-4c3d-9e8f-3b4c5d6e7f8a",
		Title:            "Untitled Video",
		OriginalLanguage: "de",
		TargetLanguage:   "en",
		OriginalURL:      "https://example.com/media/interview.mp4",
		StoredURL:        "https://example.com/media/interview.mp4",
		Status:           model.StatusFailed,
		ErrorMessage:     "dubbing failed: source audio track missing",
		Metadata:         map[string]interface{}{"is_url": true},
		CreatedAt:        time.Date(2024, 3, 12, 11, 5, 0, 0, time.UTC),
		UpdatedAt:        time.Date(2024, 3, 12, 11, 9, 0, 0, time.UTC),
	},
}

// PendingVideo returns a copy of a pending fixture ready for processing
func PendingVideo() *model.Video {
	v := TestVideos[0]
	return &v
}

// CompletedVideo returns a copy of a completed fixture
func CompletedVideo() *model.Video {
	v := TestVideos[1]
	return &v
}

// FailedVideo returns a copy of a failed fixture
func FailedVideo() *model.Video {
	v := TestVideos[2]
	return &v
}
