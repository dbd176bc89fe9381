package dto

// ChatVideoContext grounds a question on one video's derived artifacts.
type ChatVideoContext struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
}

// ChatRequest is a one-shot question about a video.
type ChatRequest struct {
	Question     string           `json:"question" binding:"required"`
	VideoContext ChatVideoContext `json:"videoContext"`
}

// ChatResponse carries the generated answer.
type ChatResponse struct {
	Answer string `json:"answer"`
}
