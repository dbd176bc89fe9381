package api

import "context"

// Capability interfaces consumed by the processing pipeline. Each adapter
// is a thin wrapper around one external AI provider; failures propagate
// unmodified to the caller, which does not retry.

// Transcriber converts audio or video bytes to plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, fileName string) (string, error)
}

// Translator translates text into the target language. The output
// language is asserted, not validated.
type Translator interface {
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

// Summarizer produces a short summary of a transcript or title. The
// summary follows targetLanguage when given, otherwise the source
// language.
type Summarizer interface {
	Summarize(ctx context.Context, text, targetLanguage string) (string, error)
}

// SpeechSynthesizer renders text to audio bytes.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// VideoContext is the per-video grounding handed to the chat capability.
type VideoContext struct {
	Transcript string
	Summary    string
}

// ChatCompleter answers one-shot questions about a video. Stateless, no
// pipeline involvement.
type ChatCompleter interface {
	Answer(ctx context.Context, question string, videoContext VideoContext) (string, error)
}

// DubbingStatus is the polled state of a provider-side dubbing job.
type DubbingStatus string

const (
	DubbingRunning DubbingStatus = "running"
	DubbingDone    DubbingStatus = "done"
	DubbingFailed  DubbingStatus = "failed"
)

// DubbingRequest describes a dubbing submission. SpeakerCount zero asks
// the provider to auto-detect speakers.
type DubbingRequest struct {
	SourceURL      string
	SourceLanguage string
	TargetLanguage string
	SpeakerCount   int
	Name           string
}

// DubbingPoll is one poll observation of a dubbing job.
type DubbingPoll struct {
	Status DubbingStatus
	Error  string
}

// Dubber drives a long-running asynchronous dubbing job: submit, poll to
// a terminal state, then download the dubbed audio.
type Dubber interface {
	Submit(ctx context.Context, req DubbingRequest) (string, error)
	Poll(ctx context.Context, jobID string) (DubbingPoll, error)
	// WaitForCompletion runs the poll loop on a fixed interval up to a
	// fixed attempt cap. It returns nil on done, a provider error on
	// failed, and a timeout error once the cap is exceeded.
	WaitForCompletion(ctx context.Context, jobID string) error
	DownloadAudio(ctx context.Context, jobID, languageCode string) ([]byte, error)
}
