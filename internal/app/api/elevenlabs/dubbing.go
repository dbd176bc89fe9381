package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"vidglobe/internal/app/api"
	apperrors "vidglobe/internal/app/errors"
)

// Config configures the ElevenLabs dubbing adapter. The poll interval
// and attempt cap bound worst-case occupancy: a job that never reaches
// a terminal state fails after MaxPollAttempts polls.
type Config struct {
	APIKey          string        `yaml:"api_key"`
	BaseURL         string        `yaml:"base_url"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	MaxPollAttempts int           `yaml:"max_poll_attempts"`
	Timeout         time.Duration `yaml:"timeout"`
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.elevenlabs.io/v1"
	}
	if c.PollInterval == 0 {
		c.PollInterval = 5 * time.Second
	}
	if c.MaxPollAttempts == 0 {
		c.MaxPollAttempts = 60
	}
	if c.Timeout == 0 {
		c.Timeout = 2 * time.Minute
	}
	return c
}

// DubbingClient implements api.Dubber against the ElevenLabs dubbing API.
// Completion is only observable by polling; there is no push channel.
type DubbingClient struct {
	config Config
	client *http.Client

	// sleep is swapped out in tests to avoid real polling delays.
	sleep func(time.Duration)
}

// NewDubbingClient creates a new DubbingClient.
func NewDubbingClient(config Config) *DubbingClient {
	config = config.withDefaults()
	return &DubbingClient{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		sleep:  time.Sleep,
	}
}

type submitResponse struct {
	DubbingID           string  `json:"dubbing_id"`
	ExpectedDurationSec float64 `json:"expected_duration_sec"`
}

type pollResponse struct {
	DubbingID string `json:"dubbing_id"`
	Status    string `json:"status"`
	Error     string `json:"error"`
}

// Submit creates a dubbing job from a source URL. The watermark flag is
// always sent: it is a provider policy constraint for non-premium
// accounts, not a user preference.
func (d *DubbingClient) Submit(ctx context.Context, req api.DubbingRequest) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"source_url":         req.SourceURL,
		"target_lang":        req.TargetLanguage,
		"num_speakers":       strconv.Itoa(req.SpeakerCount),
		"watermark":          "true",
		"highest_resolution": "true",
	}
	if req.SourceLanguage != "" && req.SourceLanguage != "auto" {
		fields["source_lang"] = req.SourceLanguage
	}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	for field, value := range fields {
		if err := writer.WriteField(field, value); err != nil {
			return "", apperrors.Submission(err, "dubbing")
		}
	}
	if err := writer.Close(); err != nil {
		return "", apperrors.Submission(err, "dubbing")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.BaseURL+"/dubbing", &body)
	if err != nil {
		return "", apperrors.Submission(err, "dubbing")
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("xi-api-key", d.config.APIKey)

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return "", apperrors.Submission(err, "dubbing")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", apperrors.Submission(apiError(resp), "dubbing")
	}

	var submitResp submitResponse
	if err := json.NewDecoder(resp.Body).Decode(&submitResp); err != nil {
		return "", apperrors.Submission(err, "dubbing")
	}
	if submitResp.DubbingID == "" {
		return "", apperrors.Provider("elevenlabs", "submission returned no job id")
	}
	return submitResp.DubbingID, nil
}

// Poll reads the current job state once.
func (d *DubbingClient) Poll(ctx context.Context, jobID string) (api.DubbingPoll, error) {
	url := fmt.Sprintf("%s/dubbing/%s", d.config.BaseURL, jobID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return api.DubbingPoll{}, apperrors.Fetch(err, "dubbing status")
	}
	httpReq.Header.Set("xi-api-key", d.config.APIKey)

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return api.DubbingPoll{}, apperrors.Fetch(err, "dubbing status")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return api.DubbingPoll{}, apperrors.Fetch(apiError(resp), "dubbing status")
	}

	var pollResp pollResponse
	if err := json.NewDecoder(resp.Body).Decode(&pollResp); err != nil {
		return api.DubbingPoll{}, apperrors.Fetch(err, "dubbing status")
	}

	switch pollResp.Status {
	case "dubbed":
		return api.DubbingPoll{Status: api.DubbingDone}, nil
	case "failed":
		return api.DubbingPoll{Status: api.DubbingFailed, Error: pollResp.Error}, nil
	default:
		// "dubbing" and any unknown interim state count as still running.
		return api.DubbingPoll{Status: api.DubbingRunning}, nil
	}
}

// WaitForCompletion polls on the configured interval until the job is
// terminal or the attempt cap is hit. A timeout is fatal for the
// enclosing run and is not retried here.
func (d *DubbingClient) WaitForCompletion(ctx context.Context, jobID string) error {
	for attempt := 0; attempt < d.config.MaxPollAttempts; attempt++ {
		if attempt > 0 {
			d.sleep(d.config.PollInterval)
		}
		if err := ctx.Err(); err != nil {
			return apperrors.Fetch(err, "dubbing status")
		}

		poll, err := d.Poll(ctx, jobID)
		if err != nil {
			return err
		}
		switch poll.Status {
		case api.DubbingDone:
			return nil
		case api.DubbingFailed:
			return apperrors.Provider("elevenlabs", poll.Error)
		}
	}

	deadline := time.Duration(d.config.MaxPollAttempts) * d.config.PollInterval
	return apperrors.Timeout("dubbing", deadline.String())
}

// DownloadAudio fetches the dubbed audio for one target language.
func (d *DubbingClient) DownloadAudio(ctx context.Context, jobID, languageCode string) ([]byte, error) {
	url := fmt.Sprintf("%s/dubbing/%s/audio/%s", d.config.BaseURL, jobID, languageCode)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Fetch(err, "dubbed audio")
	}
	httpReq.Header.Set("xi-api-key", d.config.APIKey)

	resp, err := d.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.Fetch(err, "dubbed audio")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Fetch(apiError(resp), "dubbed audio")
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Fetch(err, "dubbed audio")
	}
	if len(audio) == 0 {
		return nil, apperrors.Provider("elevenlabs", "empty dubbed audio returned")
	}
	return audio, nil
}

func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := string(bytes.TrimSpace(body))
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("status %d: %s", resp.StatusCode, detail)
}
