package catalog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
)

const (
	// DefaultAPIBaseURL is the GitHub REST API root
	DefaultAPIBaseURL = "https://api.github.com"
	// DefaultOwner owns the plugin repository
	DefaultOwner = "minecraft1024a"
	// DefaultRepo holds plugin_details.json
	DefaultRepo = "MoFox-Plugin-Repo"
	// DefaultPath is the manifest path inside the repository
	DefaultPath = "plugin_details.json"
)

// Phase is a step of loading the catalogue
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFetching
	PhaseDecoding
	PhaseProcessing
	PhaseDone
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseFetching:
		return "fetching"
	case PhaseDecoding:
		return "decoding"
	case PhaseProcessing:
		return "processing"
	case PhaseDone:
		return "done"
	default:
		return "idle"
	}
}

// Message returns a human-readable progress line for the phase
func (p Phase) Message() string {
	switch p {
	case PhaseFetching:
		return "Fetching plugin list from GitHub API..."
	case PhaseDecoding:
		return "Decoding plugin data..."
	case PhaseProcessing:
		return "Processing plugin information..."
	case PhaseDone:
		return "Loading complete!"
	default:
		return "Fetching plugin list from GitHub..."
	}
}

// ReportFunc receives phase changes while a source is fetching
type ReportFunc func(Phase)

// Source produces the raw plugin records
type Source interface {
	Fetch(ctx context.Context, report ReportFunc) ([]RawRecord, error)
}

// ClientConfig configures the GitHub contents API client
type ClientConfig struct {
	// APIBaseURL is the API root, without trailing slash
	APIBaseURL string
	Owner      string
	Repo       string
	// Path is the file path inside the repository
	Path      string
	Timeout   time.Duration
	UserAgent string
}

// DefaultClientConfig returns the configuration for the public plugin repository
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		APIBaseURL: DefaultAPIBaseURL,
		Owner:      DefaultOwner,
		Repo:       DefaultRepo,
		Path:       DefaultPath,
		Timeout:    30 * time.Second,
		UserAgent:  "mofox-market",
	}
}

// URL returns the contents API endpoint for the configured file
func (c ClientConfig) URL() string {
	base := strings.TrimRight(c.APIBaseURL, "/")
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", base, c.Owner, c.Repo, strings.TrimPrefix(c.Path, "/"))
}

// Client fetches plugin_details.json through the GitHub contents API
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new contents API client
func NewClient(config ClientConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// contentEnvelope is the contents API response body
type contentEnvelope struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	SHA      string `json:"sha"`
}

// Fetch downloads, decodes and parses the plugin records
func (c *Client) Fetch(ctx context.Context, report ReportFunc) ([]RawRecord, error) {
	if report == nil {
		report = func(Phase) {}
	}

	report(PhaseFetching)
	url := c.config.URL()
	c.logger.Debug("fetching plugin manifest", zap.String("url", url))

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	report(PhaseDecoding)
	var envelope contentEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &ParseError{Stage: "envelope", Err: err}
	}

	payload, err := DecodeContent(envelope.Content)
	if err != nil {
		return nil, err
	}

	report(PhaseProcessing)
	records, err := ParseRecords(payload)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("plugin manifest decoded",
		zap.String("sha", envelope.SHA),
		zap.Int("records", len(records)),
	)
	return records, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Message: "request creation failed", Err: err}
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Message: "request failed", Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Message:    "failed to fetch plugin data",
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Message: "failed to read response", Err: err}
	}

	return data, nil
}

// DecodeContent decodes the base64 content field of a contents API
// response. GitHub wraps the text every 60 columns, so all whitespace is
// dropped before decoding.
func DecodeContent(content string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, content)

	data, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, &ParseError{Stage: "base64", Err: err}
	}
	return data, nil
}

// ParseRecords parses UTF-8 JSON text holding an array of raw records
func ParseRecords(payload []byte) ([]RawRecord, error) {
	var records []RawRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, &ParseError{Stage: "json", Err: err}
	}
	if records == nil {
		records = []RawRecord{}
	}
	return records, nil
}
