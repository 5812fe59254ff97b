package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lenslate/lenslate/internal/httpc"
)

const providerGemini = "gemini"

// DefaultGeminiBaseURL is the Gemini API endpoint prefix.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultGeminiModel is a fast, inexpensive model suited to per-frame OCR.
const DefaultGeminiModel = "gemini-2.0-flash"

// ocrPrompt keeps the model on task: plain text out, nothing added.
const ocrPrompt = "Extract all readable text from this image exactly as written. " +
	"Return only the extracted text with no commentary. " +
	"If the image contains no readable text, return an empty response."

// GeminiConfig holds configuration for the Gemini recognizer.
type GeminiConfig struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// BaseURL overrides the API endpoint prefix. Used by tests.
	BaseURL string

	// Model overrides the default vision model.
	Model string

	// Timeout bounds each recognition request.
	Timeout time.Duration

	// Logger is the structured logger. Defaults to slog.Default().
	Logger *slog.Logger
}

// Gemini recognizes text by sending the frame to the Gemini vision API.
type Gemini struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
	logger  *slog.Logger
}

// NewGemini creates a Gemini recognizer.
func NewGemini(cfg GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = httpc.DefaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Gemini{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		http:    httpc.NewClient(timeout),
		logger:  logger.With("component", "ocr.gemini"),
	}, nil
}

// Recognize reads the image file and asks the vision model for its text.
func (g *Gemini) Recognize(ctx context.Context, imagePath string) (Result, error) {
	imageData, err := os.ReadFile(imagePath)
	if err != nil {
		return Result{}, WrapError(providerGemini, fmt.Errorf("%w: %v", ErrImageUnreadable, err))
	}

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": ocrPrompt},
					{"inline_data": map[string]string{
						"mime_type": "image/jpeg",
						"data":      base64.StdEncoding.EncodeToString(imageData),
					}},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.0,
			"maxOutputTokens": 1000,
		},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return Result{}, WrapError(providerGemini, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return Result{}, WrapError(providerGemini, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.http.Do(req)
	if err != nil {
		return Result{}, WrapError(providerGemini, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return Result{}, g.parseError(resp.StatusCode, bodyBytes)
	}

	var result geminiResponse
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return Result{}, WrapError(providerGemini, fmt.Errorf("decode response: %w", err))
	}

	if result.Error.Message != "" {
		return Result{}, &APIError{StatusCode: result.Error.Code, Message: result.Error.Message, Provider: providerGemini}
	}

	text := ""
	if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
		text = strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	}

	g.logger.Debug("frame recognized",
		"image_bytes", len(imageData),
		"text_chars", len(text),
		"latency_ms", time.Since(start).Milliseconds())

	// No candidates or empty text both mean a frame without readable text.
	return Result{Text: text}, nil
}

// parseError extracts the API error body into the package taxonomy.
func (g *Gemini) parseError(status int, body []byte) error {
	var errResp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	json.Unmarshal(body, &errResp)

	message := errResp.Error.Message
	if message == "" {
		message = truncate(string(body), 200)
	}
	return &APIError{StatusCode: status, Message: message, Provider: providerGemini}
}

// geminiResponse is the response structure from the Gemini API.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// truncate shortens a string to maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
