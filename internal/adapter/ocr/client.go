// Package ocr is the client for the external text-extraction API. The
// service takes image bytes plus a language hint and answers best-effort
// recognized text; accuracy and latency are entirely its problem.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.ocr.space/parse/image"

type Client struct {
	baseURL  string
	apiKey   string
	language string
	client   *http.Client
}

func NewClient(baseURL, apiKey, language string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if language == "" {
		language = "eng"
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type parsedResult struct {
	ParsedText string `json:"ParsedText"`
}

type parseResponse struct {
	ParsedResults         []parsedResult `json:"ParsedResults"`
	IsErroredOnProcessing bool           `json:"IsErroredOnProcessing"`
	// The API answers either a string or a list of strings here.
	ErrorMessage interface{} `json:"ErrorMessage"`
}

// ExtractText sends the image to the OCR service and returns the recognized
// text. An empty result is not an error; noisy or partial text is the
// caller's to deal with.
func (c *Client) ExtractText(ctx context.Context, image []byte, filename string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("building request body: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("building request body: %w", err)
	}
	if err := w.WriteField("language", c.language); err != nil {
		return "", fmt.Errorf("building request body: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("building request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &buf)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling OCR service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OCR service returned status %d", resp.StatusCode)
	}

	var parsed parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("OCR service failed to process image: %v", parsed.ErrorMessage)
	}

	var texts []string
	for _, res := range parsed.ParsedResults {
		if res.ParsedText != "" {
			texts = append(texts, res.ParsedText)
		}
	}
	return strings.TrimSpace(strings.Join(texts, "\n")), nil
}
