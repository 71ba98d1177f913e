package provider

import (
	"TUI_video_downloader/internal/core/domain"
	"TUI_video_downloader/internal/core/ports"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/google/uuid"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	formatsPath  = "/api/formats"
	downloadPath = "/api/download"

	requestIDHeader = "X-Request-ID"
)

type formatsRequest struct {
	URL string `json:"url"`
}

type formatsProvider struct {
	baseURL string
	client  *http.Client
	log     ports.LoggerPort
}

func NewFormatsProvider(baseURL string, client *http.Client, logger ports.LoggerPort) ports.FormatsPort {
	if client == nil {
		client = http.DefaultClient
	}

	return &formatsProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     logger,
	}
}

func (p *formatsProvider) GetFormats(ctx context.Context, videoURL string) (domain.VideoInfo, error) {
	payload, err := json.Marshal(formatsRequest{URL: videoURL})
	if err != nil {
		return domain.VideoInfo{}, fmt.Errorf("error while encoding formats request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+formatsPath, bytes.NewReader(payload))
	if err != nil {
		return domain.VideoInfo{}, fmt.Errorf("error while building formats request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	p.log.Info(fmt.Sprintf("POST %s (request %s)", formatsPath, requestID))

	//realizando a chamada para o backend
	resp, err := p.client.Do(req)
	if err != nil {
		return domain.VideoInfo{}, fmt.Errorf("error in call formats api (request %s): %w", requestID, err)
	}
	defer resp.Body.Close()

	//qualquer status fora da faixa 2xx é falha, independente do corpo
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.VideoInfo{}, fmt.Errorf("formats api rejected request %s: %w", requestID,
			&domain.StatusError{StatusCode: resp.StatusCode, Status: resp.Status})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.VideoInfo{}, fmt.Errorf("error while reading formats response (request %s): %w", requestID, err)
	}

	info, err := parseVideoInfo(body)
	if err != nil {
		return domain.VideoInfo{}, fmt.Errorf("error while parsing formats response (request %s): %w", requestID, err)
	}

	p.log.Info(fmt.Sprintf("Request %s completed with %d formats", requestID, len(info.Formats)))

	return info, nil
}

// DownloadURL builds the backend link that streams the chosen format. The
// parameter order is part of the contract.
func (p *formatsProvider) DownloadURL(videoURL, formatID string) string {
	return p.baseURL + downloadPath +
		"?url=" + encodeComponent(videoURL) +
		"&format_id=" + encodeComponent(formatID)
}

// encodeComponent escapes a query value, spaces included, as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
