package objectstorage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client клиент объектного хранилища изображений
// Один запрос на загрузку, без повторов
type Client struct {
	baseURL    string
	publicURL  string
	apiKey     string
	maxSize    int64
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента хранилища
// Если publicURL пуст, публичные ссылки строятся от baseURL
func NewClient(baseURL, publicURL, apiKey string, maxSize int64, timeout time.Duration, log Logger) *Client {
	if publicURL == "" {
		publicURL = baseURL
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
		apiKey:    apiKey,
		maxSize:   maxSize,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Upload загружает изображение и возвращает его публичный URL
func (c *Client) Upload(ctx context.Context, obj Object) (string, error) {
	if c.maxSize > 0 && int64(len(obj.Data)) > c.maxSize {
		return "", fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(obj.Data), c.maxSize)
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(obj.Data)
	}
	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	name := uuid.NewString() + ext
	if obj.Prefix != "" {
		name = strings.Trim(obj.Prefix, "/") + "/" + name
	}
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, obj.Bucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(obj.Data))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", contentType)
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
	case http.StatusRequestEntityTooLarge:
		return "", ErrPayloadTooLarge
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Message)
		}
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	public := fmt.Sprintf("%s/%s/%s", c.publicURL, obj.Bucket, name)
	c.log.Info("ObjectStorage: uploaded bucket=%s object=%s size=%d", obj.Bucket, name, len(obj.Data))
	return public, nil
}
