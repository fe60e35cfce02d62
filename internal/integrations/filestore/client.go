package filestore

import (
	"context"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент облачного хранилища изображений (Cloudinary-совместимый
// upload API с подписанными запросами). Используется для чеков об оплате.
type Client struct {
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	enabled    bool
	httpClient *http.Client
	log        Logger
}

// uploadResponse ответ хранилища на загрузку
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient создает клиент файлового хранилища
func NewClient(cloudName, apiKey, apiSecret, folder string, enabled bool, timeout time.Duration, log Logger) *Client {
	return &Client{
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		folder:    folder,
		enabled:   enabled,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Upload загружает изображение и возвращает постоянный URL.
// publicID должен быть уникален в пределах папки (обычно "receipt_<bookingID>").
func (c *Client) Upload(ctx context.Context, image []byte, publicID string) (string, error) {
	if !c.enabled {
		return "", ErrDisabled
	}
	if len(image) == 0 {
		return "", ErrEmptyImage
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.cloudName)

	finalPublicID := publicID
	if c.folder != "" {
		finalPublicID = c.folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Upload API требует sha1 подпись параметров, отсортированных по ключу
	signaturePayload := fmt.Sprintf("public_id=%s&timestamp=%s%s", finalPublicID, timestamp, c.apiSecret)
	digest := sha1.Sum([]byte(signaturePayload))

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString(image))
	form.Add("api_key", c.apiKey)
	form.Add("public_id", finalPublicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", hex.EncodeToString(digest[:]))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("filestore: upload of %s rejected with status %d: %s",
			finalPublicID, resp.StatusCode, parsed.Error.Message)
		return "", fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode, parsed.Error.Message)
	}

	if parsed.SecureURL == "" {
		return "", fmt.Errorf("%w: response has no secure_url", ErrInvalidResponse)
	}

	c.log.Info("filestore: uploaded %s", parsed.PublicID)
	return parsed.SecureURL, nil
}
