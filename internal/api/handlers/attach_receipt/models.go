package attach_receipt

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// AttachReceiptRequest HTTP request model.
// Изображение передается как base64 (допускается data URI префикс).
type AttachReceiptRequest struct {
	Image string `json:"image"`
}

// DecodeImage декодирует base64 изображение из запроса
func (r *AttachReceiptRequest) DecodeImage() ([]byte, error) {
	payload := r.Image

	// Отрезаем data URI префикс вида "data:image/jpeg;base64,"
	if idx := strings.Index(payload, ","); idx != -1 {
		payload = payload[idx+1:]
	}

	if payload == "" {
		return nil, fmt.Errorf("empty image payload")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image: %w", err)
	}

	return data, nil
}
