// Package imagehost uploads event images to an external hosting API and
// falls back to stock images per category when the upload cannot happen.
package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"eventsphere/internal/lib/logger/sl"
)

var defaultImages = map[string]string{
	"music":      "https://www.goodmedicinemusic.com/wp-content/uploads/2018/04/10_Hundred-Waters_Music-Hall-of-Williamsburg.jpg",
	"conference": "https://media.licdn.com/dms/image/v2/D4D12AQFxuo8CWk6qIg/article-cover_image-shrink_720_1280/article-cover_image-shrink_720_1280/0/1681980612057?e=2147483647&v=beta&t=f9M7hoyYpXFYlLmwfvzCWg4qyzF6ixX36j3jIOnCfa0",
	"sport":      "https://www.coe.int/documents/24916852/0/Supporters3.jpg",
	"theatre":    "https://res.cloudinary.com/simpleview/image/upload/v1645649075/clients/fairfax-redesign/Events_Capital_One_Hall_943397d7-a016-412c-8c28-3f722f2a26ea.png",
	"workshop":   "https://images.stockcake.com/public/c/1/6/c16363bd-4aec-4b52-a658-97b792e336a5_large/team-coding-session-stockcake.jpg",
	"festival":   "/static/images/default_festival.jpg",
}

const genericDefaultImage = "/static/images/default_generic.jpg"

// DefaultImage returns the stock image URL for a category.
func DefaultImage(category string) string {
	if url, ok := defaultImages[strings.ToLower(category)]; ok {
		return url
	}
	return genericDefaultImage
}

type Client struct {
	log      *slog.Logger
	client   *http.Client
	endpoint string
	key      string
}

func New(log *slog.Logger, endpoint, key string) *Client {
	return &Client{
		log:      log,
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: endpoint,
		key:      key,
	}
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Status int `json:"status"`
}

// Upload posts the image and returns its public URL.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	const op = "imagehost.Upload"

	if c.key == "" {
		return "", fmt.Errorf("%s: api key is not configured", op)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if _, err = part.Write(data); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+c.key, &body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %d", op, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var parsed uploadResponse
	if err = json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if parsed.Data.URL == "" {
		return "", fmt.Errorf("%s: response contains no url", op)
	}

	return parsed.Data.URL, nil
}

// UploadOrDefault never fails: upload errors are logged and swallowed, and
// the category's stock image is used instead. Passing no image data skips
// the upload entirely.
func (c *Client) UploadOrDefault(ctx context.Context, category, filename string, data []byte) string {
	if len(data) == 0 {
		return DefaultImage(category)
	}

	url, err := c.Upload(ctx, filename, data)
	if err != nil {
		c.log.Warn("image upload failed, using default image", sl.Err(err))
		return DefaultImage(category)
	}

	return url
}
