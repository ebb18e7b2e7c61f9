package embeddings

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/edulens/edulens/config"
	"github.com/edulens/edulens/internal"
	"github.com/edulens/edulens/pkg/models"
)

const (
	imageEndpoint = "/embeddings/image"
	textEndpoint  = "/embeddings/text"
)

// CLIPClient talks to a CLIP inference sidecar over HTTP. The sidecar holds
// the pretrained model weights in memory; this client is stateless and safe
// for concurrent use.
type CLIPClient struct {
	serverURL  string
	model      string
	dimensions int
	httpClient *retryablehttp.Client
}

var _ models.EmbeddingClient = &CLIPClient{}

func NewCLIPClient(cfg *config.Config) *CLIPClient {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Provider.MaxRetries
	client.Logger = internal.NewLeveledLogrus(log)
	client.HTTPClient.Timeout = cfg.Provider.Timeout

	return &CLIPClient{
		serverURL:  cfg.Provider.ServerURL,
		model:      cfg.Provider.Model,
		dimensions: cfg.Provider.Dimensions,
		httpClient: client,
	}
}

type embeddingRequest struct {
	Model string `json:"model,omitempty"`
	Image string `json:"image,omitempty"`
	Text  string `json:"text,omitempty"`
}

type embeddingResponse struct {
	Embedding models.EmbeddingVector `json:"embedding"`
}

func (c *CLIPClient) EmbedImage(
	ctx context.Context,
	image []byte,
) (models.EmbeddingVector, error) {
	if len(image) == 0 {
		return nil, models.NewEmbeddingError("empty image payload", nil)
	}
	request := embeddingRequest{
		Model: c.model,
		Image: base64.StdEncoding.EncodeToString(image),
	}
	return c.embed(ctx, imageEndpoint, request)
}

func (c *CLIPClient) EmbedText(
	ctx context.Context,
	text string,
) (models.EmbeddingVector, error) {
	if text == "" {
		return nil, models.NewEmbeddingError("empty text", nil)
	}
	request := embeddingRequest{
		Model: c.model,
		Text:  text,
	}
	return c.embed(ctx, textEndpoint, request)
}

func (c *CLIPClient) embed(
	ctx context.Context,
	endpoint string,
	request embeddingRequest,
) (models.EmbeddingVector, error) {
	jsonBody, err := json.Marshal(request)
	if err != nil {
		return nil, models.NewEmbeddingError("marshal request body", err)
	}

	url := c.serverURL + endpoint
	req, err := retryablehttp.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return nil, models.NewEmbeddingError("create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewEmbeddingError("embedding server request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewEmbeddingError(
			fmt.Sprintf("embedding server returned %d - %s", resp.StatusCode, resp.Status),
			nil,
		)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewEmbeddingError("read response body", err)
	}

	var response embeddingResponse
	if err := json.Unmarshal(bodyBytes, &response); err != nil {
		return nil, models.NewEmbeddingError("unmarshal response body", err)
	}

	if len(response.Embedding) != c.dimensions {
		return nil, &models.DimensionMismatchError{
			Want: c.dimensions,
			Got:  len(response.Embedding),
		}
	}

	return response.Embedding, nil
}
