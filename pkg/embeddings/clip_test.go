package embeddings

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulens/edulens/pkg/models"
	"github.com/edulens/edulens/pkg/testutils"
)

func newTestCLIPClient(t *testing.T, handler http.HandlerFunc) *CLIPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := testutils.NewTestConfig()
	cfg.Provider.ServerURL = server.URL
	cfg.Provider.MaxRetries = 0
	return NewCLIPClient(cfg)
}

func embeddingHandler(t *testing.T, vector models.EmbeddingVector) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		err := json.NewEncoder(w).Encode(map[string]any{"embedding": vector})
		assert.NoError(t, err)
	}
}

func TestCLIPClient(t *testing.T) {
	ctx := context.Background()
	vector := models.EmbeddingVector{1, 0, 0, 0, 0, 0, 0, 0}

	t.Run("EmbedImageSendsBase64Payload", func(t *testing.T) {
		payload := []byte("fake png bytes")
		var got struct {
			Model string `json:"model"`
			Image string `json:"image"`
		}
		client := newTestCLIPClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/embeddings/image", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"embedding": vector}))
		})

		result, err := client.EmbedImage(ctx, payload)
		require.NoError(t, err)
		assert.Equal(t, vector, result)
		assert.Equal(t, "ViT-B/32", got.Model)
		assert.Equal(t, base64.StdEncoding.EncodeToString(payload), got.Image)
	})

	t.Run("EmbedTextRoutesToTextEndpoint", func(t *testing.T) {
		client := newTestCLIPClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/embeddings/text", r.URL.Path)
			embeddingHandler(t, vector)(w, r)
		})

		result, err := client.EmbedText(ctx, "anatomical heart")
		require.NoError(t, err)
		assert.Equal(t, vector, result)
	})

	t.Run("EmptyInputsRejectedWithoutARequest", func(t *testing.T) {
		client := newTestCLIPClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := client.EmbedImage(ctx, nil)
		assert.ErrorIs(t, err, models.ErrEmbeddingFailed)

		_, err = client.EmbedText(ctx, "")
		assert.ErrorIs(t, err, models.ErrEmbeddingFailed)
	})

	t.Run("ServerErrorSurfacesAsEmbeddingError", func(t *testing.T) {
		client := newTestCLIPClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad image", http.StatusBadRequest)
		})

		_, err := client.EmbedText(ctx, "anatomical heart")
		assert.ErrorIs(t, err, models.ErrEmbeddingFailed)
		assert.ErrorContains(t, err, "400")
	})

	t.Run("WrongDimensionsRejected", func(t *testing.T) {
		client := newTestCLIPClient(t, embeddingHandler(t, models.EmbeddingVector{1, 0}))

		_, err := client.EmbedText(ctx, "anatomical heart")
		assert.ErrorIs(t, err, models.ErrDimensionMismatch)

		var mismatch *models.DimensionMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 8, mismatch.Want)
		assert.Equal(t, 2, mismatch.Got)
	})

	t.Run("MalformedResponseBody", func(t *testing.T) {
		client := newTestCLIPClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		})

		_, err := client.EmbedText(ctx, "anatomical heart")
		assert.ErrorIs(t, err, models.ErrEmbeddingFailed)
	})
}

func TestNewClient(t *testing.T) {
	t.Run("CLIPProvider", func(t *testing.T) {
		client, err := NewClient(testutils.NewTestConfig())
		require.NoError(t, err)
		assert.IsType(t, &CLIPClient{}, client)
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		cfg := testutils.NewTestConfig()
		cfg.Provider.Service = "mystery"
		_, err := NewClient(cfg)
		assert.Error(t, err)
	})
}
