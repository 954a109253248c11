package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("apikey"))

		assert.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "eng", r.FormValue("language"))

		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			file.Close()
			assert.Equal(t, "cat.jpg", header.Filename)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"ParsedResults": []map[string]interface{}{
				{"ParsedText": "2+2=?"},
			},
			"IsErroredOnProcessing": false,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "eng")
	text, err := client.ExtractText(context.Background(), []byte("jpeg-bytes"), "cat.jpg")

	require.NoError(t, err)
	assert.Equal(t, "2+2=?", text)
}

func TestExtractText_MultiplePages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ParsedResults": []map[string]interface{}{
				{"ParsedText": "first part"},
				{"ParsedText": "second part"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "")
	text, err := client.ExtractText(context.Background(), []byte("data"), "scan.png")

	require.NoError(t, err)
	assert.Equal(t, "first part\nsecond part", text)
}

func TestExtractText_EmptyResultIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ParsedResults": []map[string]interface{}{},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "")
	text, err := client.ExtractText(context.Background(), []byte("data"), "blank.png")

	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractText_ProcessingError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"IsErroredOnProcessing": true,
			"ErrorMessage":          []string{"Unable to recognize the file type"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "")
	_, err := client.ExtractText(context.Background(), []byte("data"), "broken.png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unable to recognize")
}

func TestExtractText_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", "")
	_, err := client.ExtractText(context.Background(), []byte("data"), "cat.jpg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestExtractText_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, "k", "")
	_, err := client.ExtractText(ctx, []byte("data"), "cat.jpg")
	require.Error(t, err)
}
