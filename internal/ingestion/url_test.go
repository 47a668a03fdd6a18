package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Platform Engineer</title></head>
			<body><main>Kubernetes and Terraform required.</main></body></html>`))
	}))
	defer srv.Close()

	posting, err := FromURL(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, srv.URL, posting.URL)
	assert.Equal(t, "Platform Engineer", posting.Title)
	assert.Contains(t, posting.Text, "Kubernetes and Terraform required.")
}

func TestFromURL_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}

func TestFromURL_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><script>spa()</script></body></html>`))
	}))
	defer srv.Close()

	_, err := FromURL(context.Background(), srv.URL)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrContentExtractionFailed)
}
