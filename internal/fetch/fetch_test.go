package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "hello")
	assert.Equal(t, "text/html", result.ContentType)
}

func TestURL_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "503")
	// The result is still returned for callers that want the body.
	require.NotNil(t, result)
	assert.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	tests := []string{"", "not-a-url", "://missing-scheme"}
	for _, u := range tests {
		_, err := URL(context.Background(), u, nil)
		assert.Error(t, err, "url %q", u)
	}
}

func TestExtractMainText_PrefersContentSelectors(t *testing.T) {
	html := `<html><body>
		<nav>navigation junk</nav>
		<div class="sidebar">ads</div>
		<div class="job-description">Build Go services. Own the deploy pipeline.</div>
		<footer>footer junk</footer>
	</body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())

	require.NoError(t, err)
	assert.Contains(t, text, "Build Go services.")
	assert.NotContains(t, text, "navigation junk")
	assert.NotContains(t, text, "ads")
	assert.NotContains(t, text, "footer junk")
}

func TestExtractMainText_FallsBackToBody(t *testing.T) {
	html := `<html><body><script>var x = 1;</script><p>Plain paragraph text.</p></body></html>`

	text, err := ExtractMainText(html, JobPostingSelectors())

	require.NoError(t, err)
	assert.Contains(t, text, "Plain paragraph text.")
	assert.NotContains(t, text, "var x")
}

func TestExtractMainText_CleansWhitespace(t *testing.T) {
	html := "<html><body><main>  line one  \n\n\n   line two   </main></body></html>"

	text, err := ExtractMainText(html, []string{"main"})

	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", text)
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Backend Engineer", ExtractTitle("<html><head><title> Backend Engineer </title></head><body></body></html>"))
	assert.Equal(t, "", ExtractTitle("<html><body>no title</body></html>"))
}
