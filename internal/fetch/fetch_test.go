package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><h1>Test</h1></body></html>"))
	}))
	defer server.Close()

	page, err := NewClient(time.Second).Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, server.URL, page.URL)
	assert.Contains(t, page.HTML, "<h1>Test</h1>")
	assert.Equal(t, http.StatusOK, page.StatusCode)
}

func TestGet_InvalidURL(t *testing.T) {
	for _, raw := range []string{"not-a-valid-url", "ftp://example.com/job", "http://"} {
		_, err := NewClient(0).Get(context.Background(), raw)
		require.Error(t, err, raw)

		var fetchErr *Error
		assert.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, err.Error(), "invalid URL")
	}
}

func TestGet_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	page, err := NewClient(time.Second).Get(context.Background(), server.URL)
	require.Error(t, err)
	require.NotNil(t, page)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestJobPosting_ExtractsDescription(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><body>
			<nav>Jobs Home</nav>
			<div class="job-description">
				<h2>Requirements</h2>
				<ul><li>5 years of experience in Go</li><li>Kubernetes</li></ul>
			</div>
			<form>Apply now</form>
		</body></html>`))
	}))
	defer server.Close()

	text, platform, err := NewClient(time.Second).JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, PlatformUnknown, platform)
	assert.Equal(t, "Requirements\n- 5 years of experience in Go\n- Kubernetes", text)
}

func TestJobPosting_PlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("Backend engineer, Go"))
	}))
	defer server.Close()

	text, _, err := NewClient(time.Second).JobPosting(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer, Go", text)
}

func TestJobPosting_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewClient(time.Second).JobPosting(ctx, server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractMainText_RemovesNoise(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<main>
				<h1>Main Content</h1>
				<p>This is the   important text.</p>
			</main>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Main Content\nThis is the important text.", text)
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><div>Some content here.</div></body></html>`, DefaultTextSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Some content here.", text)
}

func TestExtractMainText_CustomNoise(t *testing.T) {
	html := `<main><p>Keep</p><div class="eeo-statement">Equal opportunity</div></main>`

	text, err := ExtractMainText(html, DefaultTextSelectors(), NoiseSelectors(PlatformUnknown)...)
	require.NoError(t, err)
	assert.Equal(t, "Keep", text)
}
