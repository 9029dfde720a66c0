package serviceImp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tubeplan/pkg/apierr"
	"tubeplan/pkg/reference/repositoryImp"
	"tubeplan/pkg/reference/service"
	"tubeplan/pkg/testutil"
)

func TestChunkText(t *testing.T) {
	line := strings.Repeat("a", 9) + "\n"
	text := strings.Repeat(line, 5)
	parts := chunkText(text, 20)
	require.Len(t, parts, 3)
	assert.Equal(t, text, strings.Join(parts, ""))
	assert.Empty(t, chunkText("   ", 20))
}

func TestIngestAndSearch(t *testing.T) {
	s := New(repositoryImp.New(testutil.DB(t)), nil, 0)

	_, n, err := s.Ingest("Grinder guide", "gear", "Burr grinders beat blade grinders.\nA good grinder matters more than the machine.", "https://example.com/g")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, _, err = s.Ingest("Milk notes", "milk", "Steam milk to 60C for sweetness.", "")
	require.NoError(t, err)

	hits, err := s.Search("Grinder!", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Grinder guide", hits[0].DocTitle)
	assert.Equal(t, "https://example.com/g", hits[0].SourceURL)
	assert.Equal(t, 3.0, hits[0].Score)

	hits, err = s.Search("latte", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)

	docs, err := s.Related("milk grinder", 5)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Grinder guide", docs[0].Title)
}

func TestIngestValidates(t *testing.T) {
	s := New(repositoryImp.New(testutil.DB(t)), nil, 0)
	_, _, err := s.Ingest(" ", "", "text", "")
	assert.ErrorIs(t, err, apierr.ErrValidation)
	_, _, err = s.Ingest("title", "", "", "")
	assert.ErrorIs(t, err, apierr.ErrValidation)
}

func TestIngestURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Tamping 101</title></head><body>
			<nav><li>Home</li></nav>
			<main><h1>Tamping</h1><p>Tamp level, not hard.</p><li>Use a distributor</li></main>
		</body></html>`))
	}))
	defer srv.Close()

	s := New(repositoryImp.New(testutil.DB(t)), []string{"127.0.0.1"}, 0)
	doc, n, err := s.IngestURL(srv.URL+"/tamping", "", "technique")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Tamping 101", doc.Title)

	hits, err := s.Search("distributor", 3)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.NotContains(t, hits[0].Text, "Home")
	assert.Contains(t, hits[0].Text, "Tamp level, not hard.")
}

func TestIngestURLRejects(t *testing.T) {
	s := New(repositoryImp.New(testutil.DB(t)), []string{"example.com"}, 0)

	_, _, err := s.IngestURL("https://evil.test/page", "", "")
	assert.ErrorIs(t, err, service.ErrDomainNotAllowed)

	_, _, err = s.IngestURL("ftp://example.com/file", "", "")
	assert.ErrorIs(t, err, service.ErrFetch)
}

func TestIngestURLRedirects(t *testing.T) {
	secret := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("INTERNAL SECRET metadata"))
	}))
	defer secret.Close()
	secretURL := strings.Replace(secret.URL, "127.0.0.1", "localhost", 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/away":
			http.Redirect(w, r, secretURL+"/secret", http.StatusFound)
		case "/moved":
			http.Redirect(w, r, "/final", http.StatusMovedPermanently)
		case "/loop":
			http.Redirect(w, r, "/loop", http.StatusFound)
		default:
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("Bloom the puck for thirty seconds."))
		}
	}))
	defer srv.Close()

	s := New(repositoryImp.New(testutil.DB(t)), []string{"127.0.0.1"}, 0)

	_, _, err := s.IngestURL(srv.URL+"/away", "", "")
	assert.ErrorIs(t, err, service.ErrDomainNotAllowed)
	hits, err := s.Search("secret", 3)
	require.NoError(t, err)
	assert.Empty(t, hits)

	_, _, err = s.IngestURL(srv.URL+"/loop", "", "")
	assert.ErrorIs(t, err, service.ErrFetch)

	_, n, err := s.IngestURL(srv.URL+"/moved", "Bloom", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
