package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"campusconnect-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/site/data/events.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(eventsJSON))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL+"/site/", time.Second)

	data, err := src.Fetch(context.Background(), "./data/events.json")
	require.NoError(t, err)
	assert.JSONEq(t, eventsJSON, string(data))

	_, err = src.Fetch(context.Background(), "data/gallery.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestDirSource(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "data", "events.json"), []byte(eventsJSON), 0o600))

	src := NewDirSource(root)

	data, err := src.Fetch(context.Background(), "data/events.json")
	require.NoError(t, err)
	assert.JSONEq(t, eventsJSON, string(data))

	_, err = src.Fetch(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument(models.ResourceEvents, []byte(eventsJSON)))
	assert.NoError(t, ValidateDocument(models.ResourceContacts, []byte(`{"staff":[{"name":"Dr. Rao"}],"students":[]}`)))

	err := ValidateDocument(models.ResourceGallery, []byte(`{"gallery":[{"id":1},{"id":1}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate id 1")

	assert.Error(t, ValidateDocument(models.ResourceEvents, []byte(`{"events":{}}`)))
	assert.ErrorIs(t, ValidateDocument("news", []byte(`{}`)), models.ErrUnknownResource)
}
