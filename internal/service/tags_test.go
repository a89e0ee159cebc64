package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Pr0ject-X/px-valet/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseTags(t *testing.T) {
	got := ReleaseTags([]string{"latest", "7", "7.2-alpine", "", "6.2", "rc-1"})
	assert.Equal(t, []string{"latest", "7", "6.2"}, got)
}

func TestHubTagLister(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/repositories/redis/tags", r.URL.Path)
		_, _ = w.Write([]byte(`[{"name":"latest"},{"name":"7"},{"name":"7-alpine"}]`))
	}))
	defer srv.Close()

	lister := NewHubTagLister(srv.Client(), srv.URL+"/v1/repositories/")
	tags, err := lister.Tags(context.Background(), "redis")
	require.NoError(t, err)
	assert.Equal(t, []string{"latest", "7"}, tags)
}

func TestHubTagListerNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	tags, err := NewHubTagLister(srv.Client(), srv.URL).Tags(context.Background(), "mysql")
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestHubTagListerBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewHubTagLister(srv.Client(), srv.URL).Tags(context.Background(), "mysql")
	require.Error(t, err)

	var tagErr *TagError
	require.ErrorAs(t, err, &tagErr)
	assert.Equal(t, "mysql", tagErr.Image)
	assert.Contains(t, err.Error(), "unable to load the image tags for mysql package")
}

func TestTolerantSwallowsErrors(t *testing.T) {
	lister := Tolerant(stubTags{err: errors.New("dial tcp: timeout")}, logger.Nop())

	tags, err := lister.Tags(context.Background(), "redis")
	assert.NoError(t, err)
	assert.Empty(t, tags)
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage("redis"))
	assert.NoError(t, ValidateImage("mailhog/mailhog"))
	assert.Error(t, ValidateImage("Not An Image"))
}
