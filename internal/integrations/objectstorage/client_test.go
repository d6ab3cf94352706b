package objectstorage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var pngHeader = []byte("\x89PNG\r\n\x1a\n0000")

func TestUpload(t *testing.T) {
	var gotPath, gotType, gotAuth string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewClient(server.URL, "https://cdn.example.com/", "secret", 1024, time.Second, nopLogger{})
	url, err := c.Upload(context.Background(), Object{Bucket: BucketProducts, Prefix: "products/3", Data: pngHeader})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotPath, "/products/products/3/"))
	assert.True(t, strings.HasSuffix(gotPath, ".png"))
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, pngHeader, gotBody)
	assert.Equal(t, "https://cdn.example.com"+gotPath, url)
}

func TestUpload_Rejects(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"statusCode":"500","error":"Internal","message":"bucket offline"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, "", "", 8, time.Second, nopLogger{})

	_, err := c.Upload(context.Background(), Object{Bucket: BucketAvatars, Data: make([]byte, 9)})
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	_, err = c.Upload(context.Background(), Object{Bucket: BucketAvatars, ContentType: "text/plain", Data: []byte("hi")})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	assert.Equal(t, 0, calls)

	_, err = c.Upload(context.Background(), Object{Bucket: BucketAvatars, ContentType: "image/jpeg", Data: []byte("jpg")})
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "bucket offline")
	assert.Equal(t, 1, calls, "upload must not be retried")
}
