package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBlobServer(t *testing.T, objects map[string][]byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path[1:]
		switch r.Method {
		case "PUT":
			data, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			objects[key] = data
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			fmt.Fprintf(w, `{"url": "https://blob.example.com/%s"}`, key)
		case "HEAD":
			if _, ok := objects[key]; !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
		case "GET":
			data, ok := objects[key]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write(data)
		}
	}))
}

func TestBlobClientPut(t *testing.T) {
	objects := map[string][]byte{}
	srv := newBlobServer(t, objects)
	defer srv.Close()

	client := NewBlobClient(srv.URL, "token", 5*time.Second)
	url, err := client.Put(context.Background(), "slide-abc.html", []byte("<html></html>"), "text/html; charset=utf-8")
	require.NoError(t, err)

	// 优先使用响应中的URL
	assert.Equal(t, "https://blob.example.com/slide-abc.html", url)
	assert.Equal(t, []byte("<html></html>"), objects["slide-abc.html"])
}

func TestBlobClientPutBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewBlobClient(srv.URL, "secret", 5*time.Second)
	url, err := client.Put(context.Background(), "k.html", []byte("x"), "text/html")
	require.NoError(t, err)

	// 响应无URL时按约定构造
	assert.Equal(t, srv.URL+"/k.html", url)
}

func TestBlobClientPutServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewBlobClient(srv.URL, "t", 5*time.Second)
	_, err := client.Put(context.Background(), "k.html", []byte("x"), "text/html")
	assert.Error(t, err)
}

func TestBlobClientHead(t *testing.T) {
	objects := map[string][]byte{"exists.html": []byte("x")}
	srv := newBlobServer(t, objects)
	defer srv.Close()

	client := NewBlobClient(srv.URL, "t", 5*time.Second)

	ok, err := client.Head(context.Background(), "exists.html")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.Head(context.Background(), "missing.html")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBlobClientGet(t *testing.T) {
	objects := map[string][]byte{"exists.html": []byte("<html>内容</html>")}
	srv := newBlobServer(t, objects)
	defer srv.Close()

	client := NewBlobClient(srv.URL, "t", 5*time.Second)

	data, err := client.Get(context.Background(), "exists.html")
	require.NoError(t, err)
	assert.Equal(t, objects["exists.html"], data)

	_, err = client.Get(context.Background(), "missing.html")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestBlobClientPublicURL(t *testing.T) {
	client := NewBlobClient("https://blob.example.com/", "t", time.Second)
	assert.Equal(t, "https://blob.example.com/slide-x.html", client.PublicURL("slide-x.html"))
}
