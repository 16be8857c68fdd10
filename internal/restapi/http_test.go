package restapi

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rankboard.worldstats.org/internal/app"
	"rankboard.worldstats.org/internal/appconf"
	"rankboard.worldstats.org/internal/dataset"
	"rankboard.worldstats.org/internal/logging"
	"rankboard.worldstats.org/internal/models"
)

// createTestApi creates a new RestAPI instance with a dataset manager initialized for use in tests.
func createTestApi(t *testing.T) *RestAPI {
	datasetConfig := dataset.Config{
		DataSource: "../../testdata",
		DBPath:     ":memory:",
		Env:        appconf.Test,
	}
	dataManager, err := dataset.InitDatasetManager(datasetConfig)
	require.NoError(t, err)
	t.Cleanup(dataManager.Shutdown)

	app := &app.Application{
		Config: appconf.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		DatasetConfig: datasetConfig,
		Logger:        slog.Default(),
		DataManager:   dataManager,
	}

	api := &RestAPI{Application: app}

	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// serveAndRetrieveRaw fetches an endpoint without decoding, for non-JSON
// responses like charts.
func serveAndRetrieveRaw(t *testing.T, endpoint string) (*http.Response, []byte) {
	api := createTestApi(t)
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

// entryFromResponse digs the entry map out of a decoded response envelope.
func entryFromResponse(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response data should contain an entry object")
	return entry
}

// listFromResponse digs the list out of a decoded response envelope.
func listFromResponse(t *testing.T, model models.ResponseModel) []interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be an object")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "response data should contain a list")
	return list
}

func TestCompressionMiddleware(t *testing.T) {
	// Create a test handler that returns a large response
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Write a large response that would benefit from compression
		w.Header().Set("Content-Type", "application/json")
		largeResponse := strings.Repeat(`{"test": "data"}`, 1000)
		_, _ = w.Write([]byte(largeResponse))
	})

	t.Run("compresses response when gzip accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		recorder := httptest.NewRecorder()

		handler := CompressionMiddleware(testHandler)
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))

		// Verify we can decompress the response
		reader, err := gzip.NewReader(bytes.NewReader(recorder.Body.Bytes()))
		require.NoError(t, err)
		defer func() { _ = reader.Close() }()

		decompressed, err := io.ReadAll(reader)
		require.NoError(t, err)

		expected := strings.Repeat(`{"test": "data"}`, 1000)
		assert.Equal(t, expected, string(decompressed))

		// Verify compression actually happened (compressed should be smaller)
		assert.Less(t, recorder.Body.Len(), len(expected))
	})

	t.Run("does not compress when gzip not accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		// No Accept-Encoding header

		recorder := httptest.NewRecorder()

		handler := CompressionMiddleware(testHandler)
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, recorder.Header().Get("Content-Encoding"))

		expected := strings.Repeat(`{"test": "data"}`, 1000)
		assert.Equal(t, expected, recorder.Body.String())
	})

	t.Run("handles empty responses", func(t *testing.T) {
		emptyHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		recorder := httptest.NewRecorder()

		handler := CompressionMiddleware(emptyHandler)
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})
}

func TestCompressionMiddlewareIntegration(t *testing.T) {
	api := createTestApi(t)

	t.Run("API responses are compressed when requested", func(t *testing.T) {
		mux := http.NewServeMux()
		api.SetRoutes(mux)
		server := httptest.NewServer(mux)
		defer server.Close()

		client := &http.Client{}
		req, err := http.NewRequest("GET", server.URL+"/api/rankboard/dashboard.json?key=TEST", nil)
		require.NoError(t, err)
		req.Header.Set("Accept-Encoding", "gzip")

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		// gzhttp may skip compression below the minimum size
		contentEncoding := resp.Header.Get("Content-Encoding")
		if contentEncoding == "gzip" {
			reader, err := gzip.NewReader(resp.Body)
			require.NoError(t, err)
			defer func() { _ = reader.Close() }()

			decompressed, err := io.ReadAll(reader)
			require.NoError(t, err)
			assert.Contains(t, string(decompressed), `"code":200`)
		} else {
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), `"code":200`)
		}
	})
}

func TestCompressionConfig(t *testing.T) {
	t.Run("default config has sensible values", func(t *testing.T) {
		config := DefaultCompressionConfig()
		assert.Equal(t, 1024, config.MinSize)
		assert.Equal(t, 6, config.Level)
	})

	t.Run("custom config is applied", func(t *testing.T) {
		config := CompressionConfig{
			MinSize: 2048,
			Level:   9,
		}

		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			largeResponse := strings.Repeat(`{"test": "data"}`, 500)
			_, _ = w.Write([]byte(largeResponse))
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")

		recorder := httptest.NewRecorder()

		middleware := NewCompressionMiddleware(config)
		handler := middleware(testHandler)
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	})
}
