package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteResponse(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		body        string
		statusCode  int
	}{
		{
			name:        "JsonOK",
			contentType: ContentType.JSON,
			body:        `{"streak":3}`,
			statusCode:  http.StatusOK,
		},
		{
			name:        "TextCreated",
			contentType: ContentType.Text,
			body:        "added",
			statusCode:  http.StatusCreated,
		},
		{
			name:        "JsonBadRequest",
			contentType: ContentType.JSON,
			body:        `{"error":"no can do"}`,
			statusCode:  http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteResponse(rec, tc.contentType, tc.body, tc.statusCode)
			assert.Equal(t, tc.statusCode, rec.Code)
			assert.Equal(t, tc.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tc.body, rec.Body.String())
		})
	}
}

func TestWriteResponseBytes_EmptyContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteResponseBytes(rec, "", []byte("ok"), http.StatusOK)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Type"))
	assert.Equal(t, "ok", rec.Body.String())
}

func TestWriteResponseOKHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONResponseOK(rec, `{"onboarded":true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType.JSON, rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"onboarded":true}`, rec.Body.String())

	rec = httptest.NewRecorder()
	WriteTextResponseOK(rec, "logged-out")
	assert.Equal(t, ContentType.Text, rec.Header().Get("Content-Type"))
	assert.Equal(t, "logged-out", rec.Body.String())

	rec = httptest.NewRecorder()
	WriteResponseBytesOK(rec, ContentType.JSON, []byte(`[]`))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[]`, rec.Body.String())
}
