package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := gin.New()
	r.GET("/", h)
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return resp
}

func TestCreated(t *testing.T) {
	w := serve(func(c *gin.Context) { Created(c, gin.H{"id": 1}) })
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if resp := decode(t, w); resp.Code != 0 || resp.Data == nil {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestConflict_AttachesRecord(t *testing.T) {
	w := serve(func(c *gin.Context) { Conflict(c, 17002, "already registered", gin.H{"email": "a@b.c"}) })
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := decode(t, w)
	if resp.Code != 17002 {
		t.Errorf("expected code 17002, got %d", resp.Code)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok || data["email"] != "a@b.c" {
		t.Errorf("expected conflicting record in data, got %v", resp.Data)
	}
}

func TestInternalError(t *testing.T) {
	w := serve(InternalError)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if resp := decode(t, w); resp.Code != 50000 {
		t.Errorf("expected code 50000, got %d", resp.Code)
	}
}
