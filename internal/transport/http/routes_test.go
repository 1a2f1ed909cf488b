package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"sudoku-classifier/internal/catalogue"
	"sudoku-classifier/pkg/config"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, &config.Config{Port: "8080", PuzzlesFile: "unused"})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("expected status ok, got %v", body["status"])
	}
}

func TestSolveHandlerAlreadySolved(t *testing.T) {
	r := newTestRouter()
	puzzle := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	w := doJSON(t, r, http.MethodPost, "/api/solve", `{"puzzle":"`+puzzle+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["solved"] != true {
		t.Fatalf("expected solved=true, got %v", body["solved"])
	}
	used, _ := body["used"].([]any)
	if len(used) != 0 {
		t.Fatalf("expected an empty used list for an already-solved puzzle, got %v", used)
	}
}

func TestSolveHandlerInvalidBoard(t *testing.T) {
	r := newTestRouter()
	puzzle := "11" + strings.Repeat(".", 79)
	w := doJSON(t, r, http.MethodPost, "/api/solve", `{"puzzle":"`+puzzle+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSolveHandlerMalformedBody(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodPost, "/api/solve", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestClassifyHandlerEasyClassic(t *testing.T) {
	r := newTestRouter()
	puzzle := "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	w := doJSON(t, r, http.MethodPost, "/api/classify", `{"puzzle":"`+puzzle+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["solved"] != true {
		t.Fatalf("expected solved=true, got %v", body["solved"])
	}
}

func TestClassifyHandlerUnsolvable(t *testing.T) {
	r := newTestRouter()
	puzzle := "000982000035100870800300059090015000002000600000620040900201003013006520000700000"
	w := doJSON(t, r, http.MethodPost, "/api/classify", `{"puzzle":"`+puzzle+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["unsolvable"] != true {
		t.Fatalf("expected unsolvable=true, got %v", body)
	}
}

func TestPuzzleHandlerNoCatalogueLoaded(t *testing.T) {
	if catalogue.Global() != nil {
		t.Skip("global catalogue already loaded by another test in this process")
	}

	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/puzzle/some-seed", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when no catalogue is loaded, got %d", w.Code)
	}
}
