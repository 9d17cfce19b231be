package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"string detail", `{"detail":"Cita no encontrada"}`, "Cita no encontrada"},
		{"message fallback", `{"message":"Bad gateway"}`, "Bad gateway"},
		{"validation list", `{"detail":[{"loc":["body","nivel_animo"],"msg":"must be <= 10"}]}`, "nivel_animo: must be <= 10"},
		{"not json", `<html>oops</html>`, "Error saving appointment"},
		{"empty object", `{}`, "Error saving appointment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(http.StatusBadRequest, []byte(tt.body), "Error saving appointment")
			if got.Message != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got.Message)
			}
			if got.StatusCode != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", got.StatusCode)
			}
		})
	}
}

func TestDecode_DefaultFallback(t *testing.T) {
	got := Decode(http.StatusInternalServerError, nil, "")
	if got.Message != FallbackMessage {
		t.Errorf("expected %q, got %q", FallbackMessage, got.Message)
	}
}

func TestConnection(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Connection(cause)
	if err.Error() != ConnectionMessage {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrapped")
	}
}

func TestError_WritesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	got := Decode(rec.Code, rec.Body.Bytes(), "")
	if got.Message != "Resource not found" || !got.IsNotFound() {
		t.Errorf("unexpected decoded error: %+v", got)
	}
}
