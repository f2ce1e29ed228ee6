package export

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderStateless(t *testing.T) {
	h := NewHandler(nil)

	body := `{
		"canvas": {"width": 200, "height": 100},
		"shapes": [
			{"id": "c1", "type": "circle", "geometry": {"cx": 50, "cy": 50, "r": 20}}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Render(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Render status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want %q", ct, "image/svg+xml")
	}
	if !strings.Contains(rec.Body.String(), `<circle cx="50" cy="50" r="20" />`) {
		t.Errorf("rendered markup missing circle element: %s", rec.Body.String())
	}
}

func TestRenderRejectsInvalidDocument(t *testing.T) {
	h := NewHandler(nil)

	tests := map[string]struct {
		body string
		want int
	}{
		"malformed json": {
			body: `{"canvas":`,
			want: http.StatusBadRequest,
		},
		"missing shape id": {
			body: `{"canvas": {"width": 10, "height": 10}, "shapes": [{"type": "circle", "geometry": {"r": 1}}]}`,
			want: http.StatusBadRequest,
		},
		"fit on text shape": {
			body: `{"canvas": {"width": 10, "height": 10}, "shapes": [{"id": "t", "type": "text", "geometry": {"x": 1, "y": 1, "text": "hi"}, "fit": {"maxWidth": 5, "maxHeight": 5}}]}`,
			want: http.StatusUnprocessableEntity,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Render(rec, req)

			if rec.Code != tt.want {
				t.Errorf("Render status = %d, want %d, body: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRenderDownloadDisposition(t *testing.T) {
	h := NewHandler(nil)

	body := `{"canvas": {"width": 10, "height": 10}, "shapes": []}`
	req := httptest.NewRequest(http.MethodPost, "/render?download=1&name=my%20drawing!", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Render(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Render status = %d, want %d", rec.Code, http.StatusOK)
	}
	got := rec.Header().Get("Content-Disposition")
	want := `attachment; filename="my-drawing-.svg"`
	if got != want {
		t.Errorf("Content-Disposition = %q, want %q", got, want)
	}
}
