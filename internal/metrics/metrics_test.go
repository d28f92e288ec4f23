package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSignIn(true)
	c.RecordSignIn(false)
	c.RecordSignIn(false)
	c.RecordOperation("books", "add", nil)
	c.RecordOperation("books", "add", errors.New("boom"))
	c.RecordOrphan()

	cases := []struct {
		name     string
		counter  prometheus.Collector
		expected float64
	}{
		{"successful sign ins", c.signIns.WithLabelValues("success"), 1},
		{"failed sign ins", c.signIns.WithLabelValues("failure"), 2},
		{"successful book adds", c.operations.WithLabelValues("books", "add", "success"), 1},
		{"failed book adds", c.operations.WithLabelValues("books", "add", "failure"), 1},
		{"orphans", c.orphans, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tc.counter); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordOperation("articles", "delete", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "portfolio_operations_total") {
		t.Error("response should contain portfolio_operations_total")
	}
}
