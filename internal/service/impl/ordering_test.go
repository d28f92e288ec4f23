package core

import (
	"encoding/json"
	"testing"

	"github.com/hjs-ah/portfolio/internal/db"
)

func docs(orders ...any) []db.Document {
	d := make([]db.Document, 0, len(orders))
	for _, o := range orders {
		data := map[string]any{"title": "x"}
		if o != nil {
			data["order"] = o
		}
		d = append(d, db.Document{Data: data})
	}
	return d
}

func TestNextOrder(t *testing.T) {
	cases := []struct {
		name     string
		docs     []db.Document
		expected int64
	}{
		{"empty collection", nil, 1},
		{"single item", docs(int64(1)), 2},
		{"gaps are not filled", docs(int64(1), int64(2), int64(4)), 5},
		{"unsorted", docs(int64(7), int64(3)), 8},
		{"decoded from JSON", docs(float64(3), float64(1)), 4},
		{"json number", docs(json.Number("9")), 10},
		{"missing order counts as zero", docs(nil), 1},
		{"missing order with negatives", docs(int64(-5), nil), 1},
		{"only negatives", docs(int64(-5)), -4},
		{"non numeric", docs("abc", int64(2)), 3},
		{"numeric string", docs("6"), 7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NextOrder(c.docs); got != c.expected {
				t.Errorf("expected %d, got %d", c.expected, got)
			}
		})
	}
}
