package db

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hjs-ah/portfolio/internal/domain"
)

func TestMerge(t *testing.T) {
	cases := []struct {
		name     string
		dst      map[string]any
		src      map[string]any
		expected map[string]any
	}{
		{
			name:     "absent fields are kept",
			dst:      map[string]any{"name": "Antone", "title": "Writer"},
			src:      map[string]any{"name": "A. H."},
			expected: map[string]any{"name": "A. H.", "title": "Writer"},
		},
		{
			name:     "empty values overwrite",
			dst:      map[string]any{"socialLinks": map[string]any{"linkedin": "https://linkedin.com/in/a"}},
			src:      map[string]any{"socialLinks": map[string]any{"linkedin": ""}},
			expected: map[string]any{"socialLinks": map[string]any{"linkedin": ""}},
		},
		{
			name: "nested maps are merged",
			dst:  map[string]any{"socialLinks": map[string]any{"medium": "m", "behance": "b"}},
			src:  map[string]any{"socialLinks": map[string]any{"medium": "m2"}},
			expected: map[string]any{"socialLinks": map[string]any{
				"medium":  "m2",
				"behance": "b",
			}},
		},
		{
			name:     "nil destination",
			dst:      nil,
			src:      map[string]any{"order": int64(1)},
			expected: map[string]any{"order": int64(1)},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.expected, Merge(c.dst, c.src)); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	var p domain.Profile
	err := Decode(map[string]any{
		"name":        "Antone",
		"socialLinks": map[string]any{"medium": "https://medium.com/@antoneh"},
	}, &p)
	if err != nil {
		t.Fatal(err)
	}

	expected := domain.Profile{
		Name:        "Antone",
		SocialLinks: domain.SocialLinks{Medium: "https://medium.com/@antoneh"},
	}
	if diff := cmp.Diff(expected, p); diff != "" {
		t.Error(diff)
	}

	var c domain.Creation
	if err = Decode(map[string]any{"order": float64(4), "imageUrl": "u"}, &c); err != nil {
		t.Fatal(err)
	}
	if c.Order != 4 {
		t.Errorf("expected order 4, got %d", c.Order)
	}
}

func TestDecodeInvalidFields(t *testing.T) {
	cases := []struct {
		name     string
		data     map[string]any
		out      any
		expected any
	}{
		{
			name:     "non numeric order",
			data:     map[string]any{"title": "Sunset", "imageUrl": "u", "order": "abc"},
			out:      &domain.Creation{},
			expected: &domain.Creation{Title: "Sunset", ImageURL: "u"},
		},
		{
			name:     "social links are not a map",
			data:     map[string]any{"name": "Antone", "socialLinks": "https://medium.com/@antoneh"},
			out:      &domain.Profile{},
			expected: &domain.Profile{Name: "Antone"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := Decode(c.data, c.out); err == nil {
				t.Error("expected the invalid field to be reported")
			}
			if diff := cmp.Diff(c.expected, c.out); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestSub(t *testing.T) {
	got := Collection("portfolio").Sub("content", "books")
	if got != "portfolio/content/books" {
		t.Errorf("unexpected path %s", got)
	}
}
