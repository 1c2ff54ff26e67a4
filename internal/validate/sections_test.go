// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"reflect"
	"testing"
)

func TestExtractSections(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantNames []string
		wantBody  map[string]string
	}{
		{
			name:      "single section",
			content:   "# Executive Summary\n\nThe company leads its market.\n",
			wantNames: []string{"Executive Summary"},
			wantBody:  map[string]string{"Executive Summary": "The company leads its market."},
		},
		{
			name:      "multiple depths start new sections",
			content:   "# Overview\nTop.\n## Detail\nNested.\n### Deeper\nMore.\n",
			wantNames: []string{"Overview", "Detail", "Deeper"},
			wantBody:  map[string]string{"Overview": "Top.", "Detail": "Nested.", "Deeper": "More."},
		},
		{
			name:      "text before first heading is discarded",
			content:   "Preamble text with no heading.\n\n# Analysis\nBody.\n",
			wantNames: []string{"Analysis"},
			wantBody:  map[string]string{"Analysis": "Body."},
		},
		{
			name:      "same title overwrites keeping original position",
			content:   "# Summary\nFirst.\n# Middle\nM.\n## Summary\nSecond.\n",
			wantNames: []string{"Summary", "Middle"},
			wantBody:  map[string]string{"Summary": "Second.", "Middle": "M."},
		},
		{
			name:      "bodies trimmed of surrounding blank lines",
			content:   "# A\n\n\nline one\nline two\n\n\n# B\nb\n",
			wantNames: []string{"A", "B"},
			wantBody:  map[string]string{"A": "line one\nline two", "B": "b"},
		},
		{
			name:      "empty document",
			content:   "",
			wantNames: nil,
		},
		{
			name:      "no headings at all",
			content:   "just prose\nacross lines\n",
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secs := ExtractSections(tt.content)
			if !reflect.DeepEqual(secs.Names(), tt.wantNames) {
				t.Fatalf("Names() = %v, want %v", secs.Names(), tt.wantNames)
			}
			for name, want := range tt.wantBody {
				got, ok := secs.Get(name)
				if !ok {
					t.Fatalf("section %q missing", name)
				}
				if got != want {
					t.Errorf("section %q = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestExtractSectionsIdempotent(t *testing.T) {
	content := "# Executive Summary\nIntro text.\n## Analysis\n- point\n## Recommendations\nDo things.\n"
	first := ExtractSections(content)
	second := ExtractSections(content)

	if !reflect.DeepEqual(first.Names(), second.Names()) {
		t.Fatalf("names differ between runs: %v vs %v", first.Names(), second.Names())
	}
	for _, name := range first.Names() {
		a, _ := first.Get(name)
		b, _ := second.Get(name)
		if a != b {
			t.Errorf("section %q differs between runs", name)
		}
	}
}
