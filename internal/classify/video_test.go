package classify

import (
	"strings"
	"testing"
)

func TestResolveVideoComplexityPriority(t *testing.T) {
	keywords := ExtractVideoKeywords("Caching deep-dive", "advanced techniques for intermediate developers")
	if got := ResolveVideoComplexity(keywords); got != ComplexityAdvanced {
		t.Fatalf("expected advanced to win over intermediate, got %s", got)
	}
}

func TestResolveVideoComplexityDefaultsBeginner(t *testing.T) {
	if got := ResolveVideoComplexity(nil); got != ComplexityBeginner {
		t.Fatalf("expected beginner default, got %s", got)
	}
}

func TestResolveVideoContentTypeOrder(t *testing.T) {
	tests := []struct {
		title string
		want  VideoContentType
	}{
		{"Tutorial and review of the new checkout", VideoTutorial},
		{"Honest review of the release", VideoReview},
		{"Setup guide for the B2B suite", VideoGuide},
		{"Conference keynote recording", VideoInformational},
		{"How-to: custom glue endpoints", VideoTutorial},
	}
	for _, tt := range tests {
		keywords := ExtractVideoKeywords(tt.title, "")
		if got := ResolveVideoContentType(keywords); got != tt.want {
			t.Fatalf("title %q: expected %s, got %s", tt.title, tt.want, got)
		}
	}
}

func TestExtractVideoKeywordsOrder(t *testing.T) {
	got := ExtractVideoKeywords("Cloud programming tutorial", "beginner friendly")
	want := []string{"tutorial", "beginner", "programming", "cloud"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestClassifyVideoDirective(t *testing.T) {
	got := ClassifyVideo("Advanced Spryker tutorial", "deep-dive into the publish and sync mechanism", "Spryker")
	if got.ContentType != VideoTutorial {
		t.Fatalf("expected tutorial, got %s", got.ContentType)
	}
	if got.Complexity != ComplexityAdvanced {
		t.Fatalf("expected advanced, got %s", got.Complexity)
	}
	if !strings.Contains(got.Directive, "experienced engineers") {
		t.Fatalf("expected advanced framing in directive, got %q", got.Directive)
	}
	if !strings.Contains(got.Directive, "learn to build") {
		t.Fatalf("expected tutorial instruction in directive, got %q", got.Directive)
	}
}
