package keywords

import (
	"reflect"
	"testing"
)

func TestFrequencyCounts(t *testing.T) {
	f := NewFrequency([]string{"go", "redis", "go", "go", "kafka", "redis"})

	if f.Len() != 3 {
		t.Fatalf("expected 3 unique tokens, got %d", f.Len())
	}
	if got := f.Count("go"); got != 3 {
		t.Fatalf("expected go count 3, got %d", got)
	}
	if got := f.Count("absent"); got != 0 {
		t.Fatalf("expected zero for absent token, got %d", got)
	}
	if !f.Has("kafka") || f.Has("absent") {
		t.Fatalf("Has misreports membership")
	}
}

func TestFrequencyTokensKeepFirstOccurrenceOrder(t *testing.T) {
	f := NewFrequency([]string{"vision", "learning", "vision", "design"})

	expect := []string{"vision", "learning", "design"}
	if got := f.Tokens(); !reflect.DeepEqual(got, expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}
}

func TestFrequencyTopN(t *testing.T) {
	tokens := make([]string, 0, 25)
	appendN := func(token string, n int) {
		for i := 0; i < n; i++ {
			tokens = append(tokens, token)
		}
	}
	appendN("vision", 11)
	appendN("learning", 9)
	appendN("design", 5)

	f := NewFrequency(tokens)

	top := f.TopN(2)
	expect := []Keyword{{Token: "vision", Count: 11}, {Token: "learning", Count: 9}}
	if !reflect.DeepEqual(top, expect) {
		t.Fatalf("expected %v, got %v", expect, top)
	}

	if got := f.TopN(0); got != nil {
		t.Fatalf("expected nil for non-positive n, got %v", got)
	}
}

func TestFrequencyTopNBreaksTiesByFirstOccurrence(t *testing.T) {
	f := NewFrequency([]string{"beta", "alpha", "beta", "alpha", "zeta"})

	top := f.TopN(3)
	expect := []Keyword{
		{Token: "beta", Count: 2},
		{Token: "alpha", Count: 2},
		{Token: "zeta", Count: 1},
	}
	if !reflect.DeepEqual(top, expect) {
		t.Fatalf("expected %v, got %v", expect, top)
	}
}
