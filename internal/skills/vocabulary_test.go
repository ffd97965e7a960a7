package skills

import "testing"

func TestVocabularyContainsBuiltinSkills(t *testing.T) {
	v := NewVocabulary()

	for _, skill := range []string{"aws", "pytorch", "c++", "postgres", "devops"} {
		if !v.Contains(skill) {
			t.Fatalf("expected vocabulary to contain %q", skill)
		}
	}

	if v.Contains("experience") {
		t.Fatalf("generic words must not be skills")
	}
}

func TestVocabularyExtendNormalizes(t *testing.T) {
	v := NewVocabulary()
	before := v.Len()

	v.Extend("  Zustand ", "", "zig")

	if v.Len() != before+2 {
		t.Fatalf("expected %d skills, got %d", before+2, v.Len())
	}
	if !v.Contains("zustand") || !v.Contains("zig") {
		t.Fatalf("extended skills missing")
	}
}

func TestVocabularyAllIsSorted(t *testing.T) {
	v := NewVocabulary()
	all := v.All()

	if len(all) != v.Len() {
		t.Fatalf("expected %d entries, got %d", v.Len(), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("entries not sorted at %d: %q >= %q", i, all[i-1], all[i])
		}
	}
}
