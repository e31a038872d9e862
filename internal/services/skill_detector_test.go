package services

import (
	"reflect"
	"testing"
)

func TestSkillDetector_Detect(t *testing.T) {
	d := NewSkillDetector()

	got := d.Detect("Experienced in sql, PYTHON and react. Python again.")
	want := []string{"Python", "SQL", "React"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSkillDetector_EmptyText(t *testing.T) {
	d := NewSkillDetector()
	if got := d.Detect("   "); len(got) != 0 {
		t.Fatalf("expected no skills, got %v", got)
	}
}

func TestSkillDetector_SubsetOfVocabularyInOrder(t *testing.T) {
	d := NewSkillDetector()
	got := d.Detect("Leadership, Docker, JavaScript, Git, GitHub, Teamwork, Java")

	index := make(map[string]int, len(SkillVocabulary))
	for i, s := range SkillVocabulary {
		index[s] = i
	}

	seen := map[string]bool{}
	last := -1
	for _, s := range got {
		i, ok := index[s]
		if !ok {
			t.Fatalf("%q is not in the vocabulary", s)
		}
		if i <= last {
			t.Fatalf("skills out of vocabulary order: %v", got)
		}
		if seen[s] {
			t.Fatalf("duplicate skill %q", s)
		}
		seen[s] = true
		last = i
	}
	if !seen["Java"] || !seen["JavaScript"] || !seen["Git"] || !seen["GitHub"] {
		t.Fatalf("expected substring matches, got %v", got)
	}
}

func TestSkillDetector_DuplicateVocabulary(t *testing.T) {
	d := NewSkillDetectorWithVocabulary([]string{"Go", "Go", "Rust"})
	got := d.Detect("go and rust")
	if !reflect.DeepEqual(got, []string{"Go", "Rust"}) {
		t.Fatalf("unexpected %v", got)
	}
}

func TestFirstSkills(t *testing.T) {
	skills := []string{"A", "B", "C", "D"}
	if got := FirstSkills(skills, 3); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("unexpected %v", got)
	}
	if got := FirstSkills(skills[:2], 3); len(got) != 2 {
		t.Fatalf("unexpected %v", got)
	}
}
