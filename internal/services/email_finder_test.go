package services

import "testing"

func TestFindEmail(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		found bool
	}{
		{"empty", "", "", false},
		{"none", "no contact details here", "", false},
		{"lowercased", "Contact: Jane.Doe@CMRIT.ac.in", "jane.doe@cmrit.ac.in", true},
		{"first wins", "a@cmrit.ac.in or b@gmail.com", "a@cmrit.ac.in", true},
		{"first by position", "x b@gmail.com then a@cmrit.ac.in", "b@gmail.com", true},
		{"hyphenated domain", "me@my-school.edu.in", "me@my-school.edu.in", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindEmail(tt.text)
			if ok != tt.found || got != tt.want {
				t.Fatalf("FindEmail(%q) = %q, %v; want %q, %v", tt.text, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestFindName(t *testing.T) {
	if got := FindName("Name: Priya Sharma\nEmail: p@cmrit.ac.in"); got != "Priya Sharma" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := FindName("just a resume"); got != UnknownName {
		t.Fatalf("expected %q, got %q", UnknownName, got)
	}
	if got := FindName(""); got != UnknownName {
		t.Fatalf("expected %q, got %q", UnknownName, got)
	}
}

func TestEmailAllowed(t *testing.T) {
	if !EmailAllowed("a@cmrit.ac.in", "@cmrit.ac.in") {
		t.Fatalf("expected allowed")
	}
	if !EmailAllowed("A@CMRIT.AC.IN", "@cmrit.ac.in") {
		t.Fatalf("expected case-insensitive match")
	}
	if EmailAllowed("a@gmail.com", "@cmrit.ac.in") {
		t.Fatalf("expected rejection")
	}
}
