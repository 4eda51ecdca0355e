package identity

import "testing"

func TestDocumentIDIsStableAndScoped(t *testing.T) {
	a := DocumentID("service", "Photography")
	b := DocumentID("service", " photography ")
	if a != b {
		t.Fatalf("expected normalized keys to match, got %s and %s", a, b)
	}
	if a == DocumentID("project", "photography") {
		t.Fatal("expected different types to produce different ids")
	}
	if UUID("  ").String() != "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected nil uuid for blank key")
	}
}
