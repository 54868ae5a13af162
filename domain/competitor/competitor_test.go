package competitor

import "testing"

func TestNewCompetitor(t *testing.T) {
	c := NewCompetitor("Acme Rewards")

	if c.ID() != 0 {
		t.Errorf("ID() = %d, want 0 for new competitor", c.ID())
	}
	if c.Name() != "Acme Rewards" {
		t.Errorf("Name() = %q", c.Name())
	}
	if c.HasSummary() {
		t.Error("HasSummary() should be false for new competitor")
	}
	if c.Summary() != "" {
		t.Errorf("Summary() = %q, want empty", c.Summary())
	}
}

func TestReconstructCompetitor(t *testing.T) {
	tests := []struct {
		name       string
		summary    *string
		wantText   string
		wantHasSum bool
	}{
		{"null summary", nil, "", false},
		{"empty summary", ptr(""), "", true},
		{"written summary", ptr("- earns points"), "- earns points", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ReconstructCompetitor(7, "Acme", tt.summary)
			if c.ID() != 7 {
				t.Errorf("ID() = %d, want 7", c.ID())
			}
			if c.Summary() != tt.wantText {
				t.Errorf("Summary() = %q, want %q", c.Summary(), tt.wantText)
			}
			if c.HasSummary() != tt.wantHasSum {
				t.Errorf("HasSummary() = %v, want %v", c.HasSummary(), tt.wantHasSum)
			}
		})
	}
}

func TestCompetitor_WithSummary(t *testing.T) {
	c := NewCompetitor("Acme")
	c2 := c.WithSummary("new summary")

	if !c2.HasSummary() || c2.Summary() != "new summary" {
		t.Errorf("WithSummary result = %q, hasSummary %v", c2.Summary(), c2.HasSummary())
	}
	if c.HasSummary() {
		t.Error("original value should be unchanged")
	}
}

func TestCompetitor_WithID(t *testing.T) {
	c := NewCompetitor("Acme")
	c2 := c.WithID(42)

	if c2.ID() != 42 {
		t.Errorf("WithID result ID() = %d, want 42", c2.ID())
	}
	if c.ID() != 0 {
		t.Errorf("original ID() = %d, want 0 (value type should be unchanged)", c.ID())
	}
}

func ptr(s string) *string { return &s }
