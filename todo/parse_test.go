package todo

import "testing"

func TestParse_FullLine(t *testing.T) {
	item := Parse("(A) 2024-01-01 Call dentist +health @phone due:2024-08-30")

	if item.Completed {
		t.Error("Completed = true, want false")
	}
	if item.Priority != "A" {
		t.Errorf("Priority = %q, want %q", item.Priority, "A")
	}
	if item.CreationDate == nil || !item.CreationDate.Equal(day(t, "2024-01-01")) {
		t.Errorf("CreationDate = %v, want 2024-01-01", item.CreationDate)
	}
	if item.CompletionDate != nil {
		t.Errorf("CompletionDate = %v, want nil", item.CompletionDate)
	}
	if got, want := item.Description, "Call dentist +health @phone due:2024-08-30"; got != want {
		t.Errorf("Description = %q, want %q", got, want)
	}
	if got := item.Projects(); !equalStrings(got, []string{"health"}) {
		t.Errorf("Projects() = %v, want [health]", got)
	}
	if got := item.Contexts(); !equalStrings(got, []string{"phone"}) {
		t.Errorf("Contexts() = %v, want [phone]", got)
	}
	if due := item.DueDate(); due == nil || !due.Equal(day(t, "2024-08-30")) {
		t.Errorf("DueDate() = %v, want 2024-08-30", due)
	}
}

func TestParse_CompletedLine(t *testing.T) {
	item := Parse("x 2024-06-01 pay rent @home")

	if !item.Completed {
		t.Error("Completed = false, want true")
	}
	if item.CompletionDate == nil || !item.CompletionDate.Equal(day(t, "2024-06-01")) {
		t.Errorf("CompletionDate = %v, want 2024-06-01", item.CompletionDate)
	}
	if item.CreationDate != nil {
		t.Errorf("CreationDate = %v, want nil", item.CreationDate)
	}
	if got, want := item.Description, "pay rent @home"; got != want {
		t.Errorf("Description = %q, want %q", got, want)
	}
}

func TestParse_CompletedWithBothDates(t *testing.T) {
	// After a completion date is consumed, the next date is NOT treated
	// as a creation date; it stays in the description.
	item := Parse("x 2024-06-01 2024-05-20 pay rent")

	if item.CompletionDate == nil || !item.CompletionDate.Equal(day(t, "2024-06-01")) {
		t.Errorf("CompletionDate = %v, want 2024-06-01", item.CompletionDate)
	}
	if item.CreationDate != nil {
		t.Errorf("CreationDate = %v, want nil", item.CreationDate)
	}
	if got, want := item.Description, "2024-05-20 pay rent"; got != want {
		t.Errorf("Description = %q, want %q", got, want)
	}
}

func TestParse_MalformedCompletionDate(t *testing.T) {
	item := Parse("x 2024-13-45 bad date test")

	if !item.Completed {
		t.Error("Completed = false, want true")
	}
	if item.CompletionDate != nil {
		t.Errorf("CompletionDate = %v, want nil", item.CompletionDate)
	}
	if item.CreationDate != nil {
		t.Errorf("CreationDate = %v, want nil", item.CreationDate)
	}
	if got, want := item.Description, "2024-13-45 bad date test"; got != want {
		t.Errorf("Description = %q, want %q", got, want)
	}
}

func TestParse_MalformedDueDate(t *testing.T) {
	item := Parse("ship release due:2024-02-31")

	if due := item.DueDate(); due != nil {
		t.Errorf("DueDate() = %v, want nil", due)
	}
	if got, want := item.Description, "ship release due:2024-02-31"; got != want {
		t.Errorf("Description = %q, want %q", got, want)
	}
}

func TestParse_Degraded(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		completed   bool
		priority    string
		description string
	}{
		{"empty", "", false, "", ""},
		{"whitespace only", "   \t ", false, "", ""},
		{"plain text", "water the plants", false, "", "water the plants"},
		{"lowercase priority not consumed", "(a) do it", false, "", "(a) do it"},
		{"priority without trailing space", "(A)do it", false, "", "(A)do it"},
		{"x without space is text", "xylophone practice", false, "", "xylophone practice"},
		{"capital X is text", "X 2024-06-01 done?", false, "", "X 2024-06-01 done?"},
		{"date without trailing space stays", "2024-01-01", false, "", "2024-01-01"},
		{"completed bare", "x done thing", true, "", "done thing"},
		{"priority after x", "x (B) finished", true, "B", "finished"},
		{"surrounding whitespace trimmed", "  (C) tidy desk  ", false, "C", "tidy desk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Parse(tt.raw)
			if item.Completed != tt.completed {
				t.Errorf("Completed = %v, want %v", item.Completed, tt.completed)
			}
			if item.Priority != tt.priority {
				t.Errorf("Priority = %q, want %q", item.Priority, tt.priority)
			}
			if item.Description != tt.description {
				t.Errorf("Description = %q, want %q", item.Description, tt.description)
			}
		})
	}
}

func TestParse_DuplicateTokensPreserved(t *testing.T) {
	item := Parse("ping +work then ping +work again @desk @desk")

	if got := item.Projects(); !equalStrings(got, []string{"work", "work"}) {
		t.Errorf("Projects() = %v, want [work work]", got)
	}
	if got := item.Contexts(); !equalStrings(got, []string{"desk", "desk"}) {
		t.Errorf("Contexts() = %v, want [desk desk]", got)
	}
}

func TestParse_FirstDueTokenWins(t *testing.T) {
	item := Parse("pay rent due:2024-06-10 then again due:2024-07-01")

	if due := item.DueDate(); due == nil || !due.Equal(day(t, "2024-06-10")) {
		t.Errorf("DueDate() = %v, want 2024-06-10", due)
	}
}

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"strips all tokens", "Call dentist +health @phone due:2024-08-30", "Call dentist"},
		{"no tokens", "water the plants", "water the plants"},
		{"tokens only", "+work @desk due:2024-06-10", ""},
		{"interspersed", "buy +home paint @store soon", "buy paint soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Parse(tt.raw)
			if got := item.CleanDescription(); got != tt.want {
				t.Errorf("CleanDescription() = %q, want %q", got, tt.want)
			}
		})
	}
}
