package todo

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			"pending with everything",
			Item{Priority: "A", CreationDate: dayPtr(t, "2024-01-01"), Description: "Call dentist +health @phone due:2024-08-30"},
			"(A) 2024-01-01 Call dentist +health @phone due:2024-08-30",
		},
		{
			"pending bare",
			Item{Description: "water the plants"},
			"water the plants",
		},
		{
			"completed with date",
			Item{Completed: true, CompletionDate: dayPtr(t, "2024-06-01"), Description: "pay rent"},
			"x 2024-06-01 pay rent",
		},
		{
			"completed without date",
			Item{Completed: true, Description: "pay rent"},
			"x pay rent",
		},
		{
			// Priority and creation date are dropped once completed.
			"completed drops priority and creation date",
			Item{Completed: true, Priority: "A", CreationDate: dayPtr(t, "2024-01-01"), CompletionDate: dayPtr(t, "2024-06-01"), Description: "pay rent"},
			"x 2024-06-01 pay rent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	lines := []string{
		"(A) 2024-01-01 Call dentist +health @phone due:2024-08-30",
		"x 2024-06-01 pay rent @home",
		"(B) plan trip +travel",
		"2024-03-15 water the plants",
		"just some text",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			if got := Parse(line).String(); got != line {
				t.Errorf("Parse(%q).String() = %q", line, got)
			}
		})
	}
}

func TestRoundTrip_CompletedAsymmetry(t *testing.T) {
	// A completed item that still carries priority and creation date in
	// memory serializes without them; reparsing its output yields an
	// item without those fields.
	item := Parse("(A) 2024-01-01 Call dentist")
	item.ToggleCompletion(day(t, "2024-06-10"))

	reparsed := Parse(item.String())
	if !reparsed.Completed {
		t.Error("reparsed Completed = false, want true")
	}
	if reparsed.Priority != "" {
		t.Errorf("reparsed Priority = %q, want empty", reparsed.Priority)
	}
	if reparsed.CreationDate != nil {
		t.Errorf("reparsed CreationDate = %v, want nil", reparsed.CreationDate)
	}
	if reparsed.CompletionDate == nil || !reparsed.CompletionDate.Equal(day(t, "2024-06-10")) {
		t.Errorf("reparsed CompletionDate = %v, want 2024-06-10", reparsed.CompletionDate)
	}
	if got, want := reparsed.Description, "Call dentist"; got != want {
		t.Errorf("reparsed Description = %q, want %q", got, want)
	}
}
