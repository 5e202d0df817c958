package parse

import "testing"

func TestStripDeadlinePhrase(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "by weekday",
			text: "Submit report by friday",
			want: "Submit report",
		},
		{
			name: "trailing tomorrow",
			text: "Call dentist tomorrow",
			want: "Call dentist",
		},
		{
			name: "in N weeks",
			text: "Book flights in 2 weeks",
			want: "Book flights",
		},
		{
			name: "iso date",
			text: "Pay taxes 2025-04-15",
			want: "Pay taxes",
		},
		{
			name: "short slash date",
			text: "Wrap gifts 12/25",
			want: "Wrap gifts",
		},
		{
			name: "month names stay",
			text: "Prepare the march 5 agenda",
			want: "Prepare the march 5 agenda",
		},
		{
			name: "no deadline phrase",
			text: "Water the plants",
			want: "Water the plants",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripDeadlinePhrase(tt.text); got != tt.want {
				t.Errorf("StripDeadlinePhrase(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
