package parse

import (
	"testing"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

func TestSuggestPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.Priority
		ok   bool
	}{
		{name: "urgent keyword", text: "Fix prod outage ASAP", want: domain.PriorityHigh, ok: true},
		{name: "deadline keyword", text: "deadline for grant application", want: domain.PriorityHigh, ok: true},
		{name: "low-signal keyword", text: "maybe repaint the fence", want: domain.PriorityLow, ok: true},
		{name: "urgent outranks low", text: "urgent: consider rollback", want: domain.PriorityHigh, ok: true},
		{name: "no signal", text: "water the plants", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SuggestPriority(tt.text)
			if ok != tt.ok {
				t.Fatalf("SuggestPriority(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("SuggestPriority(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
