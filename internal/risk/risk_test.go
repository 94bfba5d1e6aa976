package risk

import (
	"reflect"
	"strings"
	"testing"

	"github.com/theirongolddev/pdash/internal/model"
)

func TestParse_KeywordRisks(t *testing.T) {
	got := Parse("Delay in material delivery, Permit issue")
	want := []model.RiskEntry{
		{Description: "Delay in material delivery", Severity: model.SeverityHigh},
		{Description: "Permit issue", Severity: model.SeverityHigh},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %+v, want %+v", got, want)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", ",", " , ,, "} {
		got := Parse(raw)
		if got == nil {
			t.Fatalf("Parse(%q) returned nil, want empty slice", raw)
		}
		if len(got) != 0 {
			t.Errorf("Parse(%q) = %+v, want empty", raw, got)
		}
	}
}

func TestParse_MixedSeverity(t *testing.T) {
	got := Parse("Weather delay, Minor cosmetic fix")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Severity != model.SeverityHigh {
		t.Errorf("%q severity = %s, want High", got[0].Description, got[0].Severity)
	}
	if got[1].Severity != model.SeverityLow {
		t.Errorf("%q severity = %s, want Low", got[1].Description, got[1].Severity)
	}
}

func TestParse_KeepsOrderAndDuplicates(t *testing.T) {
	got := Split("b, a,, b ,c")
	want := []string{"b", "a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Split = %q, want %q", got, want)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		desc string
		want model.Severity
	}{
		{"Steel SHORTAGE expected", model.SeverityHigh},
		{"permitting backlog", model.SeverityHigh},
		{"Known Issues with vendor", model.SeverityHigh},
		{"Delayed handover", model.SeverityHigh},
		{"Minor cosmetic fix", model.SeverityLow},
		{"", model.SeverityLow},
	}
	for _, tt := range tests {
		if got := Classify(tt.desc); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.desc, got, tt.want)
		}
	}
}

func TestKeywordsIsCopy(t *testing.T) {
	k := Keywords()
	k[0] = "mutated"
	if Classify("schedule delay") != model.SeverityHigh {
		t.Fatal("mutating Keywords() result changed classification")
	}
}

func TestSplit_JoinedListRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		in   []string
	}{
		{"two", []string{"Delay in material delivery", "Permit issue"}},
		{"duplicates", []string{"Weather", "Weather", "Labor shortage", "Weather"}},
		{"single", []string{"Funding freeze"}},
		{"mixed severity", []string{"Minor signage", "Contractor strike", "Permit backlog"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joined := strings.Join(tt.in, ", ")
			if got := Split(joined); !reflect.DeepEqual(got, tt.in) {
				t.Fatalf("Split(%q) = %q, want %q", joined, got, tt.in)
			}
			entries := Parse(joined)
			if len(entries) != len(tt.in) {
				t.Fatalf("Parse(%q) returned %d entries, want %d", joined, len(entries), len(tt.in))
			}
			for i, e := range entries {
				if e.Description != tt.in[i] {
					t.Errorf("entry %d = %q, want %q", i, e.Description, tt.in[i])
				}
				if want := Classify(tt.in[i]); e.Severity != want {
					t.Errorf("entry %d severity = %s, want %s", i, e.Severity, want)
				}
			}
		})
	}
}
