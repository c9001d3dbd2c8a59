package testparser

import "testing"

func TestRegistryGetParser(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	tests := []struct {
		runner string
		want   string
	}{
		{"pytest", "pytest"},
		{"python", "pytest"},
		{"py", "pytest"},
		{"PYTEST", "pytest"},
		{"unittest", "unittest"},
	}

	for _, tt := range tests {
		p := r.GetParser(tt.runner)
		if p == nil {
			t.Errorf("GetParser(%q) = nil", tt.runner)
			continue
		}
		if p.Name() != tt.want {
			t.Errorf("GetParser(%q).Name() = %q, want %q", tt.runner, p.Name(), tt.want)
		}
	}

	if r.GetParser("jest") != nil {
		t.Errorf("GetParser(jest) should be nil")
	}
}

func TestRegistryRegisterParser(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	custom := &UnittestParser{}
	r.RegisterParser("Custom", custom)

	if r.GetParser("custom") != custom {
		t.Errorf("custom parser not registered case-insensitively")
	}
}

func TestTestCountsAdd(t *testing.T) {
	t.Parallel()

	var agg TestCounts
	agg.Add(&TestCounts{Passed: 8, Total: 8, Parsed: true})
	agg.Add(&TestCounts{Failed: 3, Total: 3, Parsed: true, FailedTests: []FailedTest{{Name: "t"}}})
	agg.Add(nil)
	agg.Add(&TestCounts{}) // unparsed, should not reset Parsed

	if agg.Passed != 8 || agg.Failed != 3 || agg.Total != 11 {
		t.Errorf("aggregate = %+v", agg)
	}
	if !agg.Parsed {
		t.Errorf("Parsed should stay true")
	}
	if len(agg.FailedTests) != 1 {
		t.Errorf("len(FailedTests) = %d, want 1", len(agg.FailedTests))
	}
}
