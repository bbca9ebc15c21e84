package optionvalue_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-crmkit/pkg/optionvalue"
)

func TestComputeFromLabel(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{label: "Status", want: "STATUS"},
		{label: "2nd Priority", want: "OPT2ND_PRIORITY"},
		{label: "2 Items", want: "OPT2_ITEMS"},
		{label: "in_progress", want: "IN_PROGRESS"},
		{label: "_private", want: "_PRIVATE"},
		{label: "  Spaced  Out ", want: "SPACED_OUT"},
		{label: "Crème brûlée", want: "CREME_BRULEE"},
		{label: "Größe", want: "GROSSE"},
		{label: "Q&A / Support", want: "Q_A_SUPPORT"},
		{label: "OPT2ND_PRIORITY", want: "OPT2ND_PRIORITY"},
	}

	for _, tc := range cases {
		got, err := optionvalue.ComputeFromLabel(tc.label)
		if err != nil {
			t.Fatalf("ComputeFromLabel(%q) unexpected error: %v", tc.label, err)
		}
		if got != tc.want {
			t.Fatalf("ComputeFromLabel(%q) = %q, want %q", tc.label, got, tc.want)
		}
	}
}

func TestComputeFromLabel_Invalid(t *testing.T) {
	for _, label := range []string{"", "@@@", "   ", "日本語", "!9 lives", strings.Repeat("a", 64)} {
		value, err := optionvalue.ComputeFromLabel(label)
		if err == nil {
			t.Fatalf("ComputeFromLabel(%q) expected error, got %q", label, value)
		}
		if value != "" {
			t.Fatalf("ComputeFromLabel(%q) returned a value alongside an error: %q", label, value)
		}
		if !errors.Is(err, optionvalue.ErrInvalidLabel) {
			t.Fatalf("expected ErrInvalidLabel, got %v", err)
		}
		var invalid *optionvalue.InvalidLabelError
		if !errors.As(err, &invalid) {
			t.Fatalf("expected *InvalidLabelError, got %T", err)
		}
		if invalid.Label != label {
			t.Fatalf("expected error to carry label %q, got %q", label, invalid.Label)
		}
	}
}

func TestComputeFromLabel_Idempotent(t *testing.T) {
	for _, label := range []string{"Status", "2nd Priority", "Crème brûlée", "a b c", "9"} {
		first, err := optionvalue.ComputeFromLabel(label)
		if err != nil {
			t.Fatalf("ComputeFromLabel(%q) unexpected error: %v", label, err)
		}
		second, err := optionvalue.ComputeFromLabel(first)
		if err != nil {
			t.Fatalf("ComputeFromLabel(%q) unexpected error: %v", first, err)
		}
		if first != second {
			t.Fatalf("expected idempotent result for %q: %q then %q", label, first, second)
		}
		if !optionvalue.IsValid(first) {
			t.Fatalf("expected %q to be a valid option value", first)
		}
	}
}

func TestComputeFromLabel_ConformantLabelsAreUppercased(t *testing.T) {
	for _, label := range []string{"status", "Open_Issue", "x1", "__a__b"} {
		got, err := optionvalue.ComputeFromLabel(label)
		if err != nil {
			t.Fatalf("ComputeFromLabel(%q) unexpected error: %v", label, err)
		}
		if got != strings.ToUpper(label) {
			t.Fatalf("ComputeFromLabel(%q) = %q, want %q", label, got, strings.ToUpper(label))
		}
	}
}

func TestComputeFromLabel_NeverLeadingDigit(t *testing.T) {
	for _, label := range []string{"0", "1st", "2 Items", "3é", "42_answer", "7 -- 8"} {
		got, err := optionvalue.ComputeFromLabel(label)
		if err != nil {
			t.Fatalf("ComputeFromLabel(%q) unexpected error: %v", label, err)
		}
		if got[0] >= '0' && got[0] <= '9' {
			t.Fatalf("ComputeFromLabel(%q) = %q starts with a digit", label, got)
		}
		if !strings.HasPrefix(got, optionvalue.DigitPrefix) {
			t.Fatalf("ComputeFromLabel(%q) = %q missing %s prefix", label, got, optionvalue.DigitPrefix)
		}
	}
}

func TestComputeFromLabel_Concurrent(t *testing.T) {
	labels := []string{"Status", "2nd Priority", "Crème brûlée", "@@@"}
	want := make([]string, len(labels))
	for i, label := range labels {
		want[i], _ = optionvalue.ComputeFromLabel(label)
	}

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for worker := range results {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			out := make([]string, len(labels))
			for i, label := range labels {
				out[i], _ = optionvalue.ComputeFromLabel(label)
			}
			results[worker] = out
		}(worker)
	}
	wg.Wait()

	for _, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("concurrent results mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !optionvalue.IsValid("STATUS") {
		t.Fatalf("expected STATUS to be valid")
	}
	if optionvalue.IsValid("status") {
		t.Fatalf("expected lowercase value to be invalid")
	}
	if optionvalue.IsValid("2ND") {
		t.Fatalf("expected leading digit to be invalid")
	}
}
