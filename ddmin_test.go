package ddmin_test

import (
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/coregx/ddmin"
)

// interestingOracle returns a ddmin.Test[rune] that reports Fail iff config
// contains every rune in need (spec.md §8's concrete scenario family: "the
// multiset of characters in C is a superset of some fixed interesting
// multiset"). Every call, assertion tests included, increments calls.
func interestingOracle(need []rune, calls *int64) ddmin.Test[rune] {
	return func(config []rune, id ddmin.ConfigID) (ddmin.Outcome, error) {
		atomic.AddInt64(calls, 1)
		remaining := append([]rune(nil), need...)
		for _, u := range config {
			for i, want := range remaining {
				if u == want {
					remaining = append(remaining[:i], remaining[i+1:]...)
					break
				}
			}
		}
		if len(remaining) == 0 {
			return ddmin.Fail, nil
		}
		return ddmin.Pass, nil
	}
}

func TestDDMINClassicExample(t *testing.T) {
	var calls int64
	test := interestingOracle([]rune{'8'}, &calls)
	config := []rune("12345678")

	got, err := ddmin.DDMIN(test, config, 2)
	if err != nil {
		t.Fatalf("DDMIN: %v", err)
	}
	if string(got) != "8" {
		t.Errorf("DDMIN = %q, want %q", string(got), "8")
	}
	if calls > 16 {
		t.Errorf("oracle called %d times, want <= 16", calls)
	}
}

func TestDDMINTwoCharacterInterest(t *testing.T) {
	var calls int64
	test := interestingOracle([]rune{'a', 'b'}, &calls)
	config := []rune("xaybz")

	got, err := ddmin.DDMIN(test, config, 2)
	if err != nil {
		t.Fatalf("DDMIN: %v", err)
	}
	if string(got) != "ab" {
		t.Errorf("DDMIN = %q, want %q (order preserved)", string(got), "ab")
	}
}

func TestDDMINAlreadyMinimal(t *testing.T) {
	var calls int64
	test := interestingOracle([]rune{'q'}, &calls)
	config := []rune("q")

	got, err := ddmin.DDMIN(test, config, 2)
	if err != nil {
		t.Fatalf("DDMIN: %v", err)
	}
	if string(got) != "q" {
		t.Errorf("DDMIN = %q, want %q", string(got), "q")
	}
	if calls != 1 {
		t.Errorf("oracle called %d times, want exactly 1 (the assertion test)", calls)
	}
}

func TestDDMINPreservesDuplicates(t *testing.T) {
	var calls int64
	test := func(config []rune, id ddmin.ConfigID) (ddmin.Outcome, error) {
		atomic.AddInt64(&calls, 1)
		n := 0
		for _, u := range config {
			if u == 'a' {
				n++
			}
		}
		if n >= 2 {
			return ddmin.Fail, nil
		}
		return ddmin.Pass, nil
	}
	config := []rune("abac")

	got, err := ddmin.DDMIN(test, config, 2)
	if err != nil {
		t.Fatalf("DDMIN: %v", err)
	}
	if string(got) != "aa" {
		t.Errorf("DDMIN = %q, want %q", string(got), "aa")
	}
}

func TestDDMINComplementFirstMatchesSubsetFirst(t *testing.T) {
	var calls int64
	test := interestingOracle([]rune{'a', 'b'}, &calls)
	config := []rune("xaybz")

	e, err := ddmin.NewEngine[rune](test, func() ddmin.Config[rune] {
		c := ddmin.DefaultConfig[rune]()
		c.SubsetFirst = false
		return c
	}())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	got, err := e.DDMIN(config, 2)
	if err != nil {
		t.Fatalf("DDMIN: %v", err)
	}
	if string(got) != "ab" {
		t.Errorf("DDMIN (complement-first) = %q, want %q", string(got), "ab")
	}
}

func TestDDMINCacheAvoidsRepeatCalls(t *testing.T) {
	var probeCalls int64 // every non-assert call: these are the ones the cache can save.
	test := func(config []rune, id ddmin.ConfigID) (ddmin.Outcome, error) {
		if !strings.Contains(id.String(), "assert") {
			atomic.AddInt64(&probeCalls, 1)
		}
		for _, u := range config {
			if u == '8' {
				return ddmin.Fail, nil
			}
		}
		return ddmin.Pass, nil
	}
	config := []rune("12345678")

	c := ddmin.DefaultConfig[rune]()
	e, err := ddmin.NewEngine[rune](test, c)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	first, err := e.DDMIN(append([]rune(nil), config...), 2)
	if err != nil {
		t.Fatalf("DDMIN (first run): %v", err)
	}
	if string(first) != "8" {
		t.Fatalf("first run = %q, want %q", string(first), "8")
	}

	before := atomic.LoadInt64(&probeCalls)
	second, err := e.DDMIN(append([]rune(nil), config...), 2)
	if err != nil {
		t.Fatalf("DDMIN (second run): %v", err)
	}
	if string(second) != "8" {
		t.Fatalf("second run = %q, want %q", string(second), "8")
	}
	after := atomic.LoadInt64(&probeCalls)

	// Assertion tests are never cached (I4) so they still run every
	// iteration, but every subset/complement probe this time is a cache
	// hit, sharing the same Engine's Cache across both runs.
	if extra := after - before; extra != 0 {
		t.Errorf("second run made %d non-assert oracle calls, want 0 (all cached)", extra)
	}
}

func TestDDMINMultipleIndependentRuns(t *testing.T) {
	var calls int64
	scenarios := []struct {
		name   string
		need   []rune
		config string
	}{
		{"eight", []rune{'8'}, "12345678"},
		{"ab", []rune{'a', 'b'}, "xaybz"},
		{"cat", []rune{'c', 'a', 't'}, "xcyazwt"},
	}

	got := make(map[string]string, len(scenarios))
	for _, s := range scenarios {
		test := interestingOracle(s.need, &calls)
		result, err := ddmin.DDMIN(test, []rune(s.config), 2)
		if err != nil {
			t.Fatalf("%s: DDMIN: %v", s.name, err)
		}
		got[s.name] = string(result)
	}

	want := map[string]string{
		"eight": "8",
		"ab":    "ab",
		"cat":   "cat",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DDMIN results mismatch (-want +got):\n%s", diff)
	}
}

func TestDDMINOrderPreservationAcrossSplits(t *testing.T) {
	var calls int64
	test := interestingOracle([]rune{'c', 'a', 't'}, &calls)
	config := []rune(strings.Join([]string{"x", "c", "y", "a", "z", "t", "w"}, ""))

	got, err := ddmin.DDMIN(test, config, 2)
	if err != nil {
		t.Fatalf("DDMIN: %v", err)
	}
	if string(got) != "cat" {
		t.Errorf("DDMIN = %q, want %q", string(got), "cat")
	}
}
