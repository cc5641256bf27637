package benchmark

import (
	"bytes"
	"math/rand"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/perfsuite/arraybench/pkg/timing"
)

var durationPattern = regexp.MustCompile(`^(\d+ms|\d+(\.\d+)?s|\d+min \d+(\.\d+)?s)$`)

func newTestSuite(includeSlow bool) *Suite {
	return NewSuite(&SuiteConfiguration{
		Rand:        rand.New(rand.NewSource(42)),
		Clock:       timing.SystemClock,
		IncludeSlow: includeSlow,
	})
}

func TestSuiteOutputStructure(t *testing.T) {
	var buf bytes.Buffer

	results := newTestSuite(false).Run(&buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	assert.Equal(t, 9, len(lines), "banner plus eight result lines")
	assert.Equal(t, Banner, lines[0])

	expectedPrefixes := []string{
		"Squares 100-element array: ",
		"Squares 10,000-element array: ",
		"Squares 1,000,000-element array: ",
		"mx+b 100-element array: ",
		"mx+b 10,000-element array: ",
		"mx+b 1,000,000-element array: ",
		"e-field 100-element array: ",
		"e-field 10,000-element array: ",
	}

	assert.Equal(t, len(expectedPrefixes), len(results))

	for i, prefix := range expectedPrefixes {
		line := lines[i+1]

		assert.True(t, strings.HasPrefix(line, prefix), "line %q must start with %q", line, prefix)
		assert.Regexp(t, durationPattern, strings.TrimPrefix(line, prefix))

		assert.Equal(t, results[i].Label, strings.SplitN(prefix, " ", 2)[0])
		assert.GreaterOrEqual(t, results[i].ElapsedMs, 0.0)
	}
}

func TestSuiteStructureStableAcrossRuns(t *testing.T) {
	labels := func() []string {
		var buf bytes.Buffer
		results := newTestSuite(false).Run(&buf)

		out := make([]string, len(results))
		for i, r := range results {
			out[i] = r.Label + "/" + groupDigits(r.Size)
		}
		return out
	}

	assert.Equal(t, labels(), labels())
}

func TestSlowCaseGatedBehindOptIn(t *testing.T) {
	table := newTestSuite(false).Cases()

	assert.Equal(t, 9, len(table))

	last := table[len(table)-1]
	assert.Equal(t, "e-field", last.Label)
	assert.Equal(t, SizeLarge, last.Size)
	assert.True(t, last.Slow, "the large e-field case must require opt-in")

	for _, c := range table[:len(table)-1] {
		assert.False(t, c.Slow)
	}

	assert.Equal(t, 8, len(newTestSuite(false).enabledCases()))
	assert.Equal(t, 9, len(newTestSuite(true).enabledCases()))
}

func TestSuiteUsesInjectedClock(t *testing.T) {
	start := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	instant := start

	// Every measurement sees exactly 750ms between its two clock
	// readings.
	clock := func() time.Time {
		v := instant
		instant = instant.Add(750 * time.Millisecond)
		return v
	}

	suite := &Suite{
		cfg: &SuiteConfiguration{
			Rand:  rand.New(rand.NewSource(1)),
			Clock: clock,
		},
		cases: []Case{
			{Label: "Squares", Size: 4, pass: func(dst, src []float64) {}},
		},
	}

	var buf bytes.Buffer
	results := suite.Run(&buf)

	assert.Equal(t, 1, len(results))
	assert.Equal(t, 750.0, results[0].ElapsedMs)
	assert.Contains(t, buf.String(), "Squares 4-element array: 750ms")
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{100, "100"},
		{1000, "1,000"},
		{10000, "10,000"},
		{1000000, "1,000,000"},
		{1234567, "1,234,567"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, groupDigits(tc.n))
	}
}
