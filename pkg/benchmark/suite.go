package benchmark

import (
	"fmt"
	"io"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/perfsuite/arraybench/pkg/generate"
	"github.com/perfsuite/arraybench/pkg/timing"
)

// Banner is the first line the suite writes before any result line.
const Banner = "Go Benchmark!"

// Result is the measured outcome of a single case.
type Result struct {
	Label     string
	Size      int
	ElapsedMs float64
}

// SuiteConfiguration carries the process-wide handles the suite needs.
// The random source and clock are injected rather than read from global
// state so runs are reproducible under test.
type SuiteConfiguration struct {
	Rand  *rand.Rand
	Clock timing.Clock

	// IncludeSlow opts in to the cases marked Slow in the case table.
	// The e-field pass is O(size²), so its 1,000,000-element case takes
	// on the order of hours and must be requested explicitly.
	IncludeSlow bool
}

// Suite runs the fixed benchmark case table in declaration order.
type Suite struct {
	cfg   *SuiteConfiguration
	cases []Case
}

// NewSuite creates a suite over the default case table.
func NewSuite(cfg *SuiteConfiguration) *Suite {
	return &Suite{
		cfg:   cfg,
		cases: defaultCases(),
	}
}

// Cases returns the full case table, including cases gated behind
// IncludeSlow.
func (s *Suite) Cases() []Case {
	return s.cases
}

// enabledCases filters the case table down to what this run executes.
func (s *Suite) enabledCases() []Case {
	enabled := make([]Case, 0, len(s.cases))

	for _, c := range s.cases {
		if c.Slow && !s.cfg.IncludeSlow {
			log.Debugf("Skipping %s %s-element array: pass is O(size²), enable it explicitly.", c.Label, groupDigits(c.Size))
			continue
		}

		enabled = append(enabled, c)
	}

	return enabled
}

// Run executes every enabled case in order: generate a fresh random
// array, time one full transformation pass over it, and write a labeled
// line with the formatted duration to w. It returns the per-case
// measurements in execution order.
func (s *Suite) Run(w io.Writer) []Result {
	fmt.Fprintln(w, Banner)

	cases := s.enabledCases()
	results := make([]Result, 0, len(cases))

	for _, c := range cases {
		log.Debugf("Generating %s-element array for the %s pass.", groupDigits(c.Size), c.Label)
		data := generate.RandomArray(s.cfg.Rand, c.Size)

		// The output allocation is part of the measured pass, the same
		// way mapping over the input allocates a fresh array.
		var out []float64
		elapsed := timing.Measure(s.cfg.Clock, func() {
			out = make([]float64, len(data))
			c.pass(out, data)
		})
		_ = out

		fmt.Fprintf(w, "%s %s-element array: %s\n", c.Label, groupDigits(c.Size), timing.FormatDuration(elapsed))

		results = append(results, Result{
			Label:     c.Label,
			Size:      c.Size,
			ElapsedMs: elapsed,
		})
	}

	if log.IsLevelEnabled(log.DebugLevel) && len(results) > 0 {
		elapsed := make([]float64, len(results))
		for i, r := range results {
			elapsed[i] = r.ElapsedMs
		}

		log.Debugf("Completed %d cases, mean case duration %.3fms.", len(results), stat.Mean(elapsed, nil))
	}

	return results
}
