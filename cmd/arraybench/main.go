package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/perfsuite/arraybench/pkg/benchmark"
	"github.com/perfsuite/arraybench/pkg/timing"
)

var (
	verbosity   = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	includeSlow = flag.Bool("includeSlow", false, "Run the e-field pass on the 1,000,000-element array as well (O(size²), takes hours)")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	suite := benchmark.NewSuite(&benchmark.SuiteConfiguration{
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
		Clock:       timing.SystemClock,
		IncludeSlow: *includeSlow,
	})

	suite.Run(os.Stdout)
}
