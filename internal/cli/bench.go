package cli

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/shapestone/shape-reqline/pkg/reqline"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

// Latencies are recorded in nanoseconds, from 1ns to 1s.
const maxLatencyNs = int64(time.Second)

type benchOptions struct {
	iterations int
	rate       float64
}

type benchStats struct {
	Parses   int64
	Rejected int64
	Elapsed  time.Duration
	P50      time.Duration
	P95      time.Duration
	P99      time.Duration
	Max      time.Duration
	Mean     time.Duration
}

func newBenchCmd(opts *options) *cobra.Command {
	bo := &benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench [request-line...]",
		Short: "Measure parse latency for request lines",
		Long: `Parse each request line repeatedly and report latency percentiles.

Examples:
  reqline bench -n 100000 "GET /home/ HTTP/1.1"
  reqline bench --rate 1000 < lines.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := resolveConfig(cmd, opts); err != nil {
				return err
			}
			if bo.iterations < 1 {
				return &exitError{code: ExitUsageError, msg: "--iterations must be at least 1"}
			}
			lines, err := collectLines(cmd, args)
			if err != nil {
				return err
			}

			stats, err := runBench(cmd, lines, bo)
			if err != nil {
				return err
			}
			writeBench(cmd, stats)
			return nil
		},
	}
	cmd.Flags().IntVarP(&bo.iterations, "iterations", "n", 10000, "parses per request line")
	cmd.Flags().Float64Var(&bo.rate, "rate", 0, "maximum parses per second (0 = unlimited)")
	return cmd
}

func runBench(cmd *cobra.Command, lines []string, bo *benchOptions) (benchStats, error) {
	var limiter *rate.Limiter
	if bo.rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(bo.rate), 1)
	}

	hist := hdrhistogram.New(1, maxLatencyNs, 3)
	var stats benchStats
	start := time.Now()

	for i := 0; i < bo.iterations; i++ {
		for _, line := range lines {
			if limiter != nil {
				if err := limiter.Wait(cmd.Context()); err != nil {
					return stats, err
				}
			}
			t0 := time.Now()
			_, err := reqline.ParseRequestLine(line)
			ns := time.Since(t0).Nanoseconds()
			if ns < 1 {
				ns = 1
			}
			if ns > maxLatencyNs {
				ns = maxLatencyNs
			}
			_ = hist.RecordValue(ns)

			stats.Parses++
			if err != nil {
				stats.Rejected++
			}
		}
	}

	stats.Elapsed = time.Since(start)
	stats.P50 = time.Duration(hist.ValueAtQuantile(50))
	stats.P95 = time.Duration(hist.ValueAtQuantile(95))
	stats.P99 = time.Duration(hist.ValueAtQuantile(99))
	stats.Max = time.Duration(hist.Max())
	stats.Mean = time.Duration(hist.Mean())
	return stats, nil
}

func writeBench(cmd *cobra.Command, s benchStats) {
	w := cmd.OutOrStdout()
	perSec := 0.0
	if s.Elapsed > 0 {
		perSec = float64(s.Parses) / s.Elapsed.Seconds()
	}
	fmt.Fprintf(w, "parses:   %d (%d rejected)\n", s.Parses, s.Rejected)
	fmt.Fprintf(w, "elapsed:  %s (%.0f/s)\n", s.Elapsed.Round(time.Microsecond), perSec)
	fmt.Fprintf(w, "latency:  p50=%s p95=%s p99=%s max=%s mean=%s\n", s.P50, s.P95, s.P99, s.Max, s.Mean)
}
