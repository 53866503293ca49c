package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/geompred/predicate"
)

// scenario is one worked example: a predicate call and the sign it
// must produce.
type scenario struct {
	name string
	run  func() float64
	want int // -1, 0, or +1
}

func scenarios() []scenario {
	return []scenario{
		{
			name: "orient2d collinear",
			run:  func() float64 { return predicate.Orient2D([]float64{0, 0}, []float64{1, 0}, []float64{0.5, 0}) },
			want: 0,
		},
		{
			name: "orient2d tiny perturbation",
			run:  func() float64 { return predicate.Orient2D([]float64{0, 0}, []float64{1, 0}, []float64{0.5, 1e-300}) },
			want: 1,
		},
		{
			name: "orient3d coplanar",
			run: func() float64 {
				return predicate.Orient3D([]float64{0, 0, 0}, []float64{1, 0, 0}, []float64{0, 1, 0}, []float64{0.5, 0.5, 0})
			},
			want: 0,
		},
		{
			name: "inball2d interior query",
			run: func() float64 {
				return predicate.InBall2D([]float64{0, 0}, []float64{1, 0}, []float64{0, 1}, []float64{0.3, 0.3})
			},
			want: 1,
		},
		{
			name: "inball2d cocircular corner",
			run: func() float64 {
				return predicate.InBall2D([]float64{0, 0}, []float64{1, 0}, []float64{0, 1}, []float64{1, 1})
			},
			want: 0,
		},
		{
			name: "bisect2w weighted site wins",
			run: func() float64 {
				return predicate.Bisect2W([]float64{0, 0, 0.25}, []float64{1, 0, 0.00}, []float64{0.5, 0})
			},
			want: -1,
		},
	}
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// runScenarioSuite runs every scenario and reports a pass/fail table;
// returns the number of failures.
func runScenarioSuite(w io.Writer) int {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "scenario\tgot\twant\tresult")

	failures := 0
	for _, s := range scenarios() {
		got := sign(s.run())
		status := "PASS"
		if got != s.want {
			status = "FAIL"
			failures++
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", s.name, got, s.want, status)
	}
	tw.Flush()
	return failures
}
