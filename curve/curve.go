// Package curve sweeps a solver across a grid of parameter values, for
// power curves and design-sensitivity tables. Points are evaluated
// concurrently under a bounded semaphore since each evaluation is an
// independent pure computation.
package curve

import (
	"context"
	"sync"

	"gopowerup/domain/core"
	"gopowerup/domain/design"

	"golang.org/x/sync/semaphore"
)

// Solver computes one scalar result (power, MDES, or a sample size) for a
// parameter set.
type Solver func(design.Params) (float64, error)

// Axis selects which parameter the grid varies.
type Axis int

const (
	AxisEffectSize Axis = iota
	AxisPower
	AxisN
	AxisJ
	AxisK
	AxisL
)

func (a Axis) String() string {
	switch a {
	case AxisEffectSize:
		return "effect size"
	case AxisPower:
		return "power"
	case AxisN:
		return "n"
	case AxisJ:
		return "J"
	case AxisK:
		return "K"
	case AxisL:
		return "L"
	}
	return "unknown"
}

func (a Axis) apply(p design.Params, x float64) design.Params {
	switch a {
	case AxisEffectSize:
		p.EffectSize = x
	case AxisPower:
		p.Power = x
	case AxisN:
		p = p.WithCount(design.LevelN, x)
	case AxisJ:
		p = p.WithCount(design.LevelJ, x)
	case AxisK:
		p = p.WithCount(design.LevelK, x)
	case AxisL:
		p = p.WithCount(design.LevelL, x)
	}
	return p
}

// Point pairs a grid value with the solver result at that value.
type Point struct {
	X float64
	Y float64
}

// Evaluate runs the solver at every grid value, varying the given axis of
// the base parameters. Results come back in grid order. At most workers
// evaluations run at once; workers below 1 means serial. The first solver
// error cancels the sweep and is returned.
func Evaluate(ctx context.Context, fn Solver, base design.Params, axis Axis, grid []float64, workers int64) ([]Point, error) {
	if len(grid) == 0 {
		return nil, core.NewInvalidParameterError("grid", 0, "must have at least one value")
	}
	if workers < 1 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := semaphore.NewWeighted(workers)
	points := make([]Point, len(grid))

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for i, x := range grid {
		if err := sem.Acquire(ctx, 1); err != nil {
			// Context cancelled, either by the caller or by a failed point.
			break
		}
		wg.Add(1)
		go func(i int, x float64) {
			defer wg.Done()
			defer sem.Release(1)

			y, err := fn(axis.apply(base, x))
			if err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
				return
			}
			points[i] = Point{X: x, Y: y}
		}(i, x)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// Range builds an inclusive evenly spaced grid from lo to hi in the given
// number of steps.
func Range(lo, hi float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, core.NewInvalidParameterError("steps", float64(steps), "must be at least 2")
	}
	if hi <= lo {
		return nil, core.NewInvalidParameterError("hi", hi, "must exceed lo")
	}
	grid := make([]float64, steps)
	width := (hi - lo) / float64(steps-1)
	for i := range grid {
		grid[i] = lo + float64(i)*width
	}
	grid[steps-1] = hi
	return grid, nil
}
