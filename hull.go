package hulls

import (
	"fmt"
	"math"
	"runtime/debug"

	"gonum.org/v1/gonum/spatial/r3"
)

// Parameters describe the seed form of a hull half: a quarter circle
// cross-section of radius Beam/2 swept along the length axis.
type Parameters struct {
	// LOA is the length overall, measured along the X axis.
	LOA float64
	// Beam is the overall width of the hull. Half the beam is the
	// radius of every station.
	Beam float64
	// Stations is the number of cross-sections, first one at X=0 and
	// last one at X=LOA.
	Stations int
	// Lines is the number of interior subdivisions of each station. A
	// station has Lines+2 points, from the waterline to the centerline top.
	Lines int
	// ClosedFore collapses the first station to the origin.
	ClosedFore bool
	// ClosedAft collapses the last station to a point on the centerline.
	ClosedAft bool
	// SymmetricTop is stored but has no effect on the generated grid yet.
	SymmetricTop bool
}

// DefaultParameters returns the parameters of a 12m by 2m hull with
// five stations and three lines per station, open at both ends.
func DefaultParameters() Parameters {
	return Parameters{
		LOA:      12000,
		Beam:     2000,
		Stations: 5,
		Lines:    3,
	}
}

// Validate returns a *ParameterError for the first violated constraint.
func (p Parameters) Validate() error {
	switch {
	case p.Stations < 2:
		return paramErr("Stations", fmt.Sprintf("must be >= 2, got %d", p.Stations))
	case p.Lines < 0:
		return paramErr("Lines", fmt.Sprintf("must be >= 0, got %d", p.Lines))
	case p.Lines > math.MaxInt-2 || p.Lines+2 > math.MaxInt/p.Stations:
		return paramErr("Lines", fmt.Sprintf("grid of %d stations by %d lines is too large", p.Stations, p.Lines))
	case !(p.LOA > 0) || math.IsInf(p.LOA, 0):
		return paramErr("LOA", fmt.Sprintf("must be finite and > 0, got %g", p.LOA))
	case !(p.Beam > 0) || math.IsInf(p.Beam, 0):
		return paramErr("Beam", fmt.Sprintf("must be finite and > 0, got %g", p.Beam))
	}
	return nil
}

// Generate computes the point grid of the hull described by p. Stations
// are uniformly spaced along X and each station is sampled uniformly in
// angle from the waterline (Y=Beam/2, Z=0) to the centerline top (Y=0, Z=Beam/2).
func Generate(p Parameters) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	var (
		r      = p.Beam / 2
		n      = p.Lines + 2
		dAngle = math.Pi / 2 / float64(p.Lines+1)
		space  = p.LOA / float64(p.Stations-1)
	)
	pts := make([]r3.Vec, p.Stations*n)
	for i := 0; i < p.Stations; i++ {
		x := float64(i) * space
		if i == p.Stations-1 {
			x = p.LOA // last station always sits at LOA.
		}
		row := pts[i*n : (i+1)*n]
		for j := range row {
			s, c := math.Sincos(dAngle * float64(j))
			row[j] = r3.Vec{X: x, Y: r * c, Z: r * s}
		}
		// centerline top sits exactly on Y=0 so both hull halves share it.
		row[n-1] = r3.Vec{X: x, Z: r}
	}
	if p.ClosedFore {
		collapse(pts[:n], r3.Vec{})
	}
	if p.ClosedAft {
		last := pts[(p.Stations-1)*n:]
		collapse(last, r3.Vec{X: last[0].X})
	}
	return &Grid{params: p, cols: n, pts: pts}, nil
}

// MustGenerate is like Generate but panics on invalid parameters.
func MustGenerate(p Parameters) *Grid {
	g, err := Generate(p)
	if err != nil {
		panic(err)
	}
	return g
}

// generateErr recovers a panic raised while building a grid and returns
// it as an error carrying the stack.
type generateErr struct {
	panicObj interface{}
	stack    string
}

// Stack returns the stack trace of the goroutine at the time of the panic.
func (e *generateErr) Stack() string { return e.stack }

func (e *generateErr) Error() string {
	return fmt.Sprintf("%s", e.panicObj)
}

func (e *generateErr) Unwrap() error {
	err, _ := e.panicObj.(error)
	return err
}

// Try calls fn and converts a panic from a Must* function into an error.
func Try(fn func() *Grid) (g *Grid, err error) {
	defer func() {
		if a := recover(); a != nil {
			g = nil
			err = &generateErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
		}
	}()
	return fn(), nil
}

func collapse(row []r3.Vec, to r3.Vec) {
	for j := range row {
		row[j] = to
	}
}
