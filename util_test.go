package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := math.Hypot(p1.X-p0.X, p1.Y-p0.Y); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// mustPanic calls f and returns the *PreconditionError it panicked with.
func mustPanic(t *testing.T, f func()) *PreconditionError {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		f()
	}()
	if got == nil {
		t.Fatal("expected panic")
	}
	err, ok := got.(*PreconditionError)
	if !ok {
		t.Fatalf("got panic %v of type %T, want *PreconditionError", got, got)
	}
	return err
}
