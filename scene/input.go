package scene

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"honnef.co/go/bezier"
)

var ErrUnknownField = errors.New("scene: unknown field")

// Fields lists the names accepted by [ApplyInput].
var Fields = []string{
	"mode",
	"continuity",
	"subdivision_level",
	"piecewise_degree",
	"t",
	"t_percent",
	"samples",
}

// ApplyInput sets one parameter of ctl from loosely typed input, such as a
// form value or a command line flag. Numbers may be given as strings.
// t_percent is the de Casteljau parameter as a percentage in [0, 100].
func ApplyInput(ctl *bezier.Controller, field string, value any) error {
	err := applyInput(ctl, field, value)
	if err != nil {
		return fmt.Errorf("scene: %s: %w", field, err)
	}
	bezier.Logger().Debug("parameter changed", "field", field, "value", value)
	return nil
}

func applyInput(ctl *bezier.Controller, field string, value any) error {
	switch field {
	case "mode":
		s, err := cast.ToStringE(value)
		if err != nil {
			return err
		}
		m, err := bezier.ParseMode(s)
		if err != nil {
			return err
		}
		return ctl.SetMode(m)
	case "continuity":
		s, err := cast.ToStringE(value)
		if err != nil {
			return err
		}
		c, err := bezier.ParseContinuity(s)
		if err != nil {
			return err
		}
		return ctl.SetContinuity(c)
	case "subdivision_level":
		n, err := toInt(value)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("negative level %d: %w", n, bezier.ErrInvalidParameter)
		}
		return ctl.SetSubdivisionLevel(uint(n))
	case "piecewise_degree":
		n, err := toInt(value)
		if err != nil {
			return err
		}
		return ctl.SetPiecewiseDegree(n)
	case "t":
		t, err := cast.ToFloat64E(value)
		if err != nil {
			return err
		}
		return ctl.SetDeCasteljauT(t)
	case "t_percent":
		pct, err := cast.ToFloat64E(value)
		if err != nil {
			return err
		}
		return ctl.SetDeCasteljauT(pct / 100)
	case "samples":
		n, err := toInt(value)
		if err != nil {
			return err
		}
		return ctl.SetSamples(n)
	default:
		return ErrUnknownField
	}
}

// toInt converts value to an int. Strings are always read as decimal, so
// "010" is ten, and may use float syntax as long as the value is integral.
func toInt(value any) (int, error) {
	s, ok := value.(string)
	if !ok {
		return cast.ToIntE(value)
	}
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 0); err == nil {
		return int(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, fmt.Errorf("%q is not an integer: %w", s, bezier.ErrInvalidParameter)
	}
	return int(f), nil
}

// ApplyAssignment applies an input of the form "field=value".
func ApplyAssignment(ctl *bezier.Controller, kv string) error {
	field, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("scene: %q is not of the form field=value", kv)
	}
	return ApplyInput(ctl, strings.TrimSpace(field), strings.TrimSpace(value))
}

// ParsePoint parses a point written as "x,y".
func ParsePoint(s string) (bezier.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return bezier.Point{}, fmt.Errorf("scene: %q is not of the form x,y", s)
	}
	x, err := cast.ToFloat64E(strings.TrimSpace(xs))
	if err != nil {
		return bezier.Point{}, fmt.Errorf("scene: point %q: %w", s, err)
	}
	y, err := cast.ToFloat64E(strings.TrimSpace(ys))
	if err != nil {
		return bezier.Point{}, fmt.Errorf("scene: point %q: %w", s, err)
	}
	return bezier.Pt(x, y), nil
}
