package maybe_test

import (
	"testing"

	. "github.com/npillmayer/boxtree/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeZeroValueIsNothing(t *testing.T) {
	var z Maybe[float32]
	if z.IsJust() {
		t.Error("expected zero value to be Nothing, isn't")
	}
	if z != Nothing[float32]() {
		t.Error("expected zero value to compare equal to Nothing")
	}
	if Just[float32](0) == z {
		t.Error("expected Just(0) to differ from Nothing")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, has %d", xx)
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeAssignTo(t *testing.T) {
	dst := "red"
	if Nothing[string]().AssignTo(&dst) || dst != "red" {
		t.Errorf("expected Nothing to leave destination alone, is %q", dst)
	}
	if !Just("blue").AssignTo(&dst) || dst != "blue" {
		t.Errorf("expected Just(blue) to overwrite destination, is %q", dst)
	}
}

func TestMaybeOr(t *testing.T) {
	a, b := Just(1), Just(2)
	if v, _ := a.Or(b).Get(); v != 1 {
		t.Errorf("expected set value to win, got %d", v)
	}
	if v, _ := Nothing[int]().Or(b).Get(); v != 2 {
		t.Errorf("expected fallback to other, got %d", v)
	}
}

func TestMaybeMap(t *testing.T) {
	xx := Map(func(n int) int {
		return n * 2
	}, Just(10))
	var v int
	switch m := xx.Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != 20 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Map(…, Just 10) to return 20, didn't")
	}

	yy := Map(func(n int) string {
		return "x"
	}, Nothing[int]())
	if yy.IsJust() {
		t.Error("expected Map(…, Nothing) to be Nothing, isn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if AndThen(gt0, Just(-1)).IsJust() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
}
