package fp_test

import (
	"fmt"
	"testing"

	fp "github.com/fp4ts/fp4ts-sub007"
)

func TestComposition(t *testing.T) {
	g := func(n int) float32 {
		return float32(n) + 0.5
	}
	f := func(x float32) string {
		return fmt.Sprintf("%.3f", x)
	}
	// h := Compose[int, float32, string](g, f) // works, but type-inference helps
	h := fp.Compose(g, f)
	h7 := h(7)
	if h7 != "7.500" {
		t.Logf("composition h(7) = %q", h(7))
		t.Error("expected h(7) to return string 7.500")
	}
}

func TestConst(t *testing.T) {
	seven := fp.Const(7)
	if seven() != 7 {
		t.Logf("const = %v", seven())
		t.Error("expected const to be integer 7")
	}
	x := fp.Constant[int]("x")
	if x(1) != "x" || x(2) != "x" {
		t.Error("expected Constant to ignore its argument")
	}
}

func TestIdentity(t *testing.T) {
	if fp.Identity(7) != 7 {
		t.Errorf("expected Identity(7) to be 7, is %v", fp.Identity(7))
	}
}
