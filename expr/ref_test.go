package expr_test

import (
	"errors"
	"testing"

	"github.com/gx-org/affine/expr"
	"github.com/gx-org/affine/expr/kind"
	"github.com/gx-org/affine/expr/testexpr"
)

func TestRefChains(t *testing.T) {
	ctx := expr.NewContext()
	d0 := expr.NewRef(ctx.Dim(0))
	s0 := expr.NewRef(ctx.Symbol(0))

	got := testexpr.MustRef(t, d0.MulConst(2).Add(s0).SubConst(3).FloorDivConst(4))
	step, err := expr.MulConst(ctx.Dim(0), 2)
	if err == nil {
		step, err = expr.Add(step, ctx.Symbol(0))
	}
	if err == nil {
		step, err = expr.SubConst(step, 3)
	}
	if err == nil {
		step, err = expr.FloorDivConst(step, 4)
	}
	want := testexpr.Must(t)(step, err)
	if got != want {
		t.Errorf("chain built %s but want the node %s", got, want)
	}
}

func TestRefErrorPropagation(t *testing.T) {
	ctx := expr.NewContext()
	r := expr.NewRef(ctx.Dim(0)).FloorDivConst(0).AddConst(1).MulConst(2)
	if _, err := r.Done(); !errors.Is(err, expr.ErrZeroDivisor) {
		t.Fatalf("Done() error is %v but want %v", r.Err(), expr.ErrZeroDivisor)
	}
	if !r.IsNil() {
		t.Errorf("a failed chain still references a node: %s", r)
	}
	if x := r.Expr(); x != nil {
		t.Errorf("Expr() = %s but want nil", x)
	}
	if k := r.Kind(); k != kind.Invalid {
		t.Errorf("Kind() = %s but want %s", k, kind.Invalid)
	}
}

func TestRefZeroValueKind(t *testing.T) {
	var r expr.Ref
	if k := r.Kind(); k != kind.Invalid {
		t.Errorf("Kind() = %s but want %s", k, kind.Invalid)
	}
}

func TestRefSame(t *testing.T) {
	ctx := expr.NewContext()
	d0 := expr.NewRef(ctx.Dim(0))
	if !d0.AddConst(1).Same(d0.AddConst(1)) {
		t.Errorf("two identical chains reference distinct nodes")
	}
	if d0.AddConst(1).Same(d0.AddConst(2)) {
		t.Errorf("distinct chains reference the same node")
	}
	failed := d0.ModConst(0)
	if failed.Same(failed) {
		t.Errorf("failed chains compare as the same node")
	}
}
