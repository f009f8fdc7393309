package expr_test

import (
	"math"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/gx-org/affine/expr"
	"github.com/gx-org/affine/expr/testexpr"
)

func TestRenderGolden(t *testing.T) {
	ctx := expr.NewContext()
	d0 := expr.NewRef(ctx.Dim(0))
	d1 := expr.NewRef(ctx.Dim(1))
	s0 := expr.NewRef(ctx.Symbol(0))
	exprs := []expr.Expr{
		ctx.Dim(0),
		ctx.Symbol(0),
		ctx.Constant(-42),
		testexpr.MustRef(t, d0.Add(s0)),
		testexpr.MustRef(t, d0.AddConst(3)),
		testexpr.MustRef(t, d0.SubConst(5)),
		testexpr.MustRef(t, d0.Sub(d1)),
		testexpr.MustRef(t, d0.Neg()),
		testexpr.MustRef(t, d0.MulConst(6)),
		testexpr.MustRef(t, d0.Mul(s0)),
		testexpr.MustRef(t, d0.MulConst(6).Add(d1.MulConst(9))),
		testexpr.MustRef(t, d0.Add(s0).MulConst(2)),
		testexpr.MustRef(t, d0.FloorDivConst(2)),
		testexpr.MustRef(t, d0.CeilDivConst(2)),
		testexpr.MustRef(t, d0.ModConst(4)),
		testexpr.MustRef(t, d0.Add(d1).FloorDivConst(2)),
		testexpr.MustRef(t, d0.Mod(s0.AddConst(1))),
		testexpr.MustRef(t, d0.Add(d1.Add(s0))),
		testexpr.MustRef(t, d0.Sub(d1.Add(s0))),
		testexpr.MustRef(t, d0.MulConst(6).Add(d1.MulConst(9)).ModConst(4)),
		testexpr.MustRef(t, d0.FloorDiv(s0)),
		testexpr.MustRef(t, d0.FloorDivConst(2).Mul(s0)),
	}
	var sb strings.Builder
	for _, x := range exprs {
		sb.WriteString(x.String())
		sb.WriteByte('\n')
	}
	g := goldie.New(t)
	g.Assert(t, "render", []byte(sb.String()))
}

func TestRenderMinInt64(t *testing.T) {
	ctx := expr.NewContext()
	// The most negative constant cannot render as a subtraction.
	x := testexpr.Must(t)(expr.AddConst(ctx.Dim(0), math.MinInt64))
	if got, want := x.String(), "d0 + -9223372036854775808"; got != want {
		t.Errorf("rendered as %q but want %q", got, want)
	}
}
