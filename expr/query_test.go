package expr_test

import (
	"math"
	"testing"

	"github.com/gx-org/affine/expr"
	"github.com/gx-org/affine/expr/testexpr"
)

func TestIsSymbolicOrConstant(t *testing.T) {
	ctx := expr.NewContext()
	tests := []struct {
		x    expr.Expr
		want bool
	}{
		{x: ctx.Constant(5), want: true},
		{x: ctx.Symbol(0), want: true},
		{x: ctx.Dim(0), want: false},
		{x: testexpr.Must(t)(expr.AddConst(ctx.Symbol(0), 5)), want: true},
		{x: testexpr.Must(t)(expr.Mul(ctx.Symbol(0), ctx.Symbol(1))), want: true},
		{x: testexpr.Must(t)(expr.Add(ctx.Dim(0), ctx.Symbol(0))), want: false},
		{x: testexpr.Must(t)(expr.ModConst(ctx.Dim(0), 2)), want: false},
	}
	for _, test := range tests {
		if got := test.x.IsSymbolicOrConstant(); got != test.want {
			t.Errorf("%s: IsSymbolicOrConstant() = %v but want %v", test.x, got, test.want)
		}
	}
}

func TestIsPureAffine(t *testing.T) {
	ctx := expr.NewContext()
	tests := []expr.Expr{
		ctx.Dim(0),
		ctx.Symbol(0),
		ctx.Constant(-3),
		testexpr.Must(t)(expr.MulConst(ctx.Dim(0), 4)),
		testexpr.Must(t)(expr.Mul(ctx.Dim(0), ctx.Symbol(0))),
		testexpr.Must(t)(expr.Mod(ctx.Dim(0), ctx.Symbol(0))),
		testexpr.MustRef(t, expr.NewRef(ctx.Dim(0)).MulConst(6).Add(expr.NewRef(ctx.Dim(1)).ModConst(4))),
	}
	for _, x := range tests {
		if !x.IsPureAffine() {
			t.Errorf("%s: IsPureAffine() = false but want true", x)
		}
	}
}

func TestLargestKnownDivisor(t *testing.T) {
	ctx := expr.NewContext()
	d0 := expr.NewRef(ctx.Dim(0))
	d1 := expr.NewRef(ctx.Dim(1))
	tests := []struct {
		x    expr.Expr
		want int64
	}{
		{x: ctx.Constant(12), want: 12},
		{x: ctx.Constant(-12), want: 12},
		{x: ctx.Constant(0), want: 0},
		{x: ctx.Dim(0), want: 1},
		{x: ctx.Symbol(0), want: 1},
		{x: testexpr.MustRef(t, d0.MulConst(6)), want: 6},
		{x: testexpr.MustRef(t, d0.MulConst(-6)), want: 6},
		// A symbolic factor brings no multiplicative guarantee.
		{x: testexpr.MustRef(t, d0.MulConst(6).Mul(expr.NewRef(ctx.Symbol(0)))), want: 6},
		{x: testexpr.MustRef(t, d0.MulConst(6).Add(d1.MulConst(9))), want: 3},
		{x: testexpr.MustRef(t, d0.MulConst(6).Add(d1.MulConst(9)).ModConst(4)), want: 1},
		{x: testexpr.MustRef(t, d0.MulConst(4).ModConst(6)), want: 2},
		{x: testexpr.MustRef(t, d0.MulConst(6).FloorDivConst(4)), want: 1},
		{x: testexpr.MustRef(t, d0.MulConst(6).CeilDivConst(4)), want: 1},
		{x: testexpr.MustRef(t, d0.ModConst(3)), want: 1},
	}
	for _, test := range tests {
		if got := test.x.LargestKnownDivisor(); got != test.want {
			t.Errorf("%s: LargestKnownDivisor() = %d but want %d", test.x, got, test.want)
		}
	}
}

func TestLargestKnownDivisorMinInt64(t *testing.T) {
	ctx := expr.NewContext()
	d0 := expr.NewRef(ctx.Dim(0))
	tests := []struct {
		x    expr.Expr
		want int64
	}{
		// |MinInt64| does not fit in an int64; 1<<62 is its largest
		// representable divisor.
		{x: ctx.Constant(math.MinInt64), want: 1 << 62},
		{x: testexpr.MustRef(t, d0.MulConst(math.MinInt64)), want: 1 << 62},
		{x: testexpr.MustRef(t, d0.MulConst(2).ModConst(math.MinInt64)), want: 2},
		{x: testexpr.MustRef(t, d0.MulConst(math.MinInt64).Add(expr.NewRef(ctx.Dim(1)).MulConst(6))), want: 2},
	}
	for _, test := range tests {
		got := test.x.LargestKnownDivisor()
		if got <= 0 {
			t.Errorf("%s: LargestKnownDivisor() = %d, not a positive divisor", test.x, got)
			continue
		}
		if got != test.want {
			t.Errorf("%s: LargestKnownDivisor() = %d but want %d", test.x, got, test.want)
		}
	}
}

func TestIsMultipleOf(t *testing.T) {
	ctx := expr.NewContext()
	d0 := expr.NewRef(ctx.Dim(0))
	d1 := expr.NewRef(ctx.Dim(1))
	sum := testexpr.MustRef(t, d0.MulConst(6).Add(d1.MulConst(9)))
	tests := []struct {
		x      expr.Expr
		factor int64
		want   bool
	}{
		{x: sum, factor: 3, want: true},
		{x: sum, factor: -3, want: true},
		{x: sum, factor: 4, want: false},
		{x: sum, factor: 1, want: true},
		// A factor of zero is not a meaningful query.
		{x: sum, factor: 0, want: false},
		{x: ctx.Dim(0), factor: 2, want: false},
		{x: ctx.Dim(0), factor: 1, want: true},
		// The zero constant is a multiple of every integer.
		{x: ctx.Constant(0), factor: 41, want: true},
	}
	for _, test := range tests {
		if got := test.x.IsMultipleOf(test.factor); got != test.want {
			t.Errorf("%s: IsMultipleOf(%d) = %v but want %v", test.x, test.factor, got, test.want)
		}
	}
}
