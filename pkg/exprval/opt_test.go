package exprval

import (
	"math"
	"testing"
)

type binOp struct {
	name   string
	int    func(v, other *Value)
	double func(v, other *Value)
	// Expected results, applied to the Go operands.
	wantInt    func(a, b int64) Value
	wantDouble func(a, b float64) Value
}

func intResult(f func(a, b int64) int64) func(a, b int64) Value {
	return func(a, b int64) Value { return FromInt(f(a, b)) }
}

func doubleResult(f func(a, b float64) float64) func(a, b float64) Value {
	return func(a, b float64) Value { return FromDouble(f(a, b)) }
}

func intCmp(f func(a, b int64) bool) func(a, b int64) Value {
	return func(a, b int64) Value { return FromBool(f(a, b)) }
}

func doubleCmp(f func(a, b float64) bool) func(a, b float64) Value {
	return func(a, b float64) Value { return FromBool(f(a, b)) }
}

var binOps = []binOp{
	{"mul", (*Value).IntMul, (*Value).DoubleMul,
		intResult(func(a, b int64) int64 { return a * b }),
		doubleResult(func(a, b float64) float64 { return a * b })},
	{"add", (*Value).IntAdd, (*Value).DoubleAdd,
		intResult(func(a, b int64) int64 { return a + b }),
		doubleResult(func(a, b float64) float64 { return a + b })},
	{"sub", (*Value).IntSub, (*Value).DoubleSub,
		intResult(func(a, b int64) int64 { return a - b }),
		doubleResult(func(a, b float64) float64 { return a - b })},
	{"less", (*Value).IntLess, (*Value).DoubleLess,
		intCmp(func(a, b int64) bool { return a < b }),
		doubleCmp(func(a, b float64) bool { return a < b })},
	{"greater", (*Value).IntGreater, (*Value).DoubleGreater,
		intCmp(func(a, b int64) bool { return a > b }),
		doubleCmp(func(a, b float64) bool { return a > b })},
	{"lesseq", (*Value).IntLessEq, (*Value).DoubleLessEq,
		intCmp(func(a, b int64) bool { return a <= b }),
		doubleCmp(func(a, b float64) bool { return a <= b })},
	{"greatereq", (*Value).IntGreaterEq, (*Value).DoubleGreaterEq,
		intCmp(func(a, b int64) bool { return a >= b }),
		doubleCmp(func(a, b float64) bool { return a >= b })},
	{"eq", (*Value).IntEq, (*Value).DoubleEq,
		intCmp(func(a, b int64) bool { return a == b }),
		doubleCmp(func(a, b float64) bool { return a == b })},
	{"noteq", (*Value).IntNotEq, (*Value).DoubleNotEq,
		intCmp(func(a, b int64) bool { return a != b }),
		doubleCmp(func(a, b float64) bool { return a != b })},
}

var (
	intOperands    = []int64{0, 1, -1, 7, 42, math.MaxInt64, math.MinInt64}
	doubleOperands = []float64{0, 1.5, -2, 2, 1e300, math.Inf(1), math.NaN()}
)

func TestIntOps(t *testing.T) {
	for _, op := range binOps {
		for _, a := range intOperands {
			for _, b := range intOperands {
				// Start from a value with source text to check that it is
				// dropped.
				v, other := FromInt(a, "src"), FromInt(b)
				op.int(&v, &other)
				want := op.wantInt(a, b)
				if v.Kind() != Int || v.HasCachedText() || v.Int() != want.Int() {
					t.Errorf("%d %s %d gives %#v, want %#v with no cache", a, op.name, b, &v, &want)
				}
			}
		}
	}
}

func TestDoubleOps(t *testing.T) {
	for _, op := range binOps {
		for _, a := range doubleOperands {
			for _, b := range doubleOperands {
				v, other := FromDouble(a, "src"), FromDouble(b)
				op.double(&v, &other)
				want := op.wantDouble(a, b)
				if v.Kind() != want.Kind() || v.HasCachedText() || v.Text() != want.Text() {
					t.Errorf("%v %s %v gives %#v, want %#v with no cache", a, op.name, b, &v, &want)
				}
			}
		}
	}
}

func TestComparisonsYieldIntZeroOrOne(t *testing.T) {
	for _, op := range binOps[3:] {
		for _, a := range doubleOperands {
			for _, b := range doubleOperands {
				v, other := FromDouble(a), FromDouble(b)
				op.double(&v, &other)
				if !v.IsInt() || (v.Int() != 0 && v.Int() != 1) {
					t.Errorf("%v %s %v gives %#v, want int 0 or 1", a, op.name, b, &v)
				}
			}
		}
	}
}

func TestOps_OperandUnchanged(t *testing.T) {
	v, other := FromInt(3), FromInt(4, "4")
	v.IntAdd(&other)
	TestValue(t, &other).Int(4).Text("4")
}

func TestIntAdd_Scenario(t *testing.T) {
	v, other := FromInt(3), FromInt(4)
	v.IntAdd(&other)
	TestValue(t, &v).Int(7).Cached(false).Text("7")
}

func TestIntOps_StaleSourceTextDropped(t *testing.T) {
	v, one := FromInt(7, "007"), FromInt(1)
	TestValue(t, &v).Text("007")
	v.IntMul(&one)
	TestValue(t, &v).Int(7).Text("7")
}

func TestIntOps_Wrap(t *testing.T) {
	v, one := FromInt(math.MaxInt64), FromInt(1)
	v.IntAdd(&one)
	TestValue(t, &v).Int(math.MinInt64)
}

func TestDoubleLess_Scenario(t *testing.T) {
	v, other := FromDouble(1.5), FromDouble(2.0)
	v.DoubleLess(&other)
	TestValue(t, &v).Kind(Int).Int(1).Text("1")
}

func TestIntNot(t *testing.T) {
	v := FromInt(0, "0")
	v.IntNot()
	TestValue(t, &v).Int(1).Cached(false)
	v.IntNot()
	TestValue(t, &v).Int(0).Cached(false)

	v = FromInt(-5)
	v.IntNot()
	TestValue(t, &v).Int(0)
}

func TestIntNotNoClear(t *testing.T) {
	v := FromInt(3)
	v.IntNotNoClear()
	TestValue(t, &v).Int(0).Cached(false)
	v.IntNotNoClear()
	TestValue(t, &v).Int(1).Cached(false).Text("1")
}

func TestDoubleNot(t *testing.T) {
	v := FromDouble(0, "0.0")
	v.DoubleNot()
	TestValue(t, &v).Kind(Int).Int(1).Cached(false)

	v = FromDouble(0.5)
	v.DoubleNot()
	TestValue(t, &v).Kind(Int).Int(0)
}

func BenchmarkIntAdd(b *testing.B) {
	v, one := FromInt(0), FromInt(1)
	for i := 0; i < b.N; i++ {
		v.IntAdd(&one)
	}
}

func BenchmarkAssignFrom(b *testing.B) {
	var v Value
	src := FromDouble(1.5, "1.5")
	for i := 0; i < b.N; i++ {
		v.AssignFrom(&src)
	}
}
