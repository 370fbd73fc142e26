package exprval

// Optimized operators for the evaluator's hot path.
//
// Each operator mutates the receiver in place, using other as the right-hand
// operand. The Int* operators assume both operands are Int and the Double*
// operators assume both are Double; the evaluator must have unified the
// operand kinds already. The assumption is only checked in debug builds.
//
// Comparisons always leave an Int 1 or 0 in the receiver.

func (v *Value) IntMul(other *Value) {
	if validate {
		checkKinds("IntMul", v, other, Int)
	}
	v.text, v.hasText = "", false
	v.i *= other.i
}

func (v *Value) DoubleMul(other *Value) {
	if validate {
		checkKinds("DoubleMul", v, other, Double)
	}
	v.text, v.hasText = "", false
	v.d *= other.d
}

func (v *Value) IntAdd(other *Value) {
	if validate {
		checkKinds("IntAdd", v, other, Int)
	}
	v.text, v.hasText = "", false
	v.i += other.i
}

func (v *Value) DoubleAdd(other *Value) {
	if validate {
		checkKinds("DoubleAdd", v, other, Double)
	}
	v.text, v.hasText = "", false
	v.d += other.d
}

func (v *Value) IntSub(other *Value) {
	if validate {
		checkKinds("IntSub", v, other, Int)
	}
	v.text, v.hasText = "", false
	v.i -= other.i
}

func (v *Value) DoubleSub(other *Value) {
	if validate {
		checkKinds("DoubleSub", v, other, Double)
	}
	v.text, v.hasText = "", false
	v.d -= other.d
}

func (v *Value) IntLess(other *Value) {
	if validate {
		checkKinds("IntLess", v, other, Int)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.i < other.i)
}

func (v *Value) DoubleLess(other *Value) {
	if validate {
		checkKinds("DoubleLess", v, other, Double)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.d < other.d)
	v.kind = Int
}

func (v *Value) IntGreater(other *Value) {
	if validate {
		checkKinds("IntGreater", v, other, Int)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.i > other.i)
}

func (v *Value) DoubleGreater(other *Value) {
	if validate {
		checkKinds("DoubleGreater", v, other, Double)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.d > other.d)
	v.kind = Int
}

func (v *Value) IntLessEq(other *Value) {
	if validate {
		checkKinds("IntLessEq", v, other, Int)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.i <= other.i)
}

func (v *Value) DoubleLessEq(other *Value) {
	if validate {
		checkKinds("DoubleLessEq", v, other, Double)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.d <= other.d)
	v.kind = Int
}

func (v *Value) IntGreaterEq(other *Value) {
	if validate {
		checkKinds("IntGreaterEq", v, other, Int)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.i >= other.i)
}

func (v *Value) DoubleGreaterEq(other *Value) {
	if validate {
		checkKinds("DoubleGreaterEq", v, other, Double)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.d >= other.d)
	v.kind = Int
}

func (v *Value) IntEq(other *Value) {
	if validate {
		checkKinds("IntEq", v, other, Int)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.i == other.i)
}

func (v *Value) DoubleEq(other *Value) {
	if validate {
		checkKinds("DoubleEq", v, other, Double)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.d == other.d)
	v.kind = Int
}

func (v *Value) IntNotEq(other *Value) {
	if validate {
		checkKinds("IntNotEq", v, other, Int)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.i != other.i)
}

func (v *Value) DoubleNotEq(other *Value) {
	if validate {
		checkKinds("DoubleNotEq", v, other, Double)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.d != other.d)
	v.kind = Int
}

// IntNot applies the logical not operator to an Int receiver.
func (v *Value) IntNot() {
	if validate {
		checkKind("IntNot", v, Int)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.i == 0)
}

// IntNotNoClear is like IntNot, but assumes v has no cached text and leaves
// the cache alone. Calling it on a value with cached text leaves a stale
// cache behind; debug builds catch this.
func (v *Value) IntNotNoClear() {
	if validate {
		checkKind("IntNotNoClear", v, Int)
		if v.hasText {
			fault("IntNotNoClear", "called on value with cached text")
		}
	}
	v.i = b2i(v.i == 0)
}

// DoubleNot applies the logical not operator to a Double receiver, leaving
// an Int 1 or 0.
func (v *Value) DoubleNot() {
	if validate {
		checkKind("DoubleNot", v, Double)
	}
	v.text, v.hasText = "", false
	v.i = b2i(v.d == 0)
	v.kind = Int
}
