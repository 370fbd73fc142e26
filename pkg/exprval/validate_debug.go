//go:build exprvaldebug

package exprval

// Debug builds check the preconditions of accessors and optimized operators.
const validate = true
