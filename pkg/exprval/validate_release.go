//go:build !exprvaldebug

package exprval

const validate = false
