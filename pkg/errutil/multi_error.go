// Package errutil contains utilities for working with errors.
package errutil

import "strings"

// Multi returns nil when every argument is nil and the sole non-nil argument
// when there is just one. Otherwise it returns an error listing each message
// after "multiple errors: ", separated by semicolons.
//
// The result unwraps to its members, so errors.Is and errors.As look through
// it. Arguments that are themselves results of Multi contribute their members
// instead of nesting.
func Multi(errs ...error) error {
	var nonNil []error
	for _, err := range errs {
		if err != nil {
			if multi, ok := err.(multiError); ok {
				nonNil = append(nonNil, multi...)
			} else {
				nonNil = append(nonNil, err)
			}
		}
	}
	switch len(nonNil) {
	case 0:
		return nil
	case 1:
		return nonNil[0]
	default:
		return multiError(nonNil)
	}
}

type multiError []error

func (me multiError) Error() string {
	var sb strings.Builder
	sb.WriteString("multiple errors: ")
	for i, e := range me {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

func (me multiError) Unwrap() []error { return me }
