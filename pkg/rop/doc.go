// Package rop defines Result[T], the two-variant outcome every check and
// composer in this module produces: success with a value or failure with an
// error. Results are immutable values; each one is stamped with an id and a
// UTC creation time.
package rop
