// Package core holds execution options carried in a context, such as the
// worker limit used when checks are evaluated concurrently.
package core
