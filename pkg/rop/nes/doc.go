// Package nes provides NonEmpty[E], an ordered sequence that always holds at
// least one element. Concat is the combination rule used to merge
// accumulated failures: left operand first, then right.
package nes
