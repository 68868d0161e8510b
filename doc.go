// Package whens provides an ordered predicate-dispatch construct: a
// switch whose cases are arbitrary predicates considered in order,
// with the first match winning.
//
// The core code is in package 'core', and some command-line tools are
// in 'cmd'.
package whens
