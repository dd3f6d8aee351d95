// Package stringsx holds the string helpers used to derive function names from Go
// method names.
package stringsx
