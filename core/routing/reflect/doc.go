// Package reflect routes calls to the exported methods of a service value using Go
// reflection.
//
// Every exported method is bound through [callable.FromMethod] and exposed under its
// name with the first letter lowered: "Add" becomes "add". Methods whose parameter or
// result types have no bridge in the registry, that take more than 16 parameters or
// that return more than one value besides an error are skipped.
//
// Method Naming Conventions:
//
// With [WithPrefix] only methods carrying one of the prefixes are exposed, and the
// prefix is dropped from the function name:
//
//	type Ledger struct{}
//
//	// QueryBalance is exposed as "balance".
//	func (l *Ledger) QueryBalance(account string) (int64, error)
//
//	// Close is not exposed.
//	func (l *Ledger) Close() error
//
//	r, err := reflect.NewRouter(&Ledger{}, reflect.WithPrefix("Query"))
//
// Errors:
//
// A method returning an error as its last result reports it from [Router.Invoke]; a
// panic inside a method is recovered and reported as [callable.ErrPanicked].
package reflect
