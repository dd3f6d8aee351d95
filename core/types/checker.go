package types

// Checker is an interface that can be implemented by types that can check themselves.
type Checker interface {
	Check() error
}
