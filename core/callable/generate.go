package callable

// Func0..Func16 and Action0..Action16
//go:generate go run ../../internal/gen/adapters -o zz_generated_adapters.go
