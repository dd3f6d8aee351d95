package types

import "strconv"

// TypeID is a small discriminator identifying a bridged type within a process.
type TypeID uint16

// Built-in type identifiers. The values are part of the signature encoding and must not change.
const (
	Invalid TypeID = iota // Sentinel for out-of-range parameter queries.
	Void                  // Return type of functions without a result.
	Bool
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Float32
	Float64
	String
	Bytes
	UUID
	Time
	Duration
	BigInt

	// FirstCustom is the first identifier handed out to types registered at runtime.
	FirstCustom TypeID = 64
)

var builtinNames = map[TypeID]string{
	Invalid:  "invalid",
	Void:     "void",
	Bool:     "bool",
	Int8:     "int8",
	Int16:    "int16",
	Int32:    "int32",
	Int64:    "int64",
	Int:      "int",
	Uint8:    "uint8",
	Uint16:   "uint16",
	Uint32:   "uint32",
	Uint64:   "uint64",
	Uint:     "uint",
	Float32:  "float32",
	Float64:  "float64",
	String:   "string",
	Bytes:    "bytes",
	UUID:     "uuid",
	Time:     "time",
	Duration: "duration",
	BigInt:   "bigint",
}

// IsBuiltin reports whether id is one of the predefined identifiers.
func (id TypeID) IsBuiltin() bool {
	_, ok := builtinNames[id]
	return ok
}

// String returns the name of a built-in type, or "type#N" for custom ones.
func (id TypeID) String() string {
	if name, ok := builtinNames[id]; ok {
		return name
	}

	return "type#" + strconv.FormatUint(uint64(id), 10)
}
