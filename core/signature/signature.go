// Package signature encodes the shape of a callable, its return type and ordered
// parameter types, into a comparable identifier.
//
// The canonical form is "<ret>:<count>:<p1>,<p2>,...", every component being a decimal
// type identifier. Digits never include the delimiters and the parameter count is
// explicit, so two different shapes can never share an encoding:
//
//	int32(int32, int32) -> "5:2:5,5"
//	void(string)        -> "1:1:15"
//	float32()           -> "13:0:"
package signature

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/anoideaopen/invoker/core/types"
	"golang.org/x/crypto/sha3"
)

// MaxParams is the largest number of parameters a signature may carry.
const MaxParams = 16

// ErrMalformedSignature is returned when an identifier cannot be decoded.
var ErrMalformedSignature = errors.New("malformed signature")

// ID is the canonical encoding of a signature. IDs are equal iff the signatures are.
type ID string

// Encode returns the identifier of (ret, params). It panics if more than MaxParams
// parameters are given; callers validate arity when building layouts.
func Encode(ret types.TypeID, params ...types.TypeID) ID {
	if len(params) > MaxParams {
		panic(fmt.Sprintf("signature: %d parameters exceed the maximum of %d", len(params), MaxParams))
	}

	var sb strings.Builder
	sb.Grow(8 + 4*len(params))

	sb.WriteString(strconv.FormatUint(uint64(ret), 10))
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(len(params)))
	sb.WriteByte(':')
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(p), 10))
	}

	return ID(sb.String())
}

// Decode splits an identifier back into its return and parameter types.
func Decode(id ID) (types.TypeID, []types.TypeID, error) {
	parts := strings.SplitN(string(id), ":", 3)
	if len(parts) != 3 {
		return types.Invalid, nil, fmt.Errorf("%w: '%s'", ErrMalformedSignature, id)
	}

	ret, err := parseTypeID(parts[0])
	if err != nil {
		return types.Invalid, nil, fmt.Errorf("%w: '%s': return type: %w", ErrMalformedSignature, id, err)
	}

	count, err := strconv.Atoi(parts[1])
	if err != nil || count < 0 || count > MaxParams {
		return types.Invalid, nil, fmt.Errorf("%w: '%s': bad parameter count", ErrMalformedSignature, id)
	}

	params := make([]types.TypeID, 0, count)
	if parts[2] != "" {
		for _, field := range strings.Split(parts[2], ",") {
			p, err := parseTypeID(field)
			if err != nil {
				return types.Invalid, nil, fmt.Errorf("%w: '%s': parameter: %w", ErrMalformedSignature, id, err)
			}
			params = append(params, p)
		}
	}

	if len(params) != count {
		return types.Invalid, nil, fmt.Errorf(
			"%w: '%s': found %d parameters but expected %d",
			ErrMalformedSignature,
			id,
			len(params),
			count,
		)
	}

	return ret, params, nil
}

func parseTypeID(s string) (types.TypeID, error) {
	// Reject signs and leading zeros so that every id has exactly one spelling.
	if s == "" || (len(s) > 1 && s[0] == '0') || s[0] == '+' || s[0] == '-' {
		return types.Invalid, fmt.Errorf("invalid type id '%s'", s)
	}

	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return types.Invalid, err
	}

	return types.TypeID(v), nil
}

// Fingerprint returns the SHA3-256 digest of the encoding, used where a fixed-size
// signature is handier than the string, e.g. on the wire.
func (id ID) Fingerprint() [32]byte {
	return sha3.Sum256([]byte(id))
}

// Hex returns the fingerprint in hexadecimal.
func (id ID) Hex() string {
	fp := id.Fingerprint()
	return hex.EncodeToString(fp[:])
}

// Describe renders id in a human readable form such as "int32(int32, int32)".
// Type names are resolved through r; malformed ids are returned as is.
func Describe(id ID, r *types.Registry) string {
	ret, params, err := Decode(id)
	if err != nil {
		return string(id)
	}

	names := make([]string, len(params))
	for i, p := range params {
		names[i] = r.NameOf(p)
	}

	return r.NameOf(ret) + "(" + strings.Join(names, ", ") + ")"
}
