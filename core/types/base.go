package types

import (
	"bytes"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

func signedCodec[T signed](id TypeID, bits int) *Codec[T, T] {
	return NewCodec(id, id.String(), CodecFuncs[T, T]{
		ToStorage: identity[T],
		ToReal:    identity[T],
		Parse: func(in string) (T, error) {
			v, err := strconv.ParseInt(strings.TrimSpace(in), 10, bits)
			return T(v), err
		},
		Format: func(v T) string {
			return strconv.FormatInt(int64(v), 10)
		},
	})
}

func unsignedCodec[T unsigned](id TypeID, bits int) *Codec[T, T] {
	return NewCodec(id, id.String(), CodecFuncs[T, T]{
		ToStorage: identity[T],
		ToReal:    identity[T],
		Parse: func(in string) (T, error) {
			v, err := strconv.ParseUint(strings.TrimSpace(in), 10, bits)
			return T(v), err
		},
		Format: func(v T) string {
			return strconv.FormatUint(uint64(v), 10)
		},
	})
}

func floatCodec[T float](id TypeID, bits int) *Codec[T, T] {
	return NewCodec(id, id.String(), CodecFuncs[T, T]{
		ToStorage: identity[T],
		ToReal:    identity[T],
		Parse: func(in string) (T, error) {
			v, err := strconv.ParseFloat(strings.TrimSpace(in), bits)
			return T(v), err
		},
		Format: func(v T) string {
			// The shortest representation that parses back to the same value.
			return strconv.FormatFloat(float64(v), 'g', -1, bits)
		},
	})
}

// builtinBridges returns the bridges every registry starts with.
func builtinBridges() []Bridge {
	return []Bridge{
		NewCodec(Bool, Bool.String(), CodecFuncs[bool, bool]{
			ToStorage: identity[bool],
			ToReal:    identity[bool],
			Parse: func(in string) (bool, error) {
				return strconv.ParseBool(strings.TrimSpace(in))
			},
			Format: strconv.FormatBool,
		}),

		signedCodec[int8](Int8, 8),
		signedCodec[int16](Int16, 16),
		signedCodec[int32](Int32, 32),
		signedCodec[int64](Int64, 64),
		signedCodec[int](Int, strconv.IntSize),

		unsignedCodec[uint8](Uint8, 8),
		unsignedCodec[uint16](Uint16, 16),
		unsignedCodec[uint32](Uint32, 32),
		unsignedCodec[uint64](Uint64, 64),
		unsignedCodec[uint](Uint, strconv.IntSize),

		floatCodec[float32](Float32, 32),
		floatCodec[float64](Float64, 64),

		NewCodec(String, String.String(), CodecFuncs[string, string]{
			ToStorage: identity[string],
			ToReal:    identity[string],
			Parse:     func(in string) (string, error) { return in, nil },
			Format:    identity[string],
		}),

		// Byte slices travel as base58 text.
		NewCodec(Bytes, Bytes.String(), CodecFuncs[[]byte, []byte]{
			ToStorage: bytes.Clone,
			ToReal:    bytes.Clone,
			Parse: func(in string) ([]byte, error) {
				in = strings.TrimSpace(in)
				out := base58.Decode(in)
				if in != "" && len(out) == 0 {
					return nil, fmt.Errorf("couldn't decode base58 '%s'", in)
				}
				return out, nil
			},
			Format: base58.Encode,
		}),

		NewCodec(UUID, UUID.String(), CodecFuncs[uuid.UUID, uuid.UUID]{
			ToStorage: identity[uuid.UUID],
			ToReal:    identity[uuid.UUID],
			Parse: func(in string) (uuid.UUID, error) {
				return uuid.Parse(strings.TrimSpace(in))
			},
			Format: uuid.UUID.String,
		}),

		// Times are kept as protobuf timestamps and come back in UTC.
		NewCodec(Time, Time.String(), CodecFuncs[time.Time, *timestamppb.Timestamp]{
			ToStorage: timestamppb.New,
			ToReal: func(ts *timestamppb.Timestamp) time.Time {
				if ts == nil {
					return time.Time{}
				}
				return ts.AsTime()
			},
			Parse: func(in string) (*timestamppb.Timestamp, error) {
				t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(in))
				if err != nil {
					return nil, err
				}
				return timestamppb.New(t), nil
			},
			Format: func(ts *timestamppb.Timestamp) string {
				if ts == nil {
					return time.Time{}.Format(time.RFC3339Nano)
				}
				return ts.AsTime().Format(time.RFC3339Nano)
			},
		}),

		NewCodec(Duration, Duration.String(), CodecFuncs[time.Duration, *durationpb.Duration]{
			ToStorage: durationpb.New,
			ToReal: func(d *durationpb.Duration) time.Duration {
				if d == nil {
					return 0
				}
				return d.AsDuration()
			},
			Parse: func(in string) (*durationpb.Duration, error) {
				d, err := time.ParseDuration(strings.TrimSpace(in))
				if err != nil {
					return nil, err
				}
				return durationpb.New(d), nil
			},
			Format: func(d *durationpb.Duration) string {
				if d == nil {
					return time.Duration(0).String()
				}
				return d.AsDuration().String()
			},
		}),

		// Big integers are stored in their canonical decimal form.
		NewCodec(BigInt, BigInt.String(), CodecFuncs[*big.Int, string]{
			ToStorage: func(v *big.Int) string {
				if v == nil {
					return "0"
				}
				return v.String()
			},
			ToReal: func(s string) *big.Int {
				v, ok := new(big.Int).SetString(s, 10) //nolint:gomnd
				if !ok {
					return new(big.Int)
				}
				return v
			},
			Parse: func(in string) (string, error) {
				v, ok := new(big.Int).SetString(strings.TrimSpace(in), 10) //nolint:gomnd
				if !ok {
					return "", fmt.Errorf("couldn't convert %s to bigint", in)
				}
				return v.String(), nil
			},
			Format:  identity[string],
			Default: func() *big.Int { return new(big.Int) },
		}),
	}
}
