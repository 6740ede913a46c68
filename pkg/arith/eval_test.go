package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name    string
		op      Op
		policy  Policy
		a, b    uint64
		want    uint64
		wantErr error
	}{
		{"add wrap", OpAdd, PolicyWrap, 2, 2, 4, nil},
		{"mult wrap", OpMult, PolicyWrap, 3, 3, 9, nil},
		{"add wrap overflow", OpAdd, PolicyWrap, math.MaxUint64, 1, 0, nil},
		{"empty policy wraps", OpAdd, "", math.MaxUint64, 2, 1, nil},
		{"add saturate", OpAdd, PolicySaturate, math.MaxUint64, 1, math.MaxUint64, nil},
		{"mult saturate no overflow", OpMult, PolicySaturate, 6, 7, 42, nil},
		{"mult saturate overflow", OpMult, PolicySaturate, 1 << 40, 1 << 40, math.MaxUint64, nil},
		{"add fail overflow", OpAdd, PolicyFail, math.MaxUint64, 1, 0, ErrOverflow},
		{"mult fail overflow", OpMult, PolicyFail, 1 << 32, 1 << 32, 0, ErrOverflow},
		{"mult fail in range", OpMult, PolicyFail, 1 << 31, 1 << 32, 1 << 63, nil},
		{"unknown op", Op("sub"), PolicyWrap, 1, 1, 0, ErrUnknownOp},
		{"unknown policy", OpAdd, Policy("clamp"), 1, 1, 0, ErrUnknownPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.op, tt.policy, tt.a, tt.b)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOp(t *testing.T) {
	op, err := ParseOp("ADD")
	require.NoError(t, err)
	assert.Equal(t, OpAdd, op)

	op, err = ParseOp(" mult ")
	require.NoError(t, err)
	assert.Equal(t, OpMult, op)

	_, err = ParseOp("div")
	assert.ErrorIs(t, err, ErrUnknownOp)
}

func TestParsePolicy(t *testing.T) {
	for _, p := range Policies {
		got, err := ParsePolicy(string(p))
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyWrap, got)

	_, err = ParsePolicy("clamp")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}
