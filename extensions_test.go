package identifier

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmptyOrAbsent(t *testing.T) {
	tests := []struct {
		name string
		id   *Identifier
		want bool
	}{
		{name: "nil", id: nil, want: true},
		{name: "empty sentinel", id: Empty, want: true},
		{name: "zero value", id: &Identifier{}, want: true},
		{name: "parsed nil uuid", id: mustParse(t, "restored", "00000000-0000-0000-0000-000000000000"), want: true},
		{name: "fresh", id: New(), want: false},
		{name: "fresh named Empty", id: Named("Empty"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmptyOrAbsent(tt.id))
		})
	}
}

func TestJoinAll(t *testing.T) {
	a, b, c, d := Named("a"), Named("b"), Named("c"), Named("d")

	ab, err := a.Join(b)
	require.NoError(t, err)
	abc, err := ab.Join(c)
	require.NoError(t, err)
	abcd, err := abc.Join(d)
	require.NoError(t, err)

	tests := []struct {
		name string
		ids  []*Identifier
		want *Identifier
	}{
		{name: "two", ids: []*Identifier{a, b}, want: ab},
		{name: "three", ids: []*Identifier{a, b, c}, want: abc},
		{name: "four", ids: []*Identifier{a, b, c, d}, want: abcd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JoinAll(slices.Values(tt.ids))
			require.NoError(t, err)
			assert.Equal(t, tt.want.Name(), got.Name())
			assert.Equal(t, tt.want.ID(), got.ID())
		})
	}
}

func TestJoinAllOrderSensitiveName(t *testing.T) {
	a, b, c := Named("a"), Named("b"), Named("c")

	forward, err := JoinSlice([]*Identifier{a, b, c})
	require.NoError(t, err)
	backward, err := JoinSlice([]*Identifier{c, b, a})
	require.NoError(t, err)

	assert.Equal(t, "abc", forward.Name())
	assert.Equal(t, "cba", backward.Name())
	assert.Equal(t, forward.ID(), backward.ID())
}

func TestJoinAllErrors(t *testing.T) {
	a := Named("a")

	tests := []struct {
		name     string
		seq      iter.Seq[*Identifier]
		wantKind string
		wantErr  error
	}{
		{name: "nil sequence", seq: nil, wantKind: KindInvalidArgument, wantErr: ErrNilSequence},
		{name: "empty sequence", seq: slices.Values([]*Identifier{}), wantKind: KindInvalidOperation, wantErr: ErrTooFewIdentifiers},
		{name: "single element", seq: slices.Values([]*Identifier{a}), wantKind: KindInvalidOperation, wantErr: ErrTooFewIdentifiers},
		{name: "self join inside", seq: slices.Values([]*Identifier{a, a}), wantKind: KindInvalidOperation, wantErr: ErrSelfJoin},
		{name: "empty element", seq: slices.Values([]*Identifier{a, Named("b"), Empty}), wantKind: KindInvalidArgument, wantErr: ErrEmptyIdentifier},
		{name: "nil first element", seq: slices.Values([]*Identifier{nil, a}), wantKind: KindInvalidArgument, wantErr: ErrEmptyIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JoinAll(tt.seq)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, &Error{Op: "JoinAll", Kind: tt.wantKind})
		})
	}
}

func TestJoinAllReportsIndex(t *testing.T) {
	a, b := Named("a"), Named("b")

	_, err := JoinSlice([]*Identifier{a, b, nil})
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "JoinAll", e.Op)
	assert.Equal(t, 2, e.Context["index"])
	assert.Equal(t, "other", e.Context["operand"])
}

func TestJoinSliceNil(t *testing.T) {
	_, err := JoinSlice(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooFewIdentifiers)
	assert.True(t, IsInvalidOperation(err))
}

func TestJoinAllConsumesSequenceOnce(t *testing.T) {
	ids := []*Identifier{Named("a"), Named("b"), Named("c")}

	pulls := 0
	seq := func(yield func(*Identifier) bool) {
		pulls++
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}

	got, err := JoinAll(seq)
	require.NoError(t, err)
	assert.Equal(t, "abc", got.Name())
	assert.Equal(t, 1, pulls)
}

func mustParse(t *testing.T, name, id string) *Identifier {
	t.Helper()
	parsed, err := Parse(name, id)
	require.NoError(t, err)
	return parsed
}
