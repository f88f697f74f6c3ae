// SPDX-License-Identifier: MIT

package matrix_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
	"github.com/stretchr/testify/require"
)

func TestJSON_RoundTripKeepsExactEntries(t *testing.T) {
	t.Parallel()

	m := MustFromStrings(t, [][]string{{"1/3", "-22/7"}, {"0", "123456789012345678901234567890/7"}})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	require.Contains(t, string(data), `"rows":2`)
	require.Contains(t, string(data), `{"num":"-22","den":"7"}`)

	var back matrix.Dense
	require.NoError(t, json.Unmarshal(data, &back))
	RequireMatrixEqual(t, m, &back)
}

func TestJSON_ZeroSizedShapes(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 3, 0)
	data, err := json.Marshal(m)
	require.NoError(t, err)

	var back matrix.Dense
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, 3, back.Rows())
	require.Equal(t, 0, back.Cols())
}

func TestJSON_Errors(t *testing.T) {
	t.Parallel()

	var m matrix.Dense
	err := json.Unmarshal([]byte(`{"rows":1,"cols":2,"data":[["1"]]}`), &m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = json.Unmarshal([]byte(`{"rows":2,"cols":1,"data":[["1"]]}`), &m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = json.Unmarshal([]byte(`{"rows":-1,"cols":0,"data":[]}`), &m)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	// Oversized shapes are rejected before anything is allocated.
	err = json.Unmarshal([]byte(`{"rows":1099511627776,"cols":1048576,"data":[]}`), &m)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	err = json.Unmarshal([]byte(`{"rows":4294967296,"cols":4294967296,"data":[]}`), &m)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	err = json.Unmarshal([]byte(`{"rows":1048576,"cols":0,"data":[]}`), &m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	err = json.Unmarshal([]byte(`{"rows":1,"cols":1,"data":[[{"num":"1","den":"0"}]]}`), &m)
	require.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func TestRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	m := MustFromInts(t, [][]int64{{1, 2}, {3, 4}})
	rec := m.ToRecord()
	require.Equal(t, 2, rec.Rows)
	require.Equal(t, 2, rec.Cols)

	back, err := matrix.FromRecord(rec)
	require.NoError(t, err)
	RequireMatrixEqual(t, m, back)
}
