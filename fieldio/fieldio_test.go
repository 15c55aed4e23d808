/*
 * fieldio_test.go, part of orbfield.
 *
 * Copyright 2026 The orbfield developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package fieldio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orbsim/orbfield/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testField(t *testing.T) *field.Field {
	f, err := field.Synthesize("H", 2, 1, 0, 9)
	require.NoError(t, err)
	return f
}

func assertFieldsClose(t *testing.T, want, got *field.Field, tol float64) {
	require.Equal(t, want.Grid.Nx, got.Grid.Nx)
	require.Equal(t, want.Grid.Ny, got.Grid.Ny)
	require.Equal(t, want.Grid.Nz, got.Grid.Nz)
	//grid geometry is written at full precision and must survive exactly
	assert.Equal(t, want.Grid.Origin, got.Grid.Origin)
	assert.Equal(t, want.Grid.Spacing, got.Grid.Spacing)
	require.Equal(t, len(want.Psi), len(got.Psi))
	for i := range want.Psi {
		assert.InDelta(t, want.Psi[i], got.Psi[i], tol*(1+want.Amplitude[i]), "psi at voxel %d", i)
		assert.InDelta(t, want.Amplitude[i], got.Amplitude[i], tol*(1+want.Amplitude[i]), "amplitude at voxel %d", i)
		assert.InDelta(t, want.Phase[i], got.Phase[i], tol*4, "phase at voxel %d", i)
		assert.InDelta(t, want.Probability[i], got.Probability[i], tol*(1+want.Probability[i]), "probability at voxel %d", i)
	}
}

func TestRoundTripZstd(t *testing.T) {
	f := testField(t)
	name := filepath.Join(t.TempDir(), "snap.zst")
	header := map[string]string{"molecule": "H 2p (m=0)", "source": "synthesize"}
	require.NoError(t, Write(name, f, header))
	got, gotHeader, err := Read(name)
	require.NoError(t, err)
	assert.Equal(t, header, gotHeader)
	assertFieldsClose(t, f, got, 1e-5)
}

func TestRoundTripGzipAndFlate(t *testing.T) {
	f := testField(t)
	for _, name := range []string{"snap.gz", "snap.r"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, Write(path, f, nil))
		got, header, err := Read(path)
		require.NoError(t, err, name)
		assert.Empty(t, header, name)
		assertFieldsClose(t, f, got, 1e-5)
	}
}

func TestWritePrecisionHeader(t *testing.T) {
	f := testField(t)
	name := filepath.Join(t.TempDir(), "snap.zst")
	require.NoError(t, Write(name, f, map[string]string{"prec": "12"}))
	got, header, err := Read(name)
	require.NoError(t, err)
	assert.Equal(t, "12", header["prec"])
	assertFieldsClose(t, f, got, 1e-11)
	//an unparseable precision falls back to the default instead of failing
	require.NoError(t, Write(name, f, map[string]string{"prec": "many"}))
	_, _, err = Read(name)
	assert.NoError(t, err)
}

func TestWriteErrors(t *testing.T) {
	dir := t.TempDir()
	err := Write(filepath.Join(dir, "snap.zst"), nil, nil)
	require.Error(t, err)
	ferr, ok := err.(*Error)
	require.True(t, ok)
	assert.True(t, ferr.Critical())
	assert.Contains(t, ferr.FileName(), "snap.zst")
	err = Write(filepath.Join(dir, "no", "such", "dir", "snap.zst"), testField(t), nil)
	assert.Error(t, err)
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	_, _, err := Read(filepath.Join(dir, "missing.zst"))
	require.Error(t, err)
	//plain text is not a valid zstd stream, or truncates before the grid
	garbled := filepath.Join(dir, "garbled.txt")
	require.NoError(t, os.WriteFile(garbled, []byte("not a snapshot\n"), 0644))
	_, _, err = Read(garbled)
	assert.Error(t, err)
}
