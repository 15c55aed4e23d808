/*
 * fieldio.go, part of orbfield.
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

/*Package fieldio reads and writes dense orbital fields as compressed text
snapshots.

A snapshot is a sequence of key=value header lines, a "** nx ny nz"
dimension line, a "@" grid-geometry line (origin then spacing) and one
line of four channel values (psi, amplitude, phase, probability) per
voxel in linear-index order. The compressor is picked from the last
letter of the filename: 'z' for gzip, 'r' for raw flate, anything else
(the .zst default included) for zstd. A 120^3 grid compresses to a few
MB, small enough to pass dense fields between the engine and a renderer
without recomputing them.
*/
package fieldio

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/orbsim/orbfield/field"
)

const defaultPrec = 6

//Write stores a field at name, compressed per the filename suffix. The
//header map, which may be nil, is stored verbatim; the reserved "prec" key
//overrides the number of significant digits per value (default 6). Keys
//must not contain '='.
func Write(name string, f *field.Field, header map[string]string) error {
	if f == nil {
		return &Error{message: "nil field given", filename: name, deco: []string{"Write"}, critical: true}
	}
	fd, err := os.Create(name)
	if err != nil {
		return &Error{message: err.Error(), filename: name, deco: []string{"Write"}, critical: true}
	}
	defer fd.Close()
	h, err := newCompressor(fd, name)
	if err != nil {
		return &Error{message: "can't set up compressor: " + err.Error(), filename: name, deco: []string{"Write"}, critical: true}
	}
	prec := defaultPrec
	for k, v := range header {
		if k == "prec" {
			p, err := strconv.Atoi(v)
			if err == nil && p > 0 {
				prec = p
			} else {
				log.Printf("fieldio: invalid precision %q for %s, using the default", v, name)
			}
		}
		fmt.Fprintf(h, "%s=%s\n", k, v)
	}
	fmt.Fprintf(h, "** %d %d %d\n", f.Grid.Nx, f.Grid.Ny, f.Grid.Nz)
	fmt.Fprintf(h, "@ %g %g %g %g %g %g\n",
		f.Grid.Origin.X, f.Grid.Origin.Y, f.Grid.Origin.Z,
		f.Grid.Spacing.X, f.Grid.Spacing.Y, f.Grid.Spacing.Z)
	buf := make([]byte, 0, 64)
	for i := range f.Psi {
		buf = buf[:0]
		buf = strconv.AppendFloat(buf, f.Psi[i], 'g', prec, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, f.Amplitude[i], 'g', prec, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, f.Phase[i], 'g', prec, 64)
		buf = append(buf, ' ')
		buf = strconv.AppendFloat(buf, f.Probability[i], 'g', prec, 64)
		buf = append(buf, '\n')
		if _, err := h.Write(buf); err != nil {
			h.Close()
			return &Error{message: err.Error(), filename: name, deco: []string{"Write"}, critical: true}
		}
	}
	if err := h.Close(); err != nil {
		return &Error{message: err.Error(), filename: name, deco: []string{"Write"}, critical: true}
	}
	return nil
}

//Read loads a field snapshot written by Write, returning the field and the
//stored header.
func Read(name string) (*field.Field, map[string]string, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, nil, &Error{message: err.Error(), filename: name, deco: []string{"Read"}, critical: true}
	}
	defer fd.Close()
	r, err := newDecompressor(fd, name)
	if err != nil {
		return nil, nil, &Error{message: "can't set up decompressor: " + err.Error(), filename: name, deco: []string{"Read"}, critical: true}
	}
	defer r.Close()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	header := map[string]string{}
	var f *field.Field
	voxel := 0
	for sc.Scan() {
		line := sc.Text()
		switch {
		case f == nil && strings.HasPrefix(line, "** "):
			g, err := parseDims(line, name)
			if err != nil {
				return nil, nil, err
			}
			if !sc.Scan() {
				return nil, nil, &Error{message: "snapshot truncated before grid geometry", filename: name, deco: []string{"Read"}, critical: true}
			}
			if err := parseGeometry(sc.Text(), &g, name); err != nil {
				return nil, nil, err
			}
			n := g.Len()
			f = &field.Field{
				Grid:        g,
				Psi:         make([]float64, n),
				Amplitude:   make([]float64, n),
				Phase:       make([]float64, n),
				Probability: make([]float64, n),
			}
		case f == nil:
			k, v, ok := strings.Cut(line, "=")
			if !ok {
				return nil, nil, &Error{message: fmt.Sprintf("malformed header line %q", line), filename: name, deco: []string{"Read"}, critical: true}
			}
			header[k] = v
		default:
			if voxel >= f.Grid.Len() {
				return nil, nil, &Error{message: "more voxel lines than grid points", filename: name, deco: []string{"Read"}, critical: true}
			}
			if err := parseVoxel(line, f, voxel, name); err != nil {
				return nil, nil, err
			}
			voxel++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, &Error{message: err.Error(), filename: name, deco: []string{"Read"}, critical: true}
	}
	if f == nil || voxel != f.Grid.Len() {
		return nil, nil, &Error{message: "snapshot truncated", filename: name, deco: []string{"Read"}, critical: true}
	}
	return f, header, nil
}

func parseDims(line, name string) (field.Grid, error) {
	var g field.Grid
	fields := strings.Fields(strings.TrimPrefix(line, "** "))
	if len(fields) != 3 {
		return g, &Error{message: fmt.Sprintf("malformed dimension line %q", line), filename: name, deco: []string{"Read"}, critical: true}
	}
	dims := [3]int{}
	for i, s := range fields {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return g, &Error{message: fmt.Sprintf("bad dimension %q", s), filename: name, deco: []string{"Read"}, critical: true}
		}
		dims[i] = v
	}
	g.Nx, g.Ny, g.Nz = dims[0], dims[1], dims[2]
	return g, nil
}

func parseGeometry(line string, g *field.Grid, name string) error {
	fields := strings.Fields(strings.TrimPrefix(line, "@ "))
	if !strings.HasPrefix(line, "@ ") || len(fields) != 6 {
		return &Error{message: fmt.Sprintf("malformed geometry line %q", line), filename: name, deco: []string{"Read"}, critical: true}
	}
	vals := [6]float64{}
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return &Error{message: fmt.Sprintf("bad geometry value %q", s), filename: name, deco: []string{"Read"}, critical: true}
		}
		vals[i] = v
	}
	g.Origin.X, g.Origin.Y, g.Origin.Z = vals[0], vals[1], vals[2]
	g.Spacing.X, g.Spacing.Y, g.Spacing.Z = vals[3], vals[4], vals[5]
	return nil
}

func parseVoxel(line string, f *field.Field, i int, name string) error {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return &Error{message: fmt.Sprintf("malformed voxel line %d", i), filename: name, deco: []string{"Read"}, critical: true}
	}
	dst := [4]*float64{&f.Psi[i], &f.Amplitude[i], &f.Phase[i], &f.Probability[i]}
	for j, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return &Error{message: fmt.Sprintf("bad value %q in voxel line %d", s, i), filename: name, deco: []string{"Read"}, critical: true}
		}
		*dst[j] = v
	}
	return nil
}

//newCompressor picks the compressor from the last letter of the filename,
//like the trajectory formats do: 'z' gzip, 'r' raw flate, zstd otherwise.
func newCompressor(w io.Writer, name string) (io.WriteCloser, error) {
	switch suffixLetter(name) {
	case 'z':
		return gzip.NewWriterLevel(w, gzip.BestCompression)
	case 'r':
		return flate.NewWriter(w, flate.BestCompression)
	default:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

func newDecompressor(r io.Reader, name string) (io.ReadCloser, error) {
	switch suffixLetter(name) {
	case 'z':
		return gzip.NewReader(r)
	case 'r':
		return flate.NewReader(r), nil
	default:
		d, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	}
}

func suffixLetter(name string) byte {
	if name == "" {
		return 0
	}
	return strings.ToLower(name)[len(name)-1]
}

//Error implements orbital.Error for this package.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err *Error) Error() string {
	return fmt.Sprintf("orbfield/fieldio: %s, file %s", err.message, err.filename)
}

//Decorate adds dec to the decoration trail of the error and returns the
//resulting trail.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error can be ignored.
func (err *Error) Critical() bool { return err.critical }

//FileName returns the name of the snapshot the error refers to.
func (err *Error) FileName() string { return err.filename }
