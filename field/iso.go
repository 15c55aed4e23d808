/*
 * iso.go, part of orbfield.
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

//iso.go extracts probability-calibrated isosurface thresholds from a dense
//probability sampling. The accumulation is greedy highest-density-first, so
//the super-level set it selects is the smallest-volume region holding the
//requested probability mass: the physically meaningful "contains X% of the
//electron" surface. This is deliberately not the rank-agnostic cumulative
//used for 2D slice contouring in slice.go.

package field

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

//IsoResult is a calibrated isosurface threshold. AchievedFraction is the
//cumulative probability mass actually contained where probability >=
//IsoValue, which may differ slightly from the requested target because of
//discretization. Callers must display the achieved value, not the target.
type IsoResult struct {
	IsoValue         float64
	AchievedFraction float64
}

//FindIsoValue returns the density threshold whose super-level set contains
//at least targetFraction of the total integrated probability mass. The
//target is clamped to [0.01, 0.99] first. A degenerate sampling with no
//positive mass falls back to max(probability)*0.2 + 1e-6, a nonzero minimal
//threshold that avoids an empty surface, with AchievedFraction zero.
func FindIsoValue(probability []float64, voxelVolume, targetFraction float64) IsoResult {
	return isoFromSorted(newSortedMass(probability, voxelVolume), targetFraction)
}

//IsoLevels solves FindIsoValue independently for count target fractions,
//for nested-shell rendering, and returns the results sorted by descending
//IsoValue so outer surfaces come before inner ones. The targets run from
//maxFraction/(count+1) to maxFraction with a uniform step, so consecutive
//shells enclose equal increments of probability mass. count below 1 returns
//nil.
func IsoLevels(probability []float64, voxelVolume, maxFraction float64, count int) []IsoResult {
	if count < 1 {
		return nil
	}
	sm := newSortedMass(probability, voxelVolume)
	out := make([]IsoResult, 0, count)
	last := clampFraction(maxFraction)
	first := last / float64(count+1)
	for i := 0; i < count; i++ {
		frac := first
		if count > 1 {
			if i == count-1 {
				//the last target lands exactly on maxFraction
				frac = last
			} else {
				frac = first + (last-first)*float64(i)/float64(count-1)
			}
		}
		out = append(out, isoFromSorted(sm, frac))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IsoValue > out[j].IsoValue })
	return out
}

//sortedMass is the shared precomputation for the calibrator: densities in
//descending order and the running cumulative per-voxel mass in that order.
type sortedMass struct {
	densities  []float64
	cumulative []float64
	total      float64
	maxDensity float64
}

func newSortedMass(probability []float64, voxelVolume float64) sortedMass {
	d := make([]float64, len(probability))
	copy(d, probability)
	sort.Sort(sort.Reverse(sort.Float64Slice(d)))
	cum := make([]float64, len(d))
	run := 0.0
	for i, v := range d {
		run += v * voxelVolume
		cum[i] = run
	}
	maxD := 0.0
	if len(d) > 0 {
		maxD = d[0] //descending order, the max sits first
	}
	return sortedMass{densities: d, cumulative: cum, total: run, maxDensity: maxD}
}

func isoFromSorted(sm sortedMass, targetFraction float64) IsoResult {
	target := clampFraction(targetFraction)
	if sm.total <= 0 || len(sm.densities) == 0 {
		return IsoResult{IsoValue: sm.maxDensity*0.2 + 1e-6, AchievedFraction: 0}
	}
	idx := sort.SearchFloat64s(sm.cumulative, target*sm.total)
	if idx >= len(sm.densities) {
		idx = len(sm.densities) - 1
	}
	return IsoResult{
		IsoValue:         sm.densities[idx],
		AchievedFraction: sm.cumulative[idx] / sm.total,
	}
}

func clampFraction(f float64) float64 {
	if f < 0.01 {
		return 0.01
	}
	if f > 0.99 {
		return 0.99
	}
	return f
}

//TotalMass integrates the probability over the sampling, the denominator of
//every fraction the calibrator reports.
func TotalMass(probability []float64, voxelVolume float64) float64 {
	return floats.Sum(probability) * voxelVolume
}
