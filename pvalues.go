// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"fmt"
	"math"
	"os"

	"github.com/kshedden/gonpy"
)

type tagID int32

// loadTagPvalues reads onehot-columns.npy from dir and returns a map
// from tag to that tag's p-values, one entry per onehot column, in
// column order. A tag appears once per tile variant scored (typically
// one het and one hom column), so the slice order is meaningful and
// preserved all the way to plot/CSV output.
//
// The array is int32 with shape [5][ncols]: row 0 is the tag id, row 4
// is -log10(p) scaled by 1e6. Rows 1-3 (variant, het/hom flag, onehot
// column index) are not needed here.
func loadTagPvalues(dir string) (map[tagID][]float64, error) {
	fnm := dir + "/onehot-columns.npy"
	f, err := os.Open(fnm)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	npy, err := gonpy.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: reading npy header: %w", fnm, err)
	}
	if len(npy.Shape) != 2 || npy.Shape[0] < 5 {
		return nil, fmt.Errorf("%s: expected shape [5 ncols], got %v", fnm, npy.Shape)
	}
	if npy.ColumnMajor {
		return nil, fmt.Errorf("%s: column-major arrays are not supported", fnm)
	}
	data, err := npy.GetInt32()
	if err != nil {
		return nil, fmt.Errorf("%s: reading npy data: %w", fnm, err)
	}
	ncols := npy.Shape[1]
	pvalue := make(map[tagID][]float64, ncols/2)
	for col := 0; col < ncols; col++ {
		tag := tagID(data[col])
		p := math.Pow(10, -float64(data[4*ncols+col])/1e6)
		pvalue[tag] = append(pvalue[tag], p)
	}
	return pvalue, nil
}
