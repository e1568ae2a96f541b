// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/kshedden/gonpy"
	log "github.com/sirupsen/logrus"
)

type scatterPlot struct{}

func (cmd *scatterPlot) RunCommand(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
		}
	}()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	flags.SetOutput(stderr)
	pprof := flags.String("pprof", "", "serve Go profile data at http://`[addr]:port`")
	inputFilename := flags.String("i", "-", "input `file` (numpy matrix, one row per sample)")
	outputFilename := flags.String("o", "", "output `filename` (e.g., './plot.png')")
	sampleListFilename := flags.String("samples", "", "use second column of `samples.csv` as complete list of sample IDs")
	phenotypeFilename := flags.String("phenotype", "", "use `phenotype.csv` (or all files in a directory) as id->phenotype mapping (column 0 is sample id)")
	cat1Column := flags.Int("phenotype-cat1-column", 1, "0-based column `index` of 1st category in phenotype.csv file")
	cat2Column := flags.Int("phenotype-cat2-column", -1, "0-based column `index` of 2nd category in phenotype.csv file")
	xComponent := flags.Int("x", 1, "1-based column of input matrix to plot on x axis")
	yComponent := flags.Int("y", 2, "1-based column of input matrix to plot on y axis")
	err = flags.Parse(args)
	if err == flag.ErrHelp {
		err = nil
		return 0
	} else if err != nil {
		return 2
	} else if flags.NArg() > 0 {
		err = fmt.Errorf("errant command line arguments after parsed flags: %v", flags.Args())
		return 2
	}
	if *outputFilename == "" {
		err = errors.New("must specify -o filename.png (or try -help)")
		return 2
	}

	if *pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprof, nil))
		}()
	}

	X, rows, cols, err := loadComponentMatrix(*inputFilename)
	if err != nil {
		return 1
	}
	if *xComponent < 1 || *xComponent > cols || *yComponent < 1 || *yComponent > cols {
		err = fmt.Errorf("-x %d -y %d out of range for %d-column matrix", *xComponent, *yComponent, cols)
		return 1
	}

	var points []scatterPoint
	if *sampleListFilename == "" {
		for i := 0; i < rows; i++ {
			points = append(points, scatterPoint{
				x: X[i*cols+*xComponent-1],
				y: X[i*cols+*yComponent-1],
				c: unknownColor,
			})
		}
	} else {
		var samples []string
		samples, err = loadSampleList(*sampleListFilename)
		if err != nil {
			return 1
		}
		if len(samples) != rows {
			err = fmt.Errorf("%s lists %d samples, but matrix has %d rows", *sampleListFilename, len(samples), rows)
			return 1
		}
		labels := map[string]string{}
		flagged := map[string]bool{}
		if *phenotypeFilename != "" {
			labels, flagged, err = loadPhenotypes(*phenotypeFilename, samples, *cat1Column, *cat2Column)
			if err != nil {
				return 1
			}
		}
		colors := colorsForSamples(samples, labels)
		// Grey (unlabeled) samples first so palette colors
		// stay visible on top, circles before crosses.
		for _, wantFlagged := range []bool{false, true} {
			for _, unknownFirst := range []bool{true, false} {
				for i, sampleid := range samples {
					if (colors[i] == unknownColor) != unknownFirst || flagged[sampleid] != wantFlagged {
						continue
					}
					points = append(points, scatterPoint{
						x:       X[i*cols+*xComponent-1],
						y:       X[i*cols+*yComponent-1],
						c:       colors[i],
						flagged: wantFlagged,
					})
				}
			}
		}
	}
	err = renderScatter(*outputFilename, points,
		fmt.Sprintf("component %d", *xComponent),
		fmt.Sprintf("component %d", *yComponent))
	if err != nil {
		return 1
	}
	return 0
}

// loadComponentMatrix reads a 2-D float64 numpy array (the PCA output)
// and returns it in row-major order along with its dimensions.
func loadComponentMatrix(fnm string) ([]float64, int, int, error) {
	f, err := os.Open(fnm)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()
	npy, err := gonpy.NewReader(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%s: reading npy header: %w", fnm, err)
	}
	if len(npy.Shape) != 2 {
		return nil, 0, 0, fmt.Errorf("%s: expected 2-D array, got shape %v", fnm, npy.Shape)
	}
	if npy.ColumnMajor {
		return nil, 0, 0, fmt.Errorf("%s: column-major arrays are not supported", fnm)
	}
	data, err := npy.GetFloat64()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%s: reading npy data: %w", fnm, err)
	}
	return data, npy.Shape[0], npy.Shape[1], nil
}
