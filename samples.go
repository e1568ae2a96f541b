// Copyright (C) The Lightning Authors. All rights reserved.
//
// SPDX-License-Identifier: AGPL-3.0

package tileplot

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/csimplestring/go-csv/detector"
	log "github.com/sirupsen/logrus"
)

// loadSampleList reads the samples.csv written by choose-samples:
// column 1 is the sample ID, and a row whose column 0 is "Index" is a
// header. Order and duplicates are preserved -- row i of the component
// matrix is samples[i].
func loadSampleList(fnm string) ([]string, error) {
	f, err := os.Open(fnm)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	csvr := csv.NewReader(f)
	csvr.FieldsPerRecord = -1
	var samples []string
	for lineno := 1; ; lineno++ {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%s: %w", fnm, err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s line %d: expected at least 2 fields, got %d", fnm, lineno, len(rec))
		}
		if rec[0] == "Index" {
			continue
		}
		samples = append(samples, rec[1])
	}
	return samples, nil
}

// loadPhenotypes reads one phenotype file, or every file in a
// phenotype directory, and assigns each sample a category label
// (column cat1) and a flag (column cat2 present and not "0").
//
// Column 0 of each record is a match token, matched against sample
// IDs by substring containment: one record can label many samples,
// and one sample can be hit by many records, in which case the match
// read last wins for both label and flag. Samples nothing matches
// stay out of both maps.
func loadPhenotypes(path string, samples []string, cat1, cat2 int) (labels map[string]string, flagged map[string]bool, err error) {
	fnms := []string{path}
	if fi, err := os.Stat(path); err != nil {
		return nil, nil, err
	} else if fi.IsDir() {
		dirents, err := os.ReadDir(path)
		if err != nil {
			return nil, nil, err
		}
		fnms = nil
		for _, dirent := range dirents {
			if !dirent.IsDir() {
				fnms = append(fnms, path+"/"+dirent.Name())
			}
		}
		sort.Strings(fnms)
	}
	labels = map[string]string{}
	flagged = map[string]bool{}
	for _, fnm := range fnms {
		err = readPhenotypeFile(fnm, samples, cat1, cat2, labels, flagged)
		if err != nil {
			return nil, nil, err
		}
	}
	log.Infof("%d of %d samples have a phenotype label", len(labels), len(samples))
	return labels, flagged, nil
}

func readPhenotypeFile(fnm string, samples []string, cat1, cat2 int, labels map[string]string, flagged map[string]bool) error {
	f, err := os.Open(fnm)
	if err != nil {
		return err
	}
	defer f.Close()
	delim, err := sniffDelimiter(f)
	if err != nil {
		return fmt.Errorf("%s: %w", fnm, err)
	}
	csvr := csv.NewReader(f)
	csvr.Comma = delim
	csvr.FieldsPerRecord = -1
	for lineno := 1; ; lineno++ {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("%s: %w", fnm, err)
		}
		need := cat1
		if cat2 > need {
			need = cat2
		}
		if len(rec) <= need {
			return fmt.Errorf("%s line %d: expected at least %d fields, got %d", fnm, lineno, need+1, len(rec))
		}
		token := rec[0]
		for _, sampleid := range samples {
			if !strings.Contains(sampleid, token) {
				continue
			}
			labels[sampleid] = rec[cat1]
			if cat2 >= 0 {
				flagged[sampleid] = rec[cat2] != "0"
			}
		}
	}
	return nil
}

// sniffDelimiter detects the field separator once per file, then
// rewinds so the caller can parse from the beginning with a fixed
// csv.Reader.
func sniffDelimiter(f io.ReadSeeker) (rune, error) {
	d := detector.New()
	delimiters := d.DetectDelimiter(f, '"')
	_, err := f.Seek(0, io.SeekStart)
	if err != nil {
		return 0, err
	}
	if len(delimiters) > 0 {
		return rune(delimiters[0][0]), nil
	}
	return ',', nil
}
