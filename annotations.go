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
	"strconv"
	"strings"

	"github.com/klauspost/pgzip"
	log "github.com/sirupsen/logrus"
)

type tilePos struct {
	seqname string
	pos     int
}

// loadTilePos scans dir for the annotation files written next to the
// onehot matrix and returns a map from tag to reference coordinate.
// Only primary placements (relation field "=") are used. If a tag is
// annotated more than once, the record read last wins; file names are
// sorted first so the result does not depend on directory order.
func loadTilePos(dir string) (map[tagID]tilePos, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var fnms []string
	for _, dirent := range dirents {
		name := dirent.Name()
		if strings.HasSuffix(name, ".annotations.csv") || strings.HasSuffix(name, ".annotations.csv.gz") {
			fnms = append(fnms, dir+"/"+name)
		}
	}
	if len(fnms) == 0 {
		return nil, fmt.Errorf("no *.annotations.csv files found in %s", dir)
	}
	sort.Strings(fnms)
	tilepos := map[tagID]tilePos{}
	for _, fnm := range fnms {
		err = readAnnotationFile(fnm, tilepos)
		if err != nil {
			return nil, err
		}
	}
	log.Infof("%s: %d tags have coordinates", dir, len(tilepos))
	return tilepos, nil
}

func readAnnotationFile(fnm string, tilepos map[tagID]tilePos) error {
	f, err := os.Open(fnm)
	if err != nil {
		return err
	}
	defer f.Close()
	var rdr io.Reader = f
	if strings.HasSuffix(fnm, ".gz") {
		gzr, err := pgzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("%s: %w", fnm, err)
		}
		defer gzr.Close()
		rdr = gzr
	}
	csvr := csv.NewReader(rdr)
	csvr.FieldsPerRecord = -1
	for lineno := 1; ; lineno++ {
		// 500000,0,2,=,chr1,160793649,,,
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("%s: %w", fnm, err)
		}
		if len(rec) < 4 {
			return fmt.Errorf("%s line %d: expected at least 4 fields, got %d", fnm, lineno, len(rec))
		}
		if rec[3] != "=" {
			continue
		}
		if len(rec) < 6 {
			return fmt.Errorf("%s line %d: expected at least 6 fields, got %d", fnm, lineno, len(rec))
		}
		tag, err := strconv.Atoi(rec[0])
		if err != nil {
			return fmt.Errorf("%s line %d: tag %q: %w", fnm, lineno, rec[0], err)
		}
		pos, err := strconv.Atoi(rec[5])
		if err != nil {
			return fmt.Errorf("%s line %d: position %q: %w", fnm, lineno, rec[5], err)
		}
		tilepos[tagID(tag)] = tilePos{seqname: rec[4], pos: pos}
	}
	return nil
}
