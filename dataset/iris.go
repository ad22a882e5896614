// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/scratchml/knn"
	"github.com/katalvlaran/scratchml/linalg"
)

const (
	opParseIris = "ParseIris"

	irisFeatures = 4
)

//go:embed data/iris.data
var irisData []byte

// ParseIris reads rows of "sepal_len,sepal_wid,petal_len,petal_wid,Iris-class"
// and returns one LabeledPoint per row. The label is the class name after
// the last '-' ("Iris-setosa" → "setosa"). Blank lines are skipped.
//
// Errors:
//   - ErrMalformedRecord for a row without four numbers and a label.
//   - csv read errors, wrapped.
func ParseIris(r io.Reader) ([]knn.LabeledPoint, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []knn.LabeledPoint
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, datasetErrorf(opParseIris, err)
		}
		p, err := parseIrisRecord(rec)
		if err != nil {
			line, _ := cr.FieldPos(0)
			return nil, datasetErrorf(opParseIris+" line "+strconv.Itoa(line), err)
		}
		out = append(out, p)
	}
}

func parseIrisRecord(rec []string) (knn.LabeledPoint, error) {
	if len(rec) != irisFeatures+1 {
		return knn.LabeledPoint{}, ErrMalformedRecord
	}
	point := make(linalg.Vector, irisFeatures)
	for i := range point {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
		if err != nil {
			return knn.LabeledPoint{}, ErrMalformedRecord
		}
		point[i] = v
	}
	label := strings.TrimSpace(rec[irisFeatures])
	if i := strings.LastIndexByte(label, '-'); i >= 0 {
		label = label[i+1:]
	}
	if label == "" {
		return knn.LabeledPoint{}, ErrMalformedRecord
	}
	return knn.LabeledPoint{Point: point, Label: label}, nil
}

// Iris returns the 150 embedded iris measurements.
func Iris() []knn.LabeledPoint {
	pts, err := ParseIris(bytes.NewReader(irisData))
	if err != nil {
		panic("dataset: embedded iris data is invalid: " + err.Error())
	}
	return pts
}
