package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/matrix"
	"github.com/katalvlaran/salesman/tsp"
)

// instance builds the problem for this run: from the configured matrix file
// when one is set, otherwise from random nodes drawn from the seed.
func (a *App) instance(seed int64) (*tsp.Tsp, error) {
	if a.cfg.MatrixFile == "" {
		nodes := geom.RandomNodes(a.cfg.Nodes, a.cfg.Extent, tsp.DeriveRand(seed, streamNodes))
		return tsp.New(nodes), nil
	}

	m, err := LoadMatrixFile(a.cfg.MatrixFile)
	if err != nil {
		return nil, err
	}
	inst, err := tsp.NewFromMatrix(nil, m)
	if err != nil {
		return nil, fmt.Errorf("app: matrix %s: %w", a.cfg.MatrixFile, err)
	}

	return inst, nil
}

// LoadMatrixFile reads a cost table written as a YAML list of rows:
//
//	- [0, 5, 9]
//	- [5, 0, 4]
//	- [9, 4, 0]
//
// Ragged rows and non-finite entries (.nan, .inf) are rejected with the
// matrix sentinels; cost-table rules are left to tsp.DistanceMatrixFrom.
func LoadMatrixFile(path string) (*matrix.Dense, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("app: read matrix: %w", err)
	}

	var rows [][]float64
	if err = yaml.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("app: decode matrix %s: %w", path, err)
	}

	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("app: matrix %s: %w", path, err)
	}

	return m, nil
}
