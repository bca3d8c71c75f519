package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/salesman/geom"
	"github.com/katalvlaran/salesman/tsp"
)

type yamlDoc struct {
	RunID      string       `yaml:"run_id"`
	Seed       int64        `yaml:"seed"`
	Bounds     yamlBounds   `yaml:"bounds"`
	Nodes      []yamlNode   `yaml:"nodes"`
	Distances  []yamlRow    `yaml:"distances,omitempty"`
	Samples    yamlSamples  `yaml:"samples"`
	BruteForce *yamlResult  `yaml:"brute_force,omitempty"`
	HillClimb  yamlResult   `yaml:"hill_climb"`
	Annealing  yamlAnnealed `yaml:"simulated_annealing"`
}

type yamlBounds struct {
	Min [2]float64 `yaml:"min,flow"`
	Max [2]float64 `yaml:"max,flow"`
}

// yamlRow renders one cost-table row inline, as "[0, 5, 9]".
type yamlRow []float64

func (r yamlRow) MarshalYAML() (any, error) {
	var node yaml.Node
	if err := node.Encode([]float64(r)); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle

	return &node, nil
}

type yamlNode struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

type yamlRoute struct {
	Path     []int   `yaml:"path,flow"`
	Distance float64 `yaml:"distance"`
}

type yamlSamples struct {
	Routes  []yamlRoute `yaml:"routes"`
	Average float64     `yaml:"average"`
}

type yamlResult struct {
	yamlRoute `yaml:",inline"`
	Elapsed   string `yaml:"elapsed"`
}

type yamlAnnealed struct {
	yamlResult  `yaml:",inline"`
	InitialTemp float64 `yaml:"initial_temp"`
	CoolingRate float64 `yaml:"cooling_rate"`
	Iterations  int     `yaml:"iterations"`
}

func toYAMLRoute(r tsp.Route) yamlRoute {
	return yamlRoute{Path: tsp.CopyPath(r.Path), Distance: r.Distance}
}

func toYAMLResult(r Result) yamlResult {
	return yamlResult{yamlRoute: toYAMLRoute(r.Route), Elapsed: r.Elapsed.String()}
}

func newYAMLDoc(r *Run) (yamlDoc, error) {
	doc := yamlDoc{
		RunID:     r.ID,
		Seed:      r.Seed,
		Nodes:     make([]yamlNode, len(r.Nodes)),
		HillClimb: toYAMLResult(r.HillClimb),
		Annealing: yamlAnnealed{
			yamlResult:  toYAMLResult(r.Annealing),
			InitialTemp: r.Anneal.InitialTemp,
			CoolingRate: r.Anneal.CoolingRate,
			Iterations:  r.Anneal.Iterations,
		},
	}

	if len(r.Nodes) > 0 {
		b := geom.Bounds(r.Nodes)
		doc.Bounds = yamlBounds{
			Min: [2]float64{b.Min.X(), b.Min.Y()},
			Max: [2]float64{b.Max.X(), b.Max.Y()},
		}
	}
	for i, n := range r.Nodes {
		doc.Nodes[i] = yamlNode{ID: n.ID, X: n.X(), Y: n.Y()}
	}

	doc.Samples.Average = r.SampleAverage
	doc.Samples.Routes = make([]yamlRoute, len(r.Samples))
	for i, s := range r.Samples {
		doc.Samples.Routes[i] = toYAMLRoute(s)
	}

	if r.Distances != nil {
		n := r.Distances.Rows()
		doc.Distances = make([]yamlRow, n)
		var i, j int
		for i = 0; i < n; i++ {
			row := make(yamlRow, r.Distances.Cols())
			for j = range row {
				v, err := r.Distances.At(i, j)
				if err != nil {
					return yamlDoc{}, err
				}
				row[j] = v
			}
			doc.Distances[i] = row
		}
	}

	if r.BruteForce != nil {
		bf := toYAMLResult(*r.BruteForce)
		doc.BruteForce = &bf
	}

	return doc, nil
}

// WriteYAML renders r as one YAML document.
func WriteYAML(w io.Writer, r *Run) error {
	doc, err := newYAMLDoc(r)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err = enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encode yaml: %w", err)
	}

	return enc.Close()
}
