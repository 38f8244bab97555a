// Command palsolve loads a label-placement scenario from a JSON file,
// runs the reduce + ejection-chain solver over it, and prints the
// resulting placement.
package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/geolabel/pal/geom"
	"github.com/geolabel/pal/label"
	"github.com/geolabel/pal/palcfg"
	"github.com/geolabel/pal/solver"
)

type scenarioFeature struct {
	Index           int     `json:"index"`
	ID              int64   `json:"id"`
	Kind            string  `json:"kind"`
	Priority        float64 `json:"priority"`
	LabelDistance   float64 `json:"label_distance"`
	Arrangement     string  `json:"arrangement"`
	OverlapHandling string  `json:"overlap_handling"`
	AlwaysShow      bool    `json:"always_show"`
	Length          float64 `json:"length"`
	Area            float64 `json:"area"`
}

type scenarioQuad struct {
	X [4]float64 `json:"x"`
	Y [4]float64 `json:"y"`
}

type scenarioCandidate struct {
	ID           int          `json:"id"`
	FeatureIndex int          `json:"feature_index"`
	Quad         scenarioQuad `json:"quad"`
	Cost         float64      `json:"cost"`
}

type scenario struct {
	Extent     geom.Rect           `json:"extent"`
	Features   []scenarioFeature   `json:"features"`
	Candidates []scenarioCandidate `json:"candidates"`
	Inactive   []float64           `json:"inactive"`
	DisplayAll bool                `json:"display_all"`
}

func main() {
	scenarioPath := flag.String("scenario", "", "path to a JSON scenario file")
	tuningPath := flag.String("tuning", "", "optional path to a YAML tuning file")
	returnInactive := flag.Bool("return-inactive", false, "emit overlapping placements for unplaced features")
	debug := flag.Bool("debug", false, "dump the solver's internal arena/solution state to stderr after solving")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *scenarioPath == "" {
		logger.Error("missing -scenario flag")
		os.Exit(2)
	}

	sc, err := loadScenario(*scenarioPath)
	if err != nil {
		logger.Error("failed to load scenario", "path", *scenarioPath, "err", err)
		os.Exit(1)
	}

	opts := palcfg.DefaultOptions()
	if *tuningPath != "" {
		opts, err = palcfg.LoadYAML(*tuningPath)
		if err != nil {
			logger.Error("failed to load tuning file", "path", *tuningPath, "err", err)
			os.Exit(1)
		}
	}

	features, nbLp, candidates, err := buildArena(sc)
	if err != nil {
		logger.Error("invalid scenario", "err", err)
		os.Exit(1)
	}

	problem, err := solver.NewProblem(sc.Extent, candidates, nbLp, sc.Inactive, features, sc.DisplayAll, bboxConflictOracle())
	if err != nil {
		logger.Error("failed to construct problem", "err", err)
		os.Exit(1)
	}

	logger.Info("reducing candidate set", "features", len(features), "candidates", len(candidates))
	problem.Reduce()

	logger.Info("running chain search", "max_chain_degree", opts.MaxChainDegree)
	if err := problem.ChainSearch(solver.RenderContext{MaxChainDegree: opts.MaxChainDegree}); err != nil {
		logger.Error("chain search failed", "err", err)
		os.Exit(1)
	}

	placed, unlabeled := problem.GetSolution(*returnInactive)
	logger.Info("solve complete", "placed", len(placed), "unlabeled", len(unlabeled))

	if *debug {
		logger.Debug("solver state", "dump", problem.DumpState())
	}

	if err := json.NewEncoder(os.Stdout).Encode(struct {
		Placed    []label.Candidate `json:"placed"`
		Unlabeled []label.Candidate `json:"unlabeled"`
	}{Placed: placed, Unlabeled: unlabeled}); err != nil {
		logger.Error("failed to encode solution", "err", err)
		os.Exit(1)
	}
}

func loadScenario(path string) (*scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, err
	}

	return &sc, nil
}

func kindFromString(s string) label.GeometryKind {
	switch s {
	case "line":
		return label.Line
	case "polygon":
		return label.Polygon
	default:
		return label.Point
	}
}

func arrangementFromString(s string) label.Arrangement {
	switch s {
	case "free":
		return label.Free
	case "horizontal":
		return label.Horizontal
	default:
		return label.Other
	}
}

func overlapHandlingFromString(s string) label.OverlapHandling {
	if s == "allow" {
		return label.AllowOverlapIfRequired
	}

	return label.PreventOverlap
}

func buildArena(sc *scenario) ([]*label.Feature, []int, []label.Candidate, error) {
	features := make([]*label.Feature, len(sc.Features))
	nbLp := make([]int, len(sc.Features))
	for _, f := range sc.Features {
		features[f.Index] = &label.Feature{
			Index:           f.Index,
			ID:              f.ID,
			Kind:            kindFromString(f.Kind),
			Priority:        f.Priority,
			LabelDistance:   f.LabelDistance,
			Arrangement:     arrangementFromString(f.Arrangement),
			OverlapHandling: overlapHandlingFromString(f.OverlapHandling),
			AlwaysShow:      f.AlwaysShow,
			Length:          f.Length,
			Area:            f.Area,
		}
	}
	for _, c := range sc.Candidates {
		nbLp[c.FeatureIndex]++
	}

	candidates := make([]label.Candidate, len(sc.Candidates))
	for _, c := range sc.Candidates {
		candidates[c.ID] = label.Candidate{
			ID:           c.ID,
			FeatureIndex: c.FeatureIndex,
			Quad:         geom.Quad{X: c.Quad.X, Y: c.Quad.Y},
			Cost:         c.Cost,
		}
	}

	for i, f := range features {
		if f == nil {
			return nil, nil, nil, &missingFeatureError{featureIndex: i}
		}
	}

	return features, nbLp, candidates, nil
}

type missingFeatureError struct {
	featureIndex int
}

func (e *missingFeatureError) Error() string {
	return "palsolve: scenario JSON has a gap in its feature index sequence"
}

func bboxConflictOracle() label.ConflictOracle {
	return label.ConflictOracleFunc(func(a, b *label.Candidate) bool {
		if a.FeatureIndex == b.FeatureIndex {
			return false
		}

		return a.BoundingBox().Intersects(b.BoundingBox())
	})
}
