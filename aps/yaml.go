package aps

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileParameterSet is the on-disk YAML layout.
type fileParameterSet struct {
	Transform string   `yaml:"transform"`
	Lod       *fileLod `yaml:"lod,omitempty"`
}

type fileLod struct {
	NearestNeighbors    int    `yaml:"nearest_neighbors"`
	SearchRange         int    `yaml:"search_range"`
	DetailLevels        int    `yaml:"detail_levels"`
	NeighborBias        []int  `yaml:"neighbor_bias,omitempty"`
	ScalableLifting     bool   `yaml:"scalable_lifting,omitempty"`
	Dist2               *int64 `yaml:"dist2,omitempty"`
	SamplingPeriods     []int  `yaml:"sampling_periods,omitempty"`
	IntraLodPrediction  bool   `yaml:"intra_lod_prediction,omitempty"`
	CanonicalPointOrder bool   `yaml:"canonical_point_order,omitempty"`
}

// Defaults applied to omitted YAML fields.
const (
	defaultNeighborBias = 1
)

// Load reads and validates a YAML parameter set from path.
func Load(path string) (ParameterSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ParameterSet{}, fmt.Errorf("Load: %w", err)
	}
	ps, err := Parse(data)
	if err != nil {
		return ParameterSet{}, fmt.Errorf("Load %s: %w", path, err)
	}

	return ps, nil
}

// Parse decodes and validates a YAML parameter set. Unknown keys are rejected.
func Parse(data []byte) (ParameterSet, error) {
	var doc fileParameterSet
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return ParameterSet{}, fmt.Errorf("Parse: %w", err)
	}

	ps, err := doc.toParameterSet()
	if err != nil {
		return ParameterSet{}, fmt.Errorf("Parse: %w", err)
	}
	if err := ps.Validate(); err != nil {
		return ParameterSet{}, fmt.Errorf("Parse: %w", err)
	}

	return ps, nil
}

// Marshal encodes ps in the layout Parse accepts.
func Marshal(ps ParameterSet) ([]byte, error) {
	doc := fileParameterSet{Transform: ps.Transform.String()}
	if lp := ps.Lod; lp != nil {
		fl := &fileLod{
			NearestNeighbors:    lp.NeighborCount(),
			SearchRange:         lp.SearchRange,
			DetailLevels:        lp.NumDetailLevels,
			NeighborBias:        lp.NeighborBias[:],
			ScalableLifting:     lp.ScalableLiftingEnabled,
			IntraLodPrediction:  lp.IntraLodPredictionEnabled,
			CanonicalPointOrder: lp.CanonicalPointOrder,
		}
		switch s := lp.Sampling.(type) {
		case DistanceSampling:
			d := s.Dist2
			fl.Dist2 = &d
		case PeriodicSampling:
			fl.SamplingPeriods = s.Periods
		}
		doc.Lod = fl
	}

	return yaml.Marshal(&doc)
}

func (doc fileParameterSet) toParameterSet() (ParameterSet, error) {
	t, err := ParseTransform(doc.Transform)
	if err != nil {
		return ParameterSet{}, err
	}
	ps := ParameterSet{Transform: t}
	if doc.Lod == nil {
		return ps, nil
	}

	fl := doc.Lod
	lp := &LodParameters{
		NearestNeighborCountMinus1: fl.NearestNeighbors - 1,
		SearchRange:                fl.SearchRange,
		NumDetailLevels:            fl.DetailLevels,
		NeighborBias:               [3]int{defaultNeighborBias, defaultNeighborBias, defaultNeighborBias},
		ScalableLiftingEnabled:     fl.ScalableLifting,
		IntraLodPredictionEnabled:  fl.IntraLodPrediction,
		CanonicalPointOrder:        fl.CanonicalPointOrder,
	}
	switch len(fl.NeighborBias) {
	case 0:
	case 3:
		copy(lp.NeighborBias[:], fl.NeighborBias)
	default:
		return ParameterSet{}, invalidf("Parse", "neighbor_bias", "want 3 values, got %d", len(fl.NeighborBias))
	}

	switch {
	case fl.Dist2 != nil && len(fl.SamplingPeriods) > 0:
		return ParameterSet{}, fmt.Errorf("%s: %s: %w", "Parse", "sampling", ErrSamplingConflict)
	case fl.Dist2 != nil:
		lp.Sampling = DistanceSampling{Dist2: *fl.Dist2}
	case len(fl.SamplingPeriods) > 0:
		lp.Sampling = PeriodicSampling{Periods: fl.SamplingPeriods}
	}
	ps.Lod = lp

	return ps, nil
}
