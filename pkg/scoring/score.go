// Package scoring rates a video idea with a linear weighted sum over six ratings.
package scoring

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinRating = 0
	MaxRating = 5
)

var (
	ErrRatingOutOfRange = errors.New("rating out of range")
	ErrInvalidWeight    = errors.New("invalid weight")
)

// Ratings are the six raw inputs, each in MinRating..MaxRating.
type Ratings struct {
	PainIntensity        int `json:"pain_intensity"`
	SearchIntent         int `json:"search_intent"`
	TrendLeverage        int `json:"trend_leverage"`
	ClickPotential       int `json:"click_potential"`
	ProductionComplexity int `json:"production_complexity"`
	ChannelFit           int `json:"channel_fit"`
}

// Weights multiply each rating. ProductionComplexity applies to the inverted term.
type Weights struct {
	PainIntensity        float64 `json:"pain_intensity" yaml:"pain_intensity"`
	SearchIntent         float64 `json:"search_intent" yaml:"search_intent"`
	TrendLeverage        float64 `json:"trend_leverage" yaml:"trend_leverage"`
	ClickPotential       float64 `json:"click_potential" yaml:"click_potential"`
	ProductionComplexity float64 `json:"production_complexity" yaml:"production_complexity"`
	ChannelFit           float64 `json:"channel_fit" yaml:"channel_fit"`
}

// Breakdown is stored verbatim next to the score so every total can be audited.
type Breakdown struct {
	Ratings                      Ratings `json:"ratings"`
	Weights                      Weights `json:"weights"`
	ProductionComplexityInverted int     `json:"production_complexity_inverted"`
	Total                        float64 `json:"total"`
}

func DefaultWeights() Weights {
	return Weights{
		PainIntensity:        1.2,
		SearchIntent:         1.0,
		TrendLeverage:        0.9,
		ClickPotential:       1.1,
		ProductionComplexity: 0.8,
		ChannelFit:           1.3,
	}
}

func (r Ratings) Validate() error {
	fields := []struct {
		name string
		v    int
	}{
		{"pain_intensity", r.PainIntensity},
		{"search_intent", r.SearchIntent},
		{"trend_leverage", r.TrendLeverage},
		{"click_potential", r.ClickPotential},
		{"production_complexity", r.ProductionComplexity},
		{"channel_fit", r.ChannelFit},
	}
	for _, f := range fields {
		if f.v < MinRating || f.v > MaxRating {
			return fmt.Errorf("%w: %s=%d, want %d..%d", ErrRatingOutOfRange, f.name, f.v, MinRating, MaxRating)
		}
	}
	return nil
}

func (w Weights) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"pain_intensity", w.PainIntensity},
		{"search_intent", w.SearchIntent},
		{"trend_leverage", w.TrendLeverage},
		{"click_potential", w.ClickPotential},
		{"production_complexity", w.ProductionComplexity},
		{"channel_fit", w.ChannelFit},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return fmt.Errorf("%w: %s=%v, want a positive number", ErrInvalidWeight, f.name, f.v)
		}
	}
	return nil
}

// Score validates the inputs and returns the weighted total with its breakdown.
// Complexity is inverted first so easier productions score higher.
func Score(r Ratings, w Weights) (Breakdown, error) {
	if err := r.Validate(); err != nil {
		return Breakdown{}, err
	}
	if err := w.Validate(); err != nil {
		return Breakdown{}, err
	}
	inverted := MaxRating - r.ProductionComplexity
	total := float64(r.PainIntensity)*w.PainIntensity +
		float64(r.SearchIntent)*w.SearchIntent +
		float64(r.TrendLeverage)*w.TrendLeverage +
		float64(r.ClickPotential)*w.ClickPotential +
		float64(inverted)*w.ProductionComplexity +
		float64(r.ChannelFit)*w.ChannelFit
	return Breakdown{
		Ratings:                      r,
		Weights:                      w,
		ProductionComplexityInverted: inverted,
		Total:                        total,
	}, nil
}
