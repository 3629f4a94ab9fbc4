package engine

import (
	"math"
	"sort"

	"github.com/quillhaven/severance-compass/internal/model"
)

// tieBandRatio defines the near-tie band for the contingency preference:
// two candidates whose net benefits differ by less than this fraction of
// the potential gap are considered comparably good.
const tieBandRatio = 0.10

// Recommend picks exactly one option from a generated menu.
//
// With no value to pursue the consultation is the only option and wins by
// default. Otherwise the consultation is excluded (an assessment is never
// an actionable recommendation) and the remaining candidates go through a
// two-stage selection: net benefit descending, then a contingency
// preference among near-ties. When outcomes are comparably good, the
// no-upfront-cost option shares the risk with the client and wins even
// against a nominally higher net benefit.
func Recommend(options []model.CostOption, potentialGap float64) model.CostOption {
	consultation := model.CostOption{Type: model.OptionConsultation}
	candidates := make([]model.CostOption, 0, len(options))
	for _, opt := range options {
		if opt.Type == model.OptionConsultation {
			consultation = opt
			continue
		}
		candidates = append(candidates, opt)
	}

	if potentialGap <= 0 || len(candidates) == 0 {
		return consultation
	}

	sortByNetBenefit(candidates)
	return preferContingency(candidates, potentialGap)
}

// sortByNetBenefit is the primary ranking stage: net benefit descending.
// The sort is stable so the generation order breaks exact ties.
func sortByNetBenefit(candidates []model.CostOption) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return netBenefit(candidates[i]) > netBenefit(candidates[j])
	})
}

// preferContingency is the secondary stage: if a contingency option sits
// within the near-tie band of the top candidate, it wins regardless of
// the nominal ordering.
func preferContingency(sorted []model.CostOption, potentialGap float64) model.CostOption {
	top := sorted[0]
	if top.Type == model.OptionContingency {
		return top
	}

	band := tieBandRatio * potentialGap
	for _, opt := range sorted[1:] {
		if opt.Type != model.OptionContingency {
			continue
		}
		if math.Abs(netBenefit(top)-netBenefit(opt)) <= band {
			return opt
		}
	}

	return top
}

func netBenefit(opt model.CostOption) float64 {
	if opt.NetBenefit == nil {
		return math.Inf(-1)
	}
	return *opt.NetBenefit
}
