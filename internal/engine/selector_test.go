package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhaven/severance-compass/internal/jurisdiction"
	"github.com/quillhaven/severance-compass/internal/model"
)

func option(t model.OptionType, netBenefit float64) model.CostOption {
	return model.CostOption{Type: t, NetBenefit: &netBenefit}
}

func TestRecommend_NoGapPicksConsultation(t *testing.T) {
	options := GenerateOptions(jurisdiction.PricingFor("ON"), flatTax, 0, Overrides{})

	recommended := Recommend(options, 0)
	assert.Equal(t, model.OptionConsultation, recommended.Type)
}

func TestRecommend_ConsultationNeverActionable(t *testing.T) {
	// Consultation has the highest net benefit here, but it is excluded
	// from candidates whenever there is value to pursue.
	options := []model.CostOption{
		option(model.OptionConsultation, 19_000),
		option(model.OptionHourly, 12_000),
	}

	recommended := Recommend(options, 20_000)
	assert.Equal(t, model.OptionHourly, recommended.Type)
}

func TestRecommend_HighestNetBenefitWins(t *testing.T) {
	options := []model.CostOption{
		option(model.OptionConsultation, -600),
		option(model.OptionHourly, 8_000),
		option(model.OptionFlat, 17_000),
		option(model.OptionContingency, 5_000),
	}

	// Band is 2,000; contingency trails flat by 12,000, no tie-break.
	recommended := Recommend(options, 20_000)
	assert.Equal(t, model.OptionFlat, recommended.Type)
}

func TestRecommend_ContingencyPreferredWithinTieBand(t *testing.T) {
	// Flat beats contingency by 5% of its net benefit, well inside the
	// 10%-of-gap band: the risk-sharing option wins anyway.
	gap := 20_000.0
	contingencyNet := 10_000.0
	flatNet := contingencyNet * 1.05

	options := []model.CostOption{
		option(model.OptionConsultation, -600),
		option(model.OptionFlat, flatNet),
		option(model.OptionContingency, contingencyNet),
	}
	require.Greater(t, gap*tieBandRatio, flatNet-contingencyNet)

	recommended := Recommend(options, gap)
	assert.Equal(t, model.OptionContingency, recommended.Type)
}

func TestRecommend_ContingencyOnTopNeedsNoTieBreak(t *testing.T) {
	options := []model.CostOption{
		option(model.OptionConsultation, -600),
		option(model.OptionHourly, 9_000),
		option(model.OptionContingency, 14_000),
	}

	recommended := Recommend(options, 20_000)
	assert.Equal(t, model.OptionContingency, recommended.Type)
}

func TestRecommend_NoContingencyAmongNearTies(t *testing.T) {
	options := []model.CostOption{
		option(model.OptionConsultation, -600),
		option(model.OptionHourly, 14_500),
		option(model.OptionFlat, 15_000),
	}

	recommended := Recommend(options, 20_000)
	assert.Equal(t, model.OptionFlat, recommended.Type)
}

func TestRecommend_EmptyCandidatesFallsBackToConsultation(t *testing.T) {
	options := []model.CostOption{
		option(model.OptionConsultation, -600),
	}

	recommended := Recommend(options, 20_000)
	assert.Equal(t, model.OptionConsultation, recommended.Type)
}

func TestSortByNetBenefit(t *testing.T) {
	candidates := []model.CostOption{
		option(model.OptionHourly, 3_000),
		option(model.OptionFlat, 9_000),
		option(model.OptionContingency, 6_000),
	}

	sortByNetBenefit(candidates)

	assert.Equal(t, model.OptionFlat, candidates[0].Type)
	assert.Equal(t, model.OptionContingency, candidates[1].Type)
	assert.Equal(t, model.OptionHourly, candidates[2].Type)
}

func TestPreferContingency_BandScalesWithGap(t *testing.T) {
	candidates := []model.CostOption{
		option(model.OptionFlat, 10_500),
		option(model.OptionContingency, 10_000),
	}

	// Same 500 difference: inside the band at a 20k gap, outside at 4k.
	assert.Equal(t, model.OptionContingency, preferContingency(candidates, 20_000).Type)
	assert.Equal(t, model.OptionFlat, preferContingency(candidates, 4_000).Type)
}
