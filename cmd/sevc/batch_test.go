package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhaven/severance-compass/internal/model"
)

func TestParseBatchRow(t *testing.T) {
	tests := []struct {
		name      string
		row       []string
		wantErr   bool
		wantOffer bool
	}{
		{
			name:      "full row",
			row:       []string{"ON", "10", "0", "41-50", "professional", "104000", "false", "100000", "3000000"},
			wantOffer: true,
		},
		{
			name: "optional fields empty",
			row:  []string{"BC", "3", "", "30-40", "trades", "62000", "", "", ""},
		},
		{
			name:    "bad years",
			row:     []string{"ON", "ten", "0", "41-50", "professional", "104000", "false", "", ""},
			wantErr: true,
		},
		{
			name:    "bad salary",
			row:     []string{"ON", "10", "0", "41-50", "professional", "lots", "false", "", ""},
			wantErr: true,
		},
		{
			name:    "wrong field count",
			row:     []string{"ON", "10"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, offer, err := parseBatchRow(tt.row)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, profile)
			assert.Equal(t, tt.row[0], profile.Jurisdiction)
			if tt.wantOffer {
				require.NotNil(t, offer)
			} else {
				assert.Nil(t, offer)
			}
		})
	}
}

func TestBatchOutputRow(t *testing.T) {
	input := []string{"ON", "10", "0", "41-50", "professional", "104000", "false", "", "3000000"}
	estimate := &model.EntitlementEstimate{
		StatutoryMinimum:   model.NoticePeriod{Weeks: 8, Amount: 16_000},
		StatutorySeverance: &model.NoticePeriod{Weeks: 10, Amount: 20_000},
		CommonLaw:          model.CommonLawRange{MinWeeks: 26, MaxWeeks: 104, MinAmount: 52_000, MaxAmount: 208_000},
		Recommended:        model.NoticePeriod{Weeks: 65, Amount: 130_000},
	}

	row := batchOutputRow(input, estimate, 114_000)

	require.Len(t, row, len(batchColumns)+9)
	assert.Equal(t, "8", row[len(batchColumns)])
	assert.Equal(t, "16000", row[len(batchColumns)+1])
	assert.Equal(t, "10", row[len(batchColumns)+2])
	assert.Equal(t, "65", row[len(batchColumns)+6])
	assert.Equal(t, "114000", row[len(batchColumns)+8])
}

func TestBatchOutputRow_NoSeverance(t *testing.T) {
	input := []string{"BC", "3", "0", "30-40", "trades", "62000", "false", "", ""}
	estimate := &model.EntitlementEstimate{
		StatutoryMinimum: model.NoticePeriod{Weeks: 3, Amount: 3_577},
		CommonLaw:        model.CommonLawRange{MinWeeks: 11, MaxWeeks: 22},
		Recommended:      model.NoticePeriod{Weeks: 17, Amount: 20_269},
	}

	row := batchOutputRow(input, estimate, 16_692)
	assert.Equal(t, "", row[len(batchColumns)+2])
	assert.Equal(t, "", row[len(batchColumns)+3])
}
