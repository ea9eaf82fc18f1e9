package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gsheet-go/pkg/gsheet/models"
)

func TestUsedRange(t *testing.T) {
	tests := []struct {
		name   string
		vr     models.ValueRange
		want   string
		wantOK bool
	}{
		{
			name: "full",
			vr:   models.ValueRange{Range: "A1:B2", Values: models.Values{{"1", "2"}, {"3", "4"}}},
			want: "A1:B2", wantOK: true,
		},
		{
			name: "inner block",
			vr: models.ValueRange{Range: "A1:D4", Values: models.Values{
				{},
				{"", "x"},
				{"", "", "y"},
			}},
			want: "B2:C3", wantOK: true,
		},
		{
			name: "offset range",
			vr:   models.ValueRange{Range: "Sheet1!C10:E12", Values: models.Values{{"", "", "z"}}},
			want: "E10", wantOK: true,
		},
		{
			name: "columns major",
			vr: models.ValueRange{Range: "A1:C3", MajorDimension: models.DimensionColumns, Values: models.Values{
				{"", "", "q"},
			}},
			want: "A3", wantOK: true,
		},
		{
			name: "blank",
			vr:   models.ValueRange{Range: "A1:C3", Values: models.Values{{"", ""}}},
		},
		{
			name: "no values",
			vr:   models.ValueRange{Range: "A1:C3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := UsedRange(tt.vr)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}
