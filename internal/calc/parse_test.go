package calc

import (
	"testing"

	"github.com/cliently/cliently/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "300", want: 300},
		{name: "decimal", input: "499.88", want: 499.88},
		{name: "surrounding whitespace", input: "  12.5 ", want: 12.5},
		{name: "words", input: "three hundred", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidType)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseRating(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "integer", input: "7", want: 7},
		{name: "negative integer", input: "-2", want: -2},
		{name: "surrounding whitespace", input: " 3\t", want: 3},
		{name: "fraction is not an integer", input: "7.5", wantErr: true},
		{name: "words", input: "seven", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRating(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantYear  int
		wantMonth int
		wantDay   int
		wantErr   bool
	}{
		{name: "standard date", input: "2021-06-30", wantYear: 2021, wantMonth: 6, wantDay: 30},
		{name: "unpadded components", input: "2021-6-5", wantYear: 2021, wantMonth: 6, wantDay: 5},
		{name: "slashes", input: "2021/06/30", wantErr: true},
		{name: "missing day", input: "2021-06", wantErr: true},
		{name: "words", input: "June 30th", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, day, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMonth, month)
			assert.Equal(t, tt.wantDay, day)
		})
	}
}
