package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJoiningDate(t *testing.T) {
	tests := []struct {
		in   string
		want JoiningDate
	}{
		{"2019-03", JoiningDate{2019, 3}},
		{"2019-3", JoiningDate{2019, 3}},
		{"1960-12", JoiningDate{1960, 12}},
		{"0999-01", JoiningDate{999, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseJoiningDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseJoiningDate_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"2019",
		"19-03",
		"2019-13",
		"2019-0",
		"2019-00",
		"2019-003",
		"2019/03",
		" 2019-03",
		"2019-03-01",
		"abcd-ef",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseJoiningDate(in)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestJoiningDateString(t *testing.T) {
	assert.Equal(t, "2019-03", JoiningDate{2019, 3}.String())
	assert.Equal(t, "2020-11", JoiningDate{2020, 11}.String())
}
