package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteMatchesSeededExamples(t *testing.T) {
	got, err := Quote(2, 1.5, 3, 280)
	require.NoError(t, err)
	assert.Equal(t, 2520.0, got)

	got, err = Quote(3, 2, 1, 180)
	require.NoError(t, err)
	assert.Equal(t, 1080.0, got)
}

func TestQuoteDimensionsCommute(t *testing.T) {
	a, err := Quote(2.5, 4, 7, 250)
	require.NoError(t, err)
	b, err := Quote(4, 2.5, 7, 250)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestQuoteRejectsOutOfRangeInput(t *testing.T) {
	cases := []struct {
		name     string
		w, h     float64
		qty      int
		rate     float64
	}{
		{"width too small", 0.4, 2, 1, 180},
		{"width too large", 10.5, 2, 1, 180},
		{"height too small", 2, 0.1, 1, 180},
		{"height too large", 2, 11, 1, 180},
		{"zero quantity", 2, 2, 0, 180},
		{"negative quantity", 2, 2, -3, 180},
		{"quantity over limit", 2, 2, 101, 180},
		{"zero rate", 2, 2, 1, 0},
		{"negative rate", 2, 2, 1, -50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Quote(tc.w, tc.h, tc.qty, tc.rate)
			assert.Error(t, err)
		})
	}
}

func TestQuoteAcceptsBoundaryValues(t *testing.T) {
	_, err := Quote(0.5, 10, 1, 180)
	assert.NoError(t, err)
	_, err = Quote(10, 0.5, 100, 350)
	assert.NoError(t, err)
}

func TestQuoteWithTemplateAddsPerUnitSurcharge(t *testing.T) {
	base, err := Quote(2, 1.5, 3, 280)
	require.NoError(t, err)

	got, err := QuoteWithTemplate(2, 1.5, 3, 280, 100)
	require.NoError(t, err)
	assert.Equal(t, base+300, got)
}

func TestQuoteWithTemplateRejectsNegativeSurcharge(t *testing.T) {
	_, err := QuoteWithTemplate(2, 1.5, 3, 280, -10)
	assert.Error(t, err)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "processing", "printed", "completed", "cancelled"} {
		s, ok := ParseStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, Status(valid), s)
	}
	for _, invalid := range []string{"", "PENDING", "shipped", "done", "archived"} {
		_, ok := ParseStatus(invalid)
		assert.False(t, ok, invalid)
	}
}
