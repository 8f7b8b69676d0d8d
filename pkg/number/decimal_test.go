package number

import (
	"testing"

	"github.com/bmizerany/assert"
)

func TestAmount(t *testing.T) {
	data := map[string]string{
		"1000":    "1000",
		"0":       "0",
		"2500.50": "2500.5",
	}

	for k, v := range data {
		t.Run(k, func(t *testing.T) {
			d, err := Amount(k)
			assert.Equal(t, nil, err)
			assert.Equal(t, v, d.String(), "should parse amount")
		})
	}

	for _, k := range []string{"-1", "abc", ""} {
		t.Run(k, func(t *testing.T) {
			_, err := Amount(k)
			assert.NotEqual(t, nil, err)
		})
	}
}
