package fraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	f := New(DefaultTolerance)

	tests := []struct {
		value float64
		want  string
	}{
		{1, "1"},
		{1.5, "1 1/2"},
		{0.5, "1/2"},
		{0.25, "1/4"},
		{0.75, "3/4"},
		{1.0 / 3, "1/3"},
		{4.0 / 3, "1 1/3"},
		{2.0 / 3, "2/3"},
		{0.125, "1/8"},
		{2.375, "2 3/8"},
		{0.51, "1/2"},
		{1.99, "2"},
		{3.01, "3"},
		{0.1, "0.1"},
		{1.45, "1.45"},
		{2.2, "2.2"},
		{0.2, "0.2"},
		{0, "0"},
		{10, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.value))
		})
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	f := New(0)
	for _, v := range []float64{0.333333, 1.3333333, 2.71828, 0.0625, 7.875} {
		first := f.Format(v)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, f.Format(v))
		}
	}
}

func TestSnapReportsDisplayedValue(t *testing.T) {
	f := New(DefaultTolerance)

	r := f.Snap(1.3333333)
	assert.Equal(t, "1 1/3", r.Text)
	assert.InDelta(t, 4.0/3, r.Value, 1e-12)

	r = f.Snap(1.456)
	assert.Equal(t, "1.46", r.Text)
	assert.InDelta(t, 1.46, r.Value, 1e-12)
}

func TestFormatAmount(t *testing.T) {
	f := New(DefaultTolerance)

	text, pinch := f.FormatAmount(0.025, 0.0625)
	assert.True(t, pinch)
	assert.Equal(t, PinchText, text)

	text, pinch = f.FormatAmount(0.25, 0.0625)
	assert.False(t, pinch)
	assert.Equal(t, "1/4", text)

	text, pinch = f.FormatAmount(0.01, 0)
	assert.False(t, pinch, "zero floor disables the pinch substitution")
	assert.Equal(t, "0.01", text)
}
