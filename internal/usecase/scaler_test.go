package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleHotelSpend(t *testing.T) {
	t.Run("MinAndMaxMapToZeroAndOne", func(t *testing.T) {
		scaled := ScaleHotelSpend(map[int64]*float64{
			1: floatPtr(100),
			2: floatPtr(300),
			3: nil,
		})
		assert.Equal(t, 0.0, scaled[1])
		assert.Equal(t, 1.0, scaled[2])
		assert.Equal(t, 0.0, scaled[3])
	})

	t.Run("MidpointInRange", func(t *testing.T) {
		scaled := ScaleHotelSpend(map[int64]*float64{
			1: floatPtr(100),
			2: floatPtr(200),
			3: floatPtr(300),
		})
		assert.InDelta(t, 0.5, scaled[2], 1e-9)
		for _, v := range scaled {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	})

	t.Run("DegenerateRange", func(t *testing.T) {
		scaled := ScaleHotelSpend(map[int64]*float64{
			1: floatPtr(150),
			2: floatPtr(150),
		})
		assert.Equal(t, 0.0, scaled[1])
		assert.Equal(t, 0.0, scaled[2])
	})

	t.Run("AllUndefined", func(t *testing.T) {
		scaled := ScaleHotelSpend(map[int64]*float64{1: nil, 2: nil})
		assert.Equal(t, 0.0, scaled[1])
		assert.Equal(t, 0.0, scaled[2])
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, ScaleHotelSpend(nil))
	})
}
