package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeelsLikeHeatBranch(t *testing.T) {
	// temp=30, humidity=60, wind=2:
	// e = 0.6 * 6.105 * exp(17.27*30/267.7) = 25.372
	// feels = 30 + 0.33*25.372 - 0.70*2 - 4.0 = 32.973
	assert.InDelta(t, 32.97, FeelsLike(30, 60, 2), 0.01)

	// The heat branch applies at exactly 27.
	hot := FeelsLike(27, 80, 0)
	warm := FeelsLike(26.9, 80, 0)
	assert.Greater(t, hot, 27.0)
	assert.InDelta(t, 26.9, warm, 0.001) // linear branch, no wind
}

func TestFeelsLikeWindChillBranch(t *testing.T) {
	// temp=10, wind=5 m/s (18 km/h):
	// feels = 13.12 + 6.215 - 11.37*18^0.16 + 3.965*18^0.16 = 7.576
	assert.InDelta(t, 7.58, FeelsLike(10, 50, 5), 0.01)

	// The chill branch applies at exactly 10; 10.1 takes the linear branch.
	assert.InDelta(t, 10.1-0.5*5, FeelsLike(10.1, 50, 5), 0.001)

	// Below 4.8 km/h the chill formula is out of range: passthrough.
	assert.InDelta(t, 5.0, FeelsLike(5, 50, 1), 0.001)
	assert.InDelta(t, -3.0, FeelsLike(-3, 50, 0), 0.001)
}

func TestFeelsLikeLinearBranch(t *testing.T) {
	assert.InDelta(t, 14.0, FeelsLike(15, 50, 2), 0.001)
	assert.InDelta(t, 15.0, FeelsLike(15, 50, 0), 0.001)
	assert.InDelta(t, 20.0, FeelsLike(22, 90, 4), 0.001)
}
