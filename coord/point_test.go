package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_Add(t *testing.T) {
	a := Point{X: 1, Y: 2, Z: 3}
	b := Point{X: 4, Y: 5, Z: 6}

	assert.Equal(t, Point{X: 5, Y: 7, Z: 9}, a.Add(b))
}

func TestPoint_Sub(t *testing.T) {
	a := Point{X: 4, Y: 5, Z: 6}
	b := Point{X: 1, Y: 2, Z: 3}

	assert.Equal(t, Point{X: 3, Y: 3, Z: 3}, a.Sub(b))
}

func TestPoint_Mul(t *testing.T) {
	a := Point{X: 1, Y: 2, Z: 3}

	assert.Equal(t, Point{X: 25.4, Y: 50.8, Z: 76.2}, a.Mul(25.4))
}

func TestPoint_GetSet(t *testing.T) {
	var p Point
	for i, a := range Axes {
		p.Set(a, float64(i+1))
	}

	assert.Equal(t, Point{X: 1, Y: 2, Z: 3}, p)
	assert.Equal(t, 1.0, p.Get(X))
	assert.Equal(t, 2.0, p.Get(Y))
	assert.Equal(t, 3.0, p.Get(Z))
}
