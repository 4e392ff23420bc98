package main

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// ColorPolicy selects how a scene assigns particle colors.
type ColorPolicy int

const (
	ColorFixed  ColorPolicy = iota // every particle gets the same color
	ColorRandom                    // independent random RGB per particle
	ColorNoise                     // hue from Perlin noise over the spawn layout
)

var (
	colorWhite = color.RGBA{255, 255, 255, 255}
	colorBlack = color.RGBA{0, 0, 0, 255}
)

// colorizer produces one color per particle index. It owns its rng and
// noise source so scenes stay independent of each other.
type colorizer struct {
	policy ColorPolicy
	fixed  color.RGBA
	rng    *rand.Rand
	noise  *perlin.Perlin
}

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.015 // world units -> noise coordinates
)

func newColorizer(policy ColorPolicy, fixed color.RGBA, rng *rand.Rand) *colorizer {
	return &colorizer{
		policy: policy,
		fixed:  fixed,
		rng:    rng,
		noise:  perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, rng.Int63()),
	}
}

// colorAt picks the color for a particle spawned at pos.
func (c *colorizer) colorAt(pos Vec2) color.RGBA {
	switch c.policy {
	case ColorRandom:
		return color.RGBA{
			uint8(c.rng.Intn(256)),
			uint8(c.rng.Intn(256)),
			uint8(c.rng.Intn(256)),
			255,
		}
	case ColorNoise:
		// Noise2D returns roughly [-1,1]; map it onto the hue wheel so
		// neighboring spawn positions get neighboring hues.
		n := c.noise.Noise2D(pos.X*noiseScale, pos.Y*noiseScale)
		h := math.Mod((n+1)*180+360, 360)
		r, g, b := hsvToRGB(h, 0.8, 1)
		return color.RGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
	default:
		return c.fixed
	}
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
