// Package integrator implements the recursive light-transport core:
// TraceColor (the radiance estimator) and TraceShadow (the
// visibility/shadow estimator used by fast-diffuse shading). This is
// the centerpiece of the renderer.
package integrator

import (
	"math"
	"sort"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/geometry"
	"github.com/kjhorne/pathtracer/pkg/material"
)

const (
	tMin = 1e-4
	tMax = 1e3

	lightGridSamples  = 16 // area lights are sampled on a 4x4 grid
	hemisphereSamples = 4  // polar (theta) stratification count
	eclipticSamples   = 8  // azimuth (phi) stratification count

	rouletteStartDepth = 2    // Russian roulette becomes possible past this depth
	hardDepthCutoff     = 5    // unconditional termination past this depth
	reflectionFactor    = 0.99 // prob decay on specular/dielectric reflection bounces
	refractionFactor    = 0.99 // prob decay on dielectric transmission bounces
	diffuseFactor       = 0.3  // extra prob decay once a diffuse bounce has occurred

	brightEarlyOutThreshold = 0.1 // any channel at/above this triggers the early-out

	hemisphereStep = math.Pi / hemisphereSamples     // theta step
	eclipticStep   = 2 * math.Pi / eclipticSamples    // phi step
)

// Config configures the integrator's shading mode.
type Config struct {
	// FastDiffuse selects direct-lighting-only Lambertian shading
	// ("Fast") instead of the Monte Carlo hemisphere estimator
	// ("Slow"). This replaces a process-wide fUseFastShading flag with
	// a value threaded explicitly through the integrator.
	FastDiffuse bool
}

// TraceColor is the recursive radiance estimator. It evaluates the
// rendering equation along ray by Monte Carlo sampling, bounded by
// depth and Russian-roulette termination, and returns an estimate
// clamped to [0,1] per channel.
func TraceColor(ray core.Ray, scene geometry.Surface, depth int, prob float64, hitDiffuse bool, cfg Config, rnd *core.Rand, logger core.Logger) core.Color {
	hit, ok := scene.Hit(ray, tMin, tMax)
	if !ok {
		return core.Black()
	}

	mat := hit.Surface.Material()

	normal := hit.Normal.Normalized()
	frontFace := normal.Dot(ray.Direction) < 0
	if !frontFace {
		normal = normal.Negate()
	}

	depth++

	if (depth > rouletteStartDepth && rnd.Float64() > prob) || depth > hardDepthCutoff {
		return mat.Emission.Clamp()
	}

	switch mat.Type {
	case material.Specular:
		return traceSpecular(ray, hit, normal, mat, depth, prob, hitDiffuse, scene, cfg, rnd, logger)
	case material.Dielectric:
		return traceDielectric(ray, hit, normal, frontFace, mat, depth, prob, hitDiffuse, scene, cfg, rnd, logger)
	default:
		return traceDiffuse(ray, hit, normal, frontFace, mat, depth, prob, hitDiffuse, scene, cfg, rnd, logger)
	}
}

func traceDiffuse(ray core.Ray, hit geometry.Hit, normal core.Vec3, frontFace bool, mat material.Material, depth int, prob float64, hitDiffuse bool, scene geometry.Surface, cfg Config, rnd *core.Rand, logger core.Logger) core.Color {
	if mat.IsEmissive() {
		if frontFace {
			return mat.Emission.Clamp()
		}
		return core.Black()
	}

	var result core.Color
	if cfg.FastDiffuse {
		result = traceDiffuseFast(hit, normal, mat, scene, rnd, logger)
	} else {
		result = traceDiffuseSlow(hit, normal, mat, depth, prob, hitDiffuse, scene, cfg, rnd, logger)
	}
	return result.Clamp()
}

// traceDiffuseFast implements direct-lighting-only Lambertian shading:
// for every light in the scene, sample its 4x4 area grid, shadow-test
// each sample, and accumulate cosine-weighted contributions.
func traceDiffuseFast(hit geometry.Hit, normal core.Vec3, mat material.Material, scene geometry.Surface, rnd *core.Rand, logger core.Logger) core.Color {
	var lights []geometry.Surface
	scene.GatherLightSources(&lights)

	var result core.Color
	for _, light := range lights {
		var lightResult core.Color
		for cell := 0; cell < lightGridSamples; cell++ {
			samplePoint := light.LightPointInGrid(cell, rnd)
			toLight := samplePoint.Sub(hit.Point).Normalized()
			shadowRay := core.NewRay(hit.Point, toLight)

			cosTheta := toLight.Dot(normal)
			if cosTheta <= 0 {
				continue
			}

			visible := TraceShadow(shadowRay, scene, light, logger)
			contribution := visible.Scale(cosTheta * mat.DiffAmount).Mul(mat.Color)
			lightResult = lightResult.Add(contribution)
		}
		lightResult = lightResult.Scale(1.0 / lightGridSamples).Clamp()
		result = result.Add(lightResult)
	}
	return result
}

// traceDiffuseSlow implements the Monte Carlo hemisphere estimator:
// stratified sampling over a 4 (theta) x 8 (phi) grid, with the
// documented "top-4 brightest of 32" bias and "bright early-out"
// heuristic preserved verbatim.
func traceDiffuseSlow(hit geometry.Hit, normal core.Vec3, mat material.Material, depth int, prob float64, hitDiffuse bool, scene geometry.Surface, cfg Config, rnd *core.Rand, logger core.Logger) core.Color {
	w := normal
	seed := core.NewVec3(1, 0, 0)
	if math.Abs(w.X) > 0.1 {
		seed = core.NewVec3(0, 1, 0)
	}
	u := seed.Cross(w).Normalized()
	v := w.Cross(u)

	childProb := prob
	if hitDiffuse {
		childProb = prob * diffuseFactor
	}

	samples := make([]core.Color, 0, hemisphereSamples*eclipticSamples)

	for i := 0; i < hemisphereSamples; i++ {
		for j := 0; j < eclipticSamples; j++ {
			theta := hemisphereStep * (float64(i) + rnd.Float64())
			phi := eclipticStep * (float64(j) + rnd.Float64())
			sinTheta := math.Sin(theta)

			dir := u.Scale(sinTheta * math.Cos(phi)).
				Add(v.Scale(sinTheta * math.Sin(phi))).
				Add(w.Scale(math.Cos(theta)))

			bounceRay := core.NewRay(hit.Point, dir)
			traced := TraceColor(bounceRay, scene, depth, childProb, true, cfg, rnd, logger)

			if hitDiffuse && traced.AnyChannelAtLeast(brightEarlyOutThreshold) {
				return traced.Mul(mat.Color)
			}

			samples = append(samples, traced)
		}
	}

	sortByBrightnessDesc(samples)

	top4 := samples[0].Add(samples[1]).Add(samples[2]).Add(samples[3])
	return top4.Mul(mat.Color).Scale(0.25)
}

// sortByBrightnessDesc sorts samples by channel-sum brightness,
// descending, breaking ties by original index — a stable sort is
// required because the brightness order isn't a strict weak ordering
// when ties occur.
func sortByBrightnessDesc(samples []core.Color) {
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].IsBrighterThan(samples[j])
	})
}

func traceSpecular(ray core.Ray, hit geometry.Hit, normal core.Vec3, mat material.Material, depth int, prob float64, hitDiffuse bool, scene geometry.Surface, cfg Config, rnd *core.Rand, logger core.Logger) core.Color {
	reflectDir := reflect(ray.Direction, normal)
	reflectRay := core.NewRay(hit.Point, reflectDir)

	recursed := TraceColor(reflectRay, scene, depth, prob*reflectionFactor, hitDiffuse, cfg, rnd, logger)
	return mat.Emission.Add(mat.Color.Mul(recursed)).Clamp()
}

func traceDielectric(ray core.Ray, hit geometry.Hit, normal core.Vec3, frontFace bool, mat material.Material, depth int, prob float64, hitDiffuse bool, scene geometry.Surface, cfg Config, rnd *core.Rand, logger core.Logger) core.Color {
	reflectDir := reflect(ray.Direction, normal)
	reflectRay := core.NewRay(hit.Point, reflectDir)

	// Entering (front face) uses n_outside -> n_inside; exiting is the reverse.
	ni, nt := mat.IndexInside, mat.IndexOutside
	if frontFace {
		ni, nt = mat.IndexOutside, mat.IndexInside
	}

	eta := ni / nt
	cosI := ray.Direction.AbsDot(normal)
	cos2T := 1 - eta*eta*(1-cosI*cosI)

	if cos2T < 0 {
		// Total internal reflection: behave exactly like SPECULAR.
		recursed := TraceColor(reflectRay, scene, depth, prob*reflectionFactor, hitDiffuse, cfg, rnd, logger)
		return mat.Emission.Add(mat.Color.Mul(recursed)).Clamp()
	}

	cosT := math.Sqrt(cos2T)
	refractDir := ray.Direction.Scale(eta).Add(normal.Scale(eta*cosI - cosT))
	refractRay := core.NewRay(hit.Point, refractDir)

	rs := (eta*cosI - cosT) / (eta*cosI + cosT)
	rp := (eta*cosT - cosI) / (eta*cosT + cosI)
	reflectance := (rs*rs + rp*rp) / 2

	reflected := TraceColor(reflectRay, scene, depth, prob*reflectionFactor, hitDiffuse, cfg, rnd, logger)
	// Deliberate policy: the transmitted ray recurses at depth-1,
	// extending its effective roulette budget by one level. Preserved
	// verbatim.
	refracted := TraceColor(refractRay, scene, depth-1, prob*refractionFactor, hitDiffuse, cfg, rnd, logger)

	combined := reflected.Scale(reflectance).Add(refracted.Scale(1 - reflectance))
	return mat.Emission.Add(mat.Color.Mul(combined)).Clamp()
}

func reflect(d, n core.Vec3) core.Vec3 {
	return d.Sub(n.Scale(2 * d.Dot(n)))
}

// TraceShadow estimates the visibility of a known light source from a
// shadow ray aimed at it: if the first hit is the target light, its
// emission is unoccluded radiance; otherwise the path is blocked.
func TraceShadow(ray core.Ray, scene geometry.Surface, light geometry.Surface, logger core.Logger) core.Color {
	hit, ok := scene.Hit(ray, tMin, tMax)
	if !ok {
		logger.Warnf("shadow ray missed its target light entirely")
		return core.Black()
	}
	if hit.Surface != light {
		return core.Black()
	}
	return hit.Surface.Material().Emission
}
