package sprig

import (
	"math"
	"sort"
)

// Path is a parametric curve followed by FollowPath. PointAt is evaluated at
// t in [0, 1]; Length is the approximate arc length.
type Path interface {
	PointAt(t float64) (x, y float64)
	Length() float64
}

// Polyline is a path through straight segments, parametrized by arc length
// so a linear FollowPath moves at constant speed.
type Polyline struct {
	points []Vec2
	cum    []float64 // cumulative length at each point
}

// NewPolyline builds a polyline through points. With closed set the path
// returns to the first point.
func NewPolyline(closed bool, points ...Vec2) *Polyline {
	pts := append([]Vec2(nil), points...)
	if closed && len(pts) > 1 {
		pts = append(pts, pts[0])
	}
	p := &Polyline{points: pts, cum: make([]float64, len(pts))}
	for i := 1; i < len(pts); i++ {
		p.cum[i] = p.cum[i-1] + math.Hypot(pts[i].X-pts[i-1].X, pts[i].Y-pts[i-1].Y)
	}
	return p
}

// Points returns the polyline's vertices. The slice MUST NOT be mutated.
func (p *Polyline) Points() []Vec2 { return p.points }

// Length returns the summed segment lengths.
func (p *Polyline) Length() float64 {
	if len(p.cum) == 0 {
		return 0
	}
	return p.cum[len(p.cum)-1]
}

// PointAt returns the point t of the way along the polyline by distance.
func (p *Polyline) PointAt(t float64) (float64, float64) {
	switch len(p.points) {
	case 0:
		return 0, 0
	case 1:
		return p.points[0].X, p.points[0].Y
	}
	total := p.Length()
	if total == 0 {
		return p.points[0].X, p.points[0].Y
	}
	t = clamp01(t)
	if t == 1 {
		last := p.points[len(p.points)-1]
		return last.X, last.Y
	}
	d := t * total
	// First point whose cumulative length passes d ends the segment.
	i := sort.SearchFloat64s(p.cum, d)
	if i == 0 {
		i = 1
	}
	seg := p.cum[i] - p.cum[i-1]
	local := 0.0
	if seg > 0 {
		local = (d - p.cum[i-1]) / seg
	}
	a, b := p.points[i-1], p.points[i]
	return lerp(a.X, b.X, local), lerp(a.Y, b.Y, local)
}

// CubicBezier is one cubic segment from P0 to P3 with control points P1, P2.
type CubicBezier struct {
	P0, P1, P2, P3 Vec2
}

// Eval returns the point at parameter t.
func (c CubicBezier) Eval(t float64) Vec2 {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Vec2{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// bezierSamples is the number of chords per segment used to approximate arc
// length.
const bezierSamples = 32

// BezierPath chains cubic segments. t is mapped through a sampled
// arc-length table so movement speed stays close to uniform.
type BezierPath struct {
	segments []CubicBezier
	lengths  [][bezierSamples + 1]float64 // [segment][sample] cumulative length
	total    float64
}

// NewBezierPath builds a path from connected segments.
func NewBezierPath(segments ...CubicBezier) *BezierPath {
	p := &BezierPath{
		segments: append([]CubicBezier(nil), segments...),
		lengths:  make([][bezierSamples + 1]float64, len(segments)),
	}
	for i, s := range p.segments {
		prev := s.P0
		for k := 1; k <= bezierSamples; k++ {
			pt := s.Eval(float64(k) / bezierSamples)
			p.lengths[i][k] = p.lengths[i][k-1] + math.Hypot(pt.X-prev.X, pt.Y-prev.Y)
			prev = pt
		}
		p.total += p.lengths[i][bezierSamples]
	}
	return p
}

// Length returns the sampled arc length of every segment.
func (p *BezierPath) Length() float64 { return p.total }

// PointAt returns the point t of the way along the path by arc length.
func (p *BezierPath) PointAt(t float64) (float64, float64) {
	if len(p.segments) == 0 {
		return 0, 0
	}
	t = clamp01(t)
	if p.total == 0 || t == 1 {
		end := p.segments[len(p.segments)-1].P3
		if p.total == 0 {
			end = p.segments[0].P0
		}
		return end.X, end.Y
	}
	d := t * p.total
	i := 0
	for i < len(p.segments)-1 && d > p.lengths[i][bezierSamples] {
		d -= p.lengths[i][bezierSamples]
		i++
	}
	table := &p.lengths[i]
	k := sort.SearchFloat64s(table[:], d)
	if k == 0 {
		k = 1
	}
	if k > bezierSamples {
		k = bezierSamples
	}
	span := table[k] - table[k-1]
	local := 0.0
	if span > 0 {
		local = (d - table[k-1]) / span
	}
	u := (float64(k-1) + clamp01(local)) / bezierSamples
	pt := p.segments[i].Eval(u)
	return pt.X, pt.Y
}
