package vector

import "math"

// Line draws a Bresenham line from (x0,y0) to (x1,y1), rounding float
// endpoints to the nearest dot.
func (c *Canvas) Line(x0, y0, x1, y1 float64, color RGB) {
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx := sign(ix1 - ix0)
	sy := sign(iy1 - iy0)
	err := dx + dy

	x, y := ix0, iy0
	for {
		c.setDotColored(x, y, color)
		if x == ix1 && y == iy1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// RectOutline draws the four sides of a rectangle rooted at (x,y) with the
// given width and height in dots.
func (c *Canvas) RectOutline(x, y, w, h int, color RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	fx, fy, fw, fh := float64(x), float64(y), float64(w), float64(h)
	c.Line(fx, fy, fx+fw-1, fy, color)
	c.Line(fx, fy+fh-1, fx+fw-1, fy+fh-1, color)
	c.Line(fx, fy, fx, fy+fh-1, color)
	c.Line(fx+fw-1, fy, fx+fw-1, fy+fh-1, color)
}

// FillRect sets every dot in [x,x+w) x [y,y+h). A non-positive width or
// height is a no-op.
func (c *Canvas) FillRect(x, y, w, h int, color RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			c.setDotColored(x+dx, y+dy, color)
		}
	}
}

// CircleOutline draws a circle outline centered at (cx,cy) with radius r
// using the midpoint-circle algorithm, emitting eight-way symmetric points.
func (c *Canvas) CircleOutline(cx, cy, r int, color RGB) {
	if r < 0 {
		return
	}
	x, y := r, 0
	err := 1 - r
	plot8 := func(px, py int) {
		c.setDotColored(cx+px, cy+py, color)
		c.setDotColored(cx-px, cy+py, color)
		c.setDotColored(cx+px, cy-py, color)
		c.setDotColored(cx-px, cy-py, color)
		c.setDotColored(cx+py, cy+px, color)
		c.setDotColored(cx-py, cy+px, color)
		c.setDotColored(cx+py, cy-px, color)
		c.setDotColored(cx-py, cy-px, color)
	}
	for x >= y {
		plot8(x, y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// FillCircle fills a disc centered at (cx,cy) with radius r, scanning each
// row's half-width via the circle equation.
func (c *Canvas) FillCircle(cx, cy, r int, color RGB) {
	if r < 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		w := int(math.Floor(math.Sqrt(float64(r*r - dy*dy))))
		for dx := -w; dx <= w; dx++ {
			c.setDotColored(cx+dx, cy+dy, color)
		}
	}
}

// Ellipse draws an ellipse centered at (cx,cy) with radii rx,ry via
// parametric sampling connected by lines.
func (c *Canvas) Ellipse(cx, cy float64, rx, ry float64, color RGB) {
	maxR := math.Max(rx, ry)
	steps := int(math.Ceil(2 * math.Pi * maxR))
	if steps < 8 {
		steps = 8
	}
	prevX, prevY := cx+rx, cy
	for i := 1; i <= steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + rx*math.Cos(t)
		y := cy + ry*math.Sin(t)
		c.Line(prevX, prevY, x, y, color)
		prevX, prevY = x, y
	}
}

// Arc draws a circular arc of radius r centered at (cx,cy) from angle start
// to end (radians), sampling at a density proportional to radius and span.
func (c *Canvas) Arc(cx, cy, r, start, end float64, color RGB) {
	span := math.Abs(end - start)
	steps := int(math.Ceil(r * span))
	if steps < 2 {
		steps = 2
	}
	for i := 0; i <= steps; i++ {
		t := start + (end-start)*float64(i)/float64(steps)
		x := cx + r*math.Cos(t)
		y := cy + r*math.Sin(t)
		c.setDotColored(int(math.Round(x)), int(math.Round(y)), color)
	}
}

// CubicBezier draws a cubic Bezier curve through control points p0..p3,
// sampling proportionally to the polyline length of the control points.
func (c *Canvas) CubicBezier(p0x, p0y, p1x, p1y, p2x, p2y, p3x, p3y float64, color RGB) {
	length := dist(p0x, p0y, p1x, p1y) + dist(p1x, p1y, p2x, p2y) + dist(p2x, p2y, p3x, p3y)
	steps := int(math.Ceil(length))
	if steps < 2 {
		steps = 2
	}
	prevX, prevY := p0x, p0y
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		x := mt*mt*mt*p0x + 3*mt*mt*t*p1x + 3*mt*t*t*p2x + t*t*t*p3x
		y := mt*mt*mt*p0y + 3*mt*mt*t*p1y + 3*mt*t*t*p2y + t*t*t*p3y
		c.Line(prevX, prevY, x, y, color)
		prevX, prevY = x, y
	}
}

func dist(x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	return math.Sqrt(dx*dx + dy*dy)
}
