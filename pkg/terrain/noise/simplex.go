package noise

// Simplex is seeded 2D simplex noise after Ken Perlin's algorithm.
// Output lies in [-1, 1].
type Simplex struct {
	perm [512]int
}

var grad2 = [12][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
	{0, 1}, {0, -1}, {0, 1}, {0, -1},
}

// NewSimplex builds the permutation table from seed.
func NewSimplex(seed int64) *Simplex {
	s := &Simplex{}

	var p [256]int
	for i := range p {
		p[i] = i
	}

	// Fisher-Yates driven by a 64-bit LCG so the table does not depend on
	// math/rand's generator.
	state := uint64(seed)
	for i := 255; i > 0; i-- {
		state = state*6364136223846793005 + 1442695040888963407
		j := int((state >> 33) % uint64(i+1))
		p[i], p[j] = p[j], p[i]
	}

	for i := range s.perm {
		s.perm[i] = p[i&255]
	}
	return s
}

// Noise2D returns simplex noise at (x, y).
func (s *Simplex) Noise2D(x, y float64) float64 {
	const (
		f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
		g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6
	)

	skew := (x + y) * f2
	i := fastFloor(x + skew)
	j := fastFloor(y + skew)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Lower or upper triangle of the skewed cell.
	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & 255
	jj := j & 255
	gi0 := s.perm[ii+s.perm[jj]] % 12
	gi1 := s.perm[ii+i1+s.perm[jj+j1]] % 12
	gi2 := s.perm[ii+1+s.perm[jj+1]] % 12

	n := corner(grad2[gi0], x0, y0) + corner(grad2[gi1], x1, y1) + corner(grad2[gi2], x2, y2)
	v := 70.0 * n
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func corner(g [2]float64, x, y float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
