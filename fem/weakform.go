package fem

// WeakForm holds the coefficients of the time discretized diffusion
// weak form. With implicit Euler the bilinear form is
//
//	a(u,v) = MassCoeff u v + Dt DiffCoeff grad(u).grad(v)
//
// and the linear form is L(v) = u_prev v plus any source functional.
// Coefficients are evaluated at element centroids, constant per
// element.
type WeakForm struct {
	Dt        float64
	MassCoeff func(x, y float64) float64
	DiffCoeff func(x, y float64) float64
}

// NewWeakForm builds the standard constant coefficient form, unit mass
// coefficient and diffusivity kappa.
func NewWeakForm(dt, kappa float64) WeakForm {
	return WeakForm{
		Dt:        dt,
		MassCoeff: func(x, y float64) float64 { return 1 },
		DiffCoeff: func(x, y float64) float64 { return kappa },
	}
}
