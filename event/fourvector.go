package event

// FourVector is a Lorentz vector. Component 0 is the time-like one
// (energy or time), components 1 to 3 are the spatial ones.
type FourVector [4]float64

// TXYZ returns the four vector (t, x, y, z).
func TXYZ(t, x, y, z float64) FourVector {
	return FourVector{t, x, y, z}
}

func (v FourVector) T() float64 { return v[0] }
func (v FourVector) X() float64 { return v[1] }
func (v FourVector) Y() float64 { return v[2] }
func (v FourVector) Z() float64 { return v[3] }
