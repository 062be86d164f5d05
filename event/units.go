package event

import (
	"errors"
	"fmt"
)

var ErrBadUnit = errors.New("bad unit")

type EnergyUnit int

const (
	GeV EnergyUnit = iota
	MeV
)

type LengthUnit int

const (
	MM LengthUnit = iota
	CM
)

func ParseEnergyUnit(v string) (EnergyUnit, error) {
	u, ok := map[string]EnergyUnit{
		"GEV": GeV,
		"MEV": MeV,
	}[v]
	if ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w: energy unit %q", ErrBadUnit, v)
}

func (u EnergyUnit) String() string {
	d, err := u.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (u EnergyUnit) MarshalText() ([]byte, error) {
	switch u {
	case GeV:
		return []byte("GEV"), nil
	case MeV:
		return []byte("MEV"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not an energy unit>", u)
	}
}

func (u *EnergyUnit) UnmarshalText(d []byte) error {
	pu, err := ParseEnergyUnit(string(d))
	if err != nil {
		return err
	}
	*u = pu
	return nil
}

func ParseLengthUnit(v string) (LengthUnit, error) {
	u, ok := map[string]LengthUnit{
		"MM": MM,
		"CM": CM,
	}[v]
	if ok {
		return u, nil
	}
	return 0, fmt.Errorf("%w: length unit %q", ErrBadUnit, v)
}

func (u LengthUnit) String() string {
	d, err := u.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (u LengthUnit) MarshalText() ([]byte, error) {
	switch u {
	case MM:
		return []byte("MM"), nil
	case CM:
		return []byte("CM"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a length unit>", u)
	}
}

func (u *LengthUnit) UnmarshalText(d []byte) error {
	pu, err := ParseLengthUnit(string(d))
	if err != nil {
		return err
	}
	*u = pu
	return nil
}
