package srmodel

import "fmt"

// Unit is the measurement unit for a transfer quantity.
type Unit string

const (
	UnitKg   Unit = "kg"
	UnitTons Unit = "tons"
	UnitBags Unit = "bags"
)

func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitKg, UnitTons, UnitBags:
		return Unit(s), nil
	default:
		return "", fmt.Errorf("unknown unit %q", s)
	}
}
