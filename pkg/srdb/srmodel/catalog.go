package srmodel

// Catalog maps coffee types to the quality grades valid for them. The
// defaults cover the grades traded by the default deployment; callers can
// construct a Catalog with their own grade lists.
type Catalog struct {
	grades map[string][]string
}

func NewCatalog(grades map[string][]string) *Catalog {
	return &Catalog{grades: grades}
}

func DefaultCatalog() *Catalog {
	return NewCatalog(map[string][]string{
		"arabica": {"Bugisu AA", "Bugisu A", "Bugisu PB", "Drugar", "Wugar"},
		"robusta": {"Screen 18", "Screen 15", "Screen 12", "FAQ"},
	})
}

func (c *Catalog) HasCoffeeType(coffeeType string) bool {
	_, ok := c.grades[coffeeType]
	return ok
}

func (c *Catalog) GradesFor(coffeeType string) []string {
	return c.grades[coffeeType]
}

// ValidGrade reports whether grade belongs to the grade list for coffeeType.
func (c *Catalog) ValidGrade(coffeeType, grade string) bool {
	for _, g := range c.grades[coffeeType] {
		if g == grade {
			return true
		}
	}
	return false
}
