package environ

const (
	DefaultCIVariable   = "CI"
	DefaultNameVariable = "NODE_ENV"
	DefaultEnvironment  = "development"
	Production          = "production"
)

// Classifier decides whether the process runs in CI and which environment
// label applies. Zero values fall back to the OS environment and the
// conventional variable names. Nothing is cached.
type Classifier struct {
	Lookup       LookupFunc
	CIVariable   string
	NameVariable string
}

func NewClassifier(lookup LookupFunc) *Classifier {
	return &Classifier{
		Lookup:       lookup,
		CIVariable:   DefaultCIVariable,
		NameVariable: DefaultNameVariable,
	}
}

// IsCI is true when the CI variable holds any non-empty value, "false" included.
func (c *Classifier) IsCI() bool {
	return GetOr(c.lookup(), c.ciVariable(), "") != ""
}

// Name returns the environment label, or "development" when unset or empty.
func (c *Classifier) Name() string {
	if name := GetOr(c.lookup(), c.nameVariable(), ""); name != "" {
		return name
	}

	return DefaultEnvironment
}

func (c *Classifier) IsProduction() bool {
	return c.Name() == Production
}

func (c *Classifier) lookup() LookupFunc {
	if c == nil || c.Lookup == nil {
		return OS
	}

	return c.Lookup
}

func (c *Classifier) ciVariable() string {
	if c == nil || c.CIVariable == "" {
		return DefaultCIVariable
	}

	return c.CIVariable
}

func (c *Classifier) nameVariable() string {
	if c == nil || c.NameVariable == "" {
		return DefaultNameVariable
	}

	return c.NameVariable
}
