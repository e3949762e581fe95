package numformat

// Config describes a format loaded from the environment.
type Config struct {
	Precision   int    `env:"NUMFORMAT_PRECISION" envDefault:"17"`
	Scale       int    `env:"NUMFORMAT_SCALE" envDefault:"2"`
	NonNegative bool   `env:"NUMFORMAT_NON_NEGATIVE" envDefault:"false"`
	CatalogPath string `env:"NUMFORMAT_CATALOG"` // optional YAML catalog
}

// Format returns the format described by the config.
func (c Config) Format() Format {
	return Format{Precision: c.Precision, Scale: c.Scale, NonNegative: c.NonNegative}
}

// NewFromConfig creates a Validator from the provided Config.
func NewFromConfig(cfg Config) (*Validator, error) {
	return NewFromFormat(cfg.Format())
}
