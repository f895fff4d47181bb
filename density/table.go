package density

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

type LandTypeConfig struct {
	Name  string      `yaml:"name" json:"name"`
	Above CurveConfig `yaml:"above" json:"above"`
	Below CurveConfig `yaml:"below" json:"below"`
}

type TableConfig struct {
	LandTypes []LandTypeConfig `yaml:"landTypes" json:"landTypes"`
}

// Table is a set of density providers keyed by land type name.
type Table struct {
	names     []string
	providers map[string]Provider
}

func NewTable(cfg *TableConfig) (*Table, error) {
	t := &Table{
		providers: make(map[string]Provider),
	}

	if cfg == nil {
		return t, nil
	}

	for _, landType := range cfg.LandTypes {
		if landType.Name == "" {
			return nil, fmt.Errorf("%w: land type without name", commerr.ErrInvalidArgument)
		}

		if _, ok := t.providers[landType.Name]; ok {
			return nil, fmt.Errorf("%w: land type %s", commerr.ErrAlreadyExists, landType.Name)
		}

		above, err := landType.Above.Build()
		if err != nil {
			return nil, err
		}

		below, err := landType.Below.Build()
		if err != nil {
			return nil, err
		}

		t.names = append(t.names, landType.Name)
		t.providers[landType.Name] = Curves{
			Above: above,
			Below: below,
		}
	}

	return t, nil
}

func (t *Table) Names() []string {
	return append([]string{}, t.names...)
}

func (t *Table) Get(name string) (Provider, error) {
	p, ok := t.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: land type %s", commerr.ErrNotFound, name)
	}

	return p, nil
}
