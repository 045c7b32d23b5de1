package mock

import "github.com/fwojciec/workbench"

var _ workbench.Converter = (*Converter)(nil)

// Converter is a mock implementation of workbench.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
