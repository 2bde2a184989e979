package mock

import "github.com/fwojciec/sitecensus"

var _ sitecensus.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitecensus.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
