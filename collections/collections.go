// Package collections is chapter 3: slices, strings, maps, and the
// comma-ok / (value, error) idioms that replace optional and result types.
package collections

import "github.com/marcodamonte/chapters/chapter"

// Run prints every chapter 3 demo to p.
func Run(p *chapter.Printer) error {
	p.Section("Slices — append, index, range, pop, literals")
	demoSlices(p)

	p.Section("Strings — builder, slicing, concatenation, Sprintf")
	demoStrings(p)

	p.Section("Maps — insert, lookup, iterate, overwrite, delete")
	demoMaps(p)

	p.Section("Optional and result values — comma-ok and (T, error)")
	demoOptionsAndResults(p)
	return nil
}
