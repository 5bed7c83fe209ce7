package grid

import (
	"fmt"
	"io/ioutil"

	"github.com/ntessore/lensgrid/lens"
	"github.com/tidwall/gjson"
)

// Params are run parameters read from a JSON parameter file. Fields left
// out of the file stay zero and fall back to the package defaults when the
// grid is built. The file looks like:
//
//	{
//	  "name": "cluster A",
//	  "grid": {"width": 20, "height": 20, "n": 10, "thresh": 1.0, "max_depth": 48},
//	  "lens": {"x": 11.23, "y": 9.87, "b": 6.34, "pa": 34.56, "q": 0.78}
//	}
type Params struct {
	Name string
	Opts Options
	Lens *lens.SIE
}

// LoadParams reads and validates a parameter file.
func LoadParams(path string) (*Params, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parameter file %s: invalid json", path)
	}
	json := string(data)
	p := &Params{}
	p.Name = gjson.Get(json, "name").String()
	for _, field := range []struct {
		path string
		dst  *int
	}{
		{"grid.width", &p.Opts.Width},
		{"grid.height", &p.Opts.Height},
		{"grid.n", &p.Opts.N},
		{"grid.max_depth", &p.Opts.MaxDepth},
	} {
		v := gjson.Get(json, field.path)
		if !v.Exists() {
			continue
		}
		if v.Int() < 1 {
			return nil, fmt.Errorf("parameter file %s: %s must be positive", path, field.path)
		}
		*field.dst = int(v.Int())
	}
	if v := gjson.Get(json, "grid.thresh"); v.Exists() {
		if v.Float() <= 0 {
			return nil, fmt.Errorf("parameter file %s: grid.thresh must be positive", path)
		}
		p.Opts.Thresh = v.Float()
	}
	if v := gjson.Get(json, "lens"); v.Exists() {
		l := DefaultLens
		if w := v.Get("x"); w.Exists() {
			l.X = w.Float()
		}
		if w := v.Get("y"); w.Exists() {
			l.Y = w.Float()
		}
		if w := v.Get("b"); w.Exists() {
			l.B = w.Float()
		}
		if w := v.Get("pa"); w.Exists() {
			l.PA = w.Float()
		}
		if w := v.Get("q"); w.Exists() {
			l.Q = w.Float()
		}
		if !(l.Q > 0 && l.Q < 1) {
			return nil, fmt.Errorf("parameter file %s: lens.q must be between 0 and 1", path)
		}
		p.Lens = &l
		p.Opts.Transform = l.Deflect
	}
	return p, nil
}
