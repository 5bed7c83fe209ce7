package grid

import (
	"io/ioutil"
	"path/filepath"
	"testing"
)

func writeParams(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "params.json")
	if err := ioutil.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParams(t *testing.T) {
	path := writeParams(t, `{
		"name": "cluster A",
		"grid": {"width": 30, "height": 25, "n": 8, "thresh": 0.5, "max_depth": 12},
		"lens": {"x": 14.5, "y": 12.25, "q": 0.5}
	}`)
	p, err := LoadParams(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "cluster A" {
		t.Fatalf("name == %q, expect %q", p.Name, "cluster A")
	}
	if p.Opts.Width != 30 || p.Opts.Height != 25 || p.Opts.N != 8 {
		t.Fatalf("grid == %dx%d n=%d, expect 30x25 n=8",
			p.Opts.Width, p.Opts.Height, p.Opts.N)
	}
	if p.Opts.Thresh != 0.5 || p.Opts.MaxDepth != 12 {
		t.Fatalf("thresh/max_depth == %g/%d, expect 0.5/12",
			p.Opts.Thresh, p.Opts.MaxDepth)
	}
	if p.Lens == nil {
		t.Fatal("lens model missing")
	}
	if p.Lens.X != 14.5 || p.Lens.Y != 12.25 || p.Lens.Q != 0.5 {
		t.Fatalf("lens == %+v, expect x=14.5 y=12.25 q=0.5", *p.Lens)
	}
	// unspecified lens fields keep the reference values
	if p.Lens.B != DefaultLens.B || p.Lens.PA != DefaultLens.PA {
		t.Fatalf("lens == %+v, expect default b and pa", *p.Lens)
	}
	if p.Opts.Transform == nil {
		t.Fatal("lens model did not set the transform")
	}
}

func TestLoadParamsPartial(t *testing.T) {
	path := writeParams(t, `{"grid": {"n": 16}}`)
	p, err := LoadParams(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.Opts.N != 16 {
		t.Fatalf("n == %d, expect %d", p.Opts.N, 16)
	}
	// everything else stays zero for the build defaults to fill
	if p.Opts.Width != 0 || p.Opts.Thresh != 0 || p.Lens != nil {
		t.Fatalf("params == %+v, expect only n set", p)
	}
}

func TestLoadParamsInvalid(t *testing.T) {
	test := func(body string) {
		path := writeParams(t, body)
		if _, err := LoadParams(path); err == nil {
			t.Fatalf("no error for %q", body)
		}
	}
	test(`{"grid": {"width": 30}`)       // truncated json
	test(`{"grid": {"width": 0}}`)       // zero size
	test(`{"grid": {"n": -4}}`)          // negative density
	test(`{"grid": {"thresh": 0}}`)      // zero threshold
	test(`{"lens": {"q": 1.5}}`)         // axis ratio out of range
	if _, err := LoadParams(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("no error for missing file")
	}
}
