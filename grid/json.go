package grid

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"github.com/ntessore/lensgrid/qtree"
	"github.com/tidwall/cast"
)

func jsonString(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < ' ' || s[i] == '\\' || s[i] == '"' || s[i] > 126 {
			d, _ := json.Marshal(s)
			return string(d)
		}
	}
	b := make([]byte, len(s)+2)
	b[0] = '"'
	copy(b[1:], cast.ToBytes(s))
	b[len(b)-1] = '"'
	return cast.ToString(b)
}

func appendFloat(buf []byte, f float64) []byte {
	return strconv.AppendFloat(buf, f, 'g', -1, 64)
}

// WriteJSON writes the whole report as one JSON document: the run
// configuration, the ray tally, the leaf stats, and one object per leaf in
// the forest's deterministic leaf order. The name is an optional run label.
func (g *Grid) WriteJSON(w io.Writer, name string) error {
	st := g.Stats()
	var buf bytes.Buffer
	buf.WriteString(`{"ok":true`)
	if name != "" {
		buf.WriteString(`,"name":` + jsonString(name))
	}
	buf.WriteString(`,"width":` + strconv.Itoa(g.Opts.Width))
	buf.WriteString(`,"height":` + strconv.Itoa(g.Opts.Height))
	buf.WriteString(`,"n":` + strconv.Itoa(g.Opts.N))
	buf.WriteString(`,"thresh":`)
	buf.Write(appendFloat(nil, g.Opts.Thresh))
	buf.WriteString(`,"rays":{"shot":` + strconv.Itoa(g.Tally.Shot) +
		`,"kept":` + strconv.Itoa(g.Tally.Kept) +
		`,"escaped":` + strconv.Itoa(g.Tally.Escaped) + `}`)
	buf.WriteString(`,"stats":{"leaves":` + strconv.Itoa(st.Leaves) +
		`,"points":` + strconv.Itoa(st.Points) +
		`,"max_depth":` + strconv.Itoa(st.MaxDepth) +
		`,"min_count":` + strconv.Itoa(st.MinCount) +
		`,"median_count":` + strconv.Itoa(st.MedianCount) +
		`,"max_count":` + strconv.Itoa(st.MaxCount) + `}`)
	buf.WriteString(`,"leaves":[`)
	first := true
	var b []byte
	g.Forest.ForEachLeaf(func(leaf *qtree.Node) bool {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		b = append(b[:0], `{"x":`...)
		b = appendFloat(b, leaf.X)
		b = append(b, `,"y":`...)
		b = appendFloat(b, leaf.Y)
		b = append(b, `,"w":`...)
		b = appendFloat(b, leaf.W)
		b = append(b, `,"h":`...)
		b = appendFloat(b, leaf.H)
		b = append(b, `,"count":`...)
		b = strconv.AppendInt(b, int64(leaf.Len()), 10)
		b = append(b, '}')
		buf.Write(b)
		return true
	})
	buf.WriteString(`],"elapsed":` + jsonString(g.Elapsed.String()) + `}`)
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}
