package gccli

import (
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"oss.terrastruct.com/xdefer"
	"oss.terrastruct.com/xjson"

	"oss.terrastruct.com/gridcanvas/gctarget"
	"oss.terrastruct.com/gridcanvas/lib/xmain"
)

// readLayout decodes and validates the layout at path. YAML is picked by extension;
// everything else, stdin included, is JSON.
func readLayout(ms *xmain.State, path string) (_ gctarget.Layout, err error) {
	defer xdefer.Errorf(&err, "failed to read layout %q", path)

	b, err := ms.ReadPath(path)
	if err != nil {
		return nil, err
	}

	var l gctarget.Layout
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &l)
	default:
		err = json.Unmarshal(b, &l)
	}
	if err != nil {
		return nil, err
	}
	return l, gctarget.Validate(l)
}

func writeJSON(ms *xmain.State, out string, v interface{}) error {
	b := []byte(xjson.MarshalIndent(v))
	return ms.WritePath(out, append(b, '\n'))
}

func parseFloats(args []string, names ...string) ([]float64, error) {
	out := make([]float64, 0, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			name := "argument"
			if i < len(names) {
				name = names[i]
			}
			return nil, xmain.UsageErrorf("%s must be a number, got %q", name, a)
		}
		out = append(out, f)
	}
	return out, nil
}
