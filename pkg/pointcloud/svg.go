package pointcloud

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/philipparndt/gobox/pkg/geometry"
)

// ReadSVG collects the corner points of every polygon, polyline, line and
// rect element. Transforms and curves are not interpreted.
func ReadSVG(r io.Reader) (*Cloud, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SVG")
	}

	cloud := &Cloud{Planar: true}
	add := func(x, y float64) {
		cloud.Points = append(cloud.Points, geometry.NewVector3(x, y, 0))
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range root.FindAll(name) {
			values, err := parseNumbers(el.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s points", name)
			}
			if len(values)%2 != 0 {
				return nil, errors.Errorf("%s has an odd number of coordinates", name)
			}
			for i := 0; i < len(values); i += 2 {
				add(values[i], values[i+1])
			}
		}
	}

	for _, el := range root.FindAll("line") {
		v, err := attributes(el, "x1", "y1", "x2", "y2")
		if err != nil {
			return nil, err
		}
		add(v[0], v[1])
		add(v[2], v[3])
	}

	for _, el := range root.FindAll("rect") {
		v, err := attributes(el, "x", "y", "width", "height")
		if err != nil {
			return nil, err
		}
		add(v[0], v[1])
		add(v[0]+v[2], v[1])
		add(v[0]+v[2], v[1]+v[3])
		add(v[0], v[1]+v[3])
	}

	return cloud, nil
}

func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", f)
		}
		values = append(values, v)
	}
	return values, nil
}

// attributes reads numeric attributes, treating missing ones as 0 like SVG does
func attributes(el *svgparser.Element, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		raw, ok := el.Attributes[name]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s attribute %s", el.Name, name)
		}
		values[i] = v
	}
	return values, nil
}
