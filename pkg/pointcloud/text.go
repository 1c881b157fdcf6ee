package pointcloud

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipparndt/gobox/pkg/geometry"
)

// ReadText reads one point per line as two or three numbers separated by
// whitespace or commas. Blank lines and lines starting with # are skipped.
// The cloud is planar when every line has two numbers.
func ReadText(r io.Reader) (*Cloud, error) {
	cloud := &Cloud{Planar: true}
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 && len(fields) != 3 {
			return nil, errors.Errorf("line %d: expected 2 or 3 coordinates, got %d", line, len(fields))
		}

		var c [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			c[i] = v
		}
		if len(fields) == 3 {
			cloud.Planar = false
		}
		cloud.Points = append(cloud.Points, geometry.NewVector3(c[0], c[1], c[2]))
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading point cloud")
	}
	if len(cloud.Points) == 0 {
		cloud.Planar = false
	}
	return cloud, nil
}
