package geom

import (
	"errors"
	"strconv"
	"strings"
)

const extentDelimiter = "|"

type Point struct {
	X float64
	Y float64
}

// Rect is the axis aligned rectangle spanned by two corner points.
type Rect struct {
	P1 Point
	P2 Point
}

func NewRect(p1, p2 Point) Rect {
	return Rect{p1, p2}
}

// ParseExtent decodes a serialized spatial extent of the form "x1|y1|x2|y2"
// into the rectangle spanned by its two corner points. Anything that does not
// decompose into exactly four numeric tokens is a malformed extent.
func ParseExtent(extent string) (Rect, error) {
	tokens := strings.Split(extent, extentDelimiter)
	if len(tokens) != 4 {
		return Rect{}, ErrMalformedExtent
	}

	values := make([]float64, len(tokens))
	for i, token := range tokens {
		value, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return Rect{}, ErrMalformedExtent
		}

		values[i] = value
	}

	p1 := Point{values[0], values[1]}
	p2 := Point{values[2], values[3]}
	return NewRect(p1, p2), nil
}

var ErrMalformedExtent = errors.New("extent does not decompose into four numeric tokens")
