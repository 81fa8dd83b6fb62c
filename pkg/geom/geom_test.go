package geom_test

import (
	"testing"

	. "github.com/franela/goblin"
	"github.com/hsbo-copernicus/rasterproc/pkg/geom"
)

func TestParseExtent(t *testing.T) {
	g := Goblin(t)

	g.Describe("ParseExtent", func() {
		g.It("Should parse four pipe separated tokens into two corner points", func() {
			rect, err := geom.ParseExtent("10.0|20.0|30.0|40.0")

			g.Assert(err).IsNil("should not return error for well formed extent")
			g.Assert(rect.P1).Equal(geom.Point{X: 10.0, Y: 20.0})
			g.Assert(rect.P2).Equal(geom.Point{X: 30.0, Y: 40.0})
		})

		g.It("Should parse negative and integer valued tokens", func() {
			rect, err := geom.ParseExtent("-7|51.5|-6.25|52")

			g.Assert(err).IsNil()
			g.Assert(rect.P1).Equal(geom.Point{X: -7, Y: 51.5})
			g.Assert(rect.P2).Equal(geom.Point{X: -6.25, Y: 52})
		})

		g.It("Should fail when extent has less than four tokens", func() {
			_, err := geom.ParseExtent("10.0|20.0|30.0")

			g.Assert(err).Equal(geom.ErrMalformedExtent)
		})

		g.It("Should fail when extent has more than four tokens", func() {
			_, err := geom.ParseExtent("10.0|20.0|30.0|40.0|50.0")

			g.Assert(err).Equal(geom.ErrMalformedExtent)
		})

		g.It("Should fail when a token is not numeric", func() {
			_, err := geom.ParseExtent("10.0|20.0|north|40.0")

			g.Assert(err).Equal(geom.ErrMalformedExtent)
		})

		g.It("Should fail on empty extent string", func() {
			_, err := geom.ParseExtent("")

			g.Assert(err).Equal(geom.ErrMalformedExtent)
		})

		g.It("Should fail when extent uses a different delimiter", func() {
			_, err := geom.ParseExtent("10.0,20.0,30.0,40.0")

			g.Assert(err).Equal(geom.ErrMalformedExtent)
		})
	})
}
