// Package coffee draws a steaming cup: the steam frame followed by a fixed
// cup drawing.
package coffee

import (
	"strings"

	"github.com/san-kum/steamcup/internal/particle"
	"github.com/san-kum/steamcup/internal/steam"
)

// Cup sits under a steam grid rendered with a horizontal offset of 10 and a
// width of 25, so the rim lines up with the steam source row.
const Cup = `          _________________________
         : _ _ _ _ _ _ _ _ _ _ _ _ :
     ,---:".".".".".".".".".".".".":
    : ,'"` + "`" + `::.:.:.:.:.:.:.:.:.:.:.::'
    ` + "`" + `.` + "`" + `.  ` + "`" + `:-===-===-===-===-===-:'
      ` + "`" + `.` + "`" + `-._:                   :
        ` + "`" + `-.__` + "`" + `.               ,'
    ,--------` + "`" + `"` + "`" + `-------------'--------.
     ` + "`" + `"--.__                   __.--"'
            ` + "`" + `""-------------""'`

// CupLines is the number of lines Cup adds to a frame.
var CupLines = strings.Count(Cup, "\n") + 1

type Coffee struct {
	scene steam.Scene
}

func New(scene steam.Scene) *Coffee {
	return &Coffee{scene: scene}
}

func (c *Coffee) GenerateFrame() string {
	frame := c.scene.GenerateFrame()

	var b strings.Builder
	b.Grow(len(frame) + len(Cup))
	b.WriteString(frame)
	b.WriteString(Cup)
	return b.String()
}

func (c *Coffee) UpdateSimulation()          { c.scene.UpdateSimulation() }
func (c *Coffee) SpawnParticle() particle.ID { return c.scene.SpawnParticle() }
func (c *Coffee) Len() int                   { return c.scene.Len() }
