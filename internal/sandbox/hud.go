package sandbox

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var hudTextColor = color.RGBA{235, 235, 235, 255}

// hudLines formats the rig state shown in the corner panel.
func (g *Game) hudLines() []string {
	anchor := g.ctrl.Anchor()
	arm := g.ctrl.Arm()
	metrics := g.monitor.Snapshot()

	follow := "off"
	if g.ctrl.IsFollowing() {
		follow = "on"
	}
	lines := []string{
		fmt.Sprintf("anchor  %7.1f %7.1f %6.1f", anchor.X(), anchor.Y(), anchor.Z()),
		fmt.Sprintf("yaw %6.1f  pitch %6.1f", mgl32.RadToDeg(g.ctrl.Yaw()), mgl32.RadToDeg(arm.Pitch)),
		fmt.Sprintf("zoom  desired %6.0f  physical %6.0f", arm.DesiredLength, arm.PhysicalLength),
		fmt.Sprintf("speed %6.0f  follow %s", g.ctrl.MovementSpeed(), follow),
		fmt.Sprintf("offset  vertical %7.1f  lateral %7.1f", arm.VerticalOffset, arm.LateralOffset),
	}
	if reach, ok := g.ctrl.ReachFactors(); ok && reach.Valid {
		lines = append(lines, fmt.Sprintf("reach  lat %.3f fwd %.3f back %.3f", reach.Lateral, reach.Forward, reach.Backward))
	} else {
		lines = append(lines, "reach  unavailable (hard clamp only)")
	}
	lines = append(lines, fmt.Sprintf("tick %5.2fms avg %5.2fms  proj/tick %.2f",
		float64(metrics.LastTick.Microseconds())/1000,
		float64(metrics.AverageTick.Microseconds())/1000,
		metrics.ProjectionsPerTick))
	return lines
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	const lineHeight = 16
	h := float32(len(lines)*lineHeight + 12)
	vector.DrawFilledRect(screen, 8, 8, 330, h, panelColor, false)

	face := basicfont.Face7x13
	for i, line := range lines {
		ebitext.Draw(screen, line, face, 16, 24+i*lineHeight, hudTextColor)
	}

	ebitenutil.DebugPrintAt(screen,
		"WASD pan  Q/E turn  Z/X rotate  wheel zoom  RMB drag  F follow  LMB minimap",
		8, g.screenHeight-20)
}
