package systems

import (
	"image/color"

	"github.com/automoto/dino/components"
	cfg "github.com/automoto/dino/config"
	"github.com/automoto/dino/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// displayList records the simulation's draw calls for the frame being
// stepped. The scene is drawn later from the recorded sprites.
type displayList struct {
	sprites []components.Sprite
}

func (d *displayList) DrawEntity(b *sim.Body, p *sim.Player) {
	r := b.Rect()
	x, y := p.ScreenPos(r.X, r.Y)
	d.sprites = append(d.sprites, components.Sprite{
		Kind:    b.Kind,
		X:       x,
		Y:       y,
		W:       r.W,
		H:       r.H,
		Frame:   b.Frame,
		Flip:    b.Flip,
		Variant: b.Variant,
		Style:   b.Style,
		ShakeDX: b.ShakeDX,
	})
}

func (d *displayList) DrawPlayer(p *sim.Player) {
	r := p.Rect()
	d.sprites = append(d.sprites, components.Sprite{
		Kind:  sim.KindNone,
		X:     p.ViewX,
		Y:     p.ViewY,
		W:     r.W,
		H:     r.H,
		Frame: p.Frame,
		Flip:  p.Flip,
	})
}

func (d *displayList) reset() {
	d.sprites = d.sprites[:0]
}

var (
	wallColors = [2]color.RGBA{
		{R: 120, G: 80, B: 40, A: 255},
		{R: 150, G: 170, B: 200, A: 255},
	}
	wallEdgeColors = [2]color.RGBA{
		{R: 60, G: 170, B: 60, A: 255},
		{R: 245, G: 250, B: 255, A: 255},
	}
	thornColors = [2]color.RGBA{
		{R: 90, G: 60, B: 30, A: 255},
		{R: 190, G: 230, B: 255, A: 255},
	}
	waterColor   = color.RGBA{R: 40, G: 90, B: 200, A: 220}
	waveColor    = color.RGBA{R: 140, G: 190, B: 255, A: 255}
	iceColor     = color.RGBA{R: 180, G: 230, B: 250, A: 255}
	thinIceColor = color.RGBA{R: 210, G: 240, B: 255, A: 230}
	crackColor   = color.RGBA{R: 90, G: 130, B: 170, A: 255}
	trunkColor   = color.RGBA{R: 100, G: 70, B: 40, A: 255}
	leafColor    = color.RGBA{R: 40, G: 130, B: 50, A: 255}
	stemColor    = color.RGBA{R: 60, G: 150, B: 60, A: 255}
	petalColor   = color.RGBA{R: 240, G: 90, B: 150, A: 255}
	dinoColor    = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	eyeColor     = color.RGBA{R: 20, G: 20, B: 20, A: 255}

	bodyColors = map[sim.Kind]color.RGBA{
		sim.KindSnake:    {R: 110, G: 170, B: 40, A: 255},
		sim.KindPtero:    {R: 150, G: 90, B: 170, A: 255},
		sim.KindFrog:     {R: 40, G: 160, B: 100, A: 255},
		sim.KindPlant:    {R: 30, G: 110, B: 40, A: 255},
		sim.KindSpit:     {R: 170, G: 120, B: 60, A: 255},
		sim.KindYeti:     {R: 235, G: 235, B: 245, A: 255},
		sim.KindMushroom: {R: 210, G: 50, B: 40, A: 255},
		sim.KindMammoth:  {R: 130, G: 90, B: 60, A: 255},
		sim.KindGem:      {R: 80, G: 230, B: 255, A: 255},
		sim.KindGemLife:  {R: 255, G: 90, B: 160, A: 255},
		sim.KindSpore:    {R: 200, G: 220, B: 60, A: 255},
		sim.KindSnowball: {R: 250, G: 250, B: 255, A: 255},
	}
)

// DrawLevel renders the parallax background and the recorded frame, shaken
// by the camera offset.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Session == nil {
		return
	}

	drawBackground(screen, level.Session)

	var ox, oy float32
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(cameraEntry)
		ox, oy = float32(camera.OffsetX), float32(camera.OffsetY)
	}
	for i := range level.Display {
		drawSprite(screen, &level.Display[i], ox, oy)
	}
}

// ParallaxOffsets returns the x positions of the far and near background
// layers. Both move left as the camera moves right across the level.
func ParallaxOffsets(a *sim.Attempt) (far, near float32) {
	p := a.Player
	levelW := float32(a.Grid.Width())
	if levelW <= 0 {
		return 0, 0
	}
	camera := float32(p.X - p.ViewX)
	far = -float32(cfg.Background.FarTravel) * camera / levelW
	near = -float32(cfg.Background.NearTravel) * camera / levelW
	return far, near
}

func drawBackground(screen *ebiten.Image, s *sim.Session) {
	bg := cfg.Background
	hud := float32(cfg.World.HUDHeight)
	w, h := float32(cfg.C.Width), float32(cfg.C.Height)

	sky := bg.DayColor
	if (s.Ctx.Clock()/bg.CycleFrames)%2 == 1 {
		sky = bg.NightColor
	}
	vector.FillRect(screen, 0, hud, w, h-hud, sky, false)

	farColor, nearColor := bg.FarColor, bg.NearColor
	if s.Grid.Tileset() == 1 {
		farColor, nearColor = bg.SnowFarColor, bg.SnowNearColor
	}
	far, near := ParallaxOffsets(s.Attempt)
	drawHills(screen, far, float32(bg.FarWidth), h-150, 90, farColor)
	drawHills(screen, near, float32(bg.NearWidth), h-70, 60, nearColor)
}

// drawHills lays a row of round hills across a layer of the given width.
func drawHills(screen *ebiten.Image, x0, width, baseY, radius float32, clr color.RGBA) {
	step := radius * 1.5
	for x := x0; x < x0+width; x += step {
		if x+radius < 0 || x-radius > float32(cfg.C.Width) {
			continue
		}
		vector.FillCircle(screen, x, baseY, radius, clr, true)
	}
	vector.FillRect(screen, x0, baseY, width, float32(cfg.C.Height)-baseY, clr, false)
}

func drawSprite(screen *ebiten.Image, s *components.Sprite, ox, oy float32) {
	x, y := float32(s.X)+ox, float32(s.Y)+oy
	w, h := float32(s.W), float32(s.H)
	t := float32(cfg.World.TileSize)

	switch s.Kind {
	case sim.KindNone:
		drawDino(screen, x, y, w, h, s.Frame, s.Flip)
	case sim.KindWall:
		style := s.Style % 2
		vector.FillRect(screen, x, y, w, h, wallColors[style], false)
		edge := wallEdgeColors[style]
		if s.Variant&sim.EdgeTop != 0 {
			vector.FillRect(screen, x, y, w, 6, edge, false)
		}
		if s.Variant&sim.EdgeLeft != 0 {
			vector.FillRect(screen, x, y, 3, h, edge, false)
		}
		if s.Variant&sim.EdgeRight != 0 {
			vector.FillRect(screen, x+w-3, y, 3, h, edge, false)
		}
		if s.Variant&sim.EdgeBottom != 0 {
			vector.FillRect(screen, x, y+h-3, w, 3, edge, false)
		}
	case sim.KindWater:
		vector.FillRect(screen, x, y, w, h, waterColor, false)
		if s.Frame < 2 {
			vector.FillRect(screen, x+float32(s.Frame)*8, y, w/2, 4, waveColor, false)
		}
	case sim.KindThorns:
		clr := thornColors[s.Style%2]
		for i := float32(0); i < 4; i++ {
			sh := h * (0.5 + 0.5*float32(int(i)%2))
			vector.FillRect(screen, x+i*w/4+2, y+h-sh, w/4-4, sh, clr, false)
		}
	case sim.KindIce:
		vector.FillRect(screen, x, y, w, h, iceColor, false)
	case sim.KindThinIce:
		drawThinIce(screen, x, y, w, h, s.Frame)
	case sim.KindTree:
		tall := float32(s.Variant+1) * t
		vector.FillRect(screen, x+w/2-4, y, 8, tall, trunkColor, false)
		vector.FillCircle(screen, x+w/2, y, w/2+4, leafColor, true)
	case sim.KindFlower:
		tall := float32(s.Variant+1) * t
		vector.FillRect(screen, x+w/2-1, y+h/2, 2, tall-h/2, stemColor, false)
		vector.FillCircle(screen, x+w/2, y+h/2, 6, petalColor, true)
	case sim.KindGem, sim.KindGemLife:
		clr := bodyColors[s.Kind]
		if s.Frame == 1 {
			clr = brighten(clr)
		}
		vector.FillCircle(screen, x+w/2, y+h/2, w/2, clr, true)
	case sim.KindSpore, sim.KindSnowball:
		vector.FillCircle(screen, x+w/2, y+h/2, w/2, bodyColors[s.Kind], true)
	case sim.KindSpit:
		x += float32(s.ShakeDX)
		if s.Frame == 0 {
			// buried until the player is in range
			vector.FillRect(screen, x, y+h-8, w, 8, bodyColors[s.Kind], false)
			return
		}
		drawCreature(screen, x, y, w, h, bodyColors[s.Kind], s.Flip)
	case sim.KindMushroom:
		stalk := h
		if s.Frame == 1 {
			stalk = h / 2
		}
		vector.FillRect(screen, x+w/2-4, y+h-stalk, 8, stalk, cfg.White, false)
		vector.FillRect(screen, x, y+h-stalk, w, 8, bodyColors[s.Kind], false)
	default:
		clr, ok := bodyColors[s.Kind]
		if !ok {
			return
		}
		if s.Frame == 1 {
			// two-frame walk cycle bobs the body
			y--
		}
		drawCreature(screen, x, y, w, h, clr, s.Flip)
	}
}

func drawThinIce(screen *ebiten.Image, x, y, w, h float32, frame int) {
	switch {
	case frame >= 4:
		vector.FillRect(screen, x, y, w, h, waterColor, false)
		if frame == 5 {
			vector.FillRect(screen, x, y, w, 4, waveColor, false)
		}
	default:
		vector.FillRect(screen, x, y, w, h, thinIceColor, false)
		for i := 0; i < frame; i++ {
			cx := x + w*float32(i+1)/4
			vector.StrokeLine(screen, cx-4, y, cx+4, y+h, 1, crackColor, false)
		}
	}
}

func drawCreature(screen *ebiten.Image, x, y, w, h float32, clr color.RGBA, flip bool) {
	vector.FillRect(screen, x, y, w, h, clr, false)
	ex := x + w - 7
	if flip {
		ex = x + 3
	}
	vector.FillRect(screen, ex, y+4, 4, 4, eyeColor, false)
}

func drawDino(screen *ebiten.Image, x, y, w, h float32, frame int, flip bool) {
	vector.FillRect(screen, x, y+h/4, w, h*3/4-4, dinoColor, false)
	head := x + w/2
	if flip {
		head = x - w/4
	}
	vector.FillRect(screen, head, y, w*3/4, h/3, dinoColor, false)
	eye := head + w*3/4 - 6
	if flip {
		eye = head + 2
	}
	vector.FillRect(screen, eye, y+3, 3, 3, eyeColor, false)

	// legs alternate while running
	legA, legB := float32(4), float32(4)
	switch frame {
	case 1:
		legA = 2
	case 2:
		legB = 2
	}
	vector.FillRect(screen, x+2, y+h-4, 5, legA, dinoColor, false)
	vector.FillRect(screen, x+w-7, y+h-4, 5, legB, dinoColor, false)
}

func brighten(c color.RGBA) color.RGBA {
	up := func(v uint8) uint8 {
		if v > 195 {
			return 255
		}
		return v + 60
	}
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}
