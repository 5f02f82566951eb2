// Package preview — интерактивный драйвер: окно с живым воспроизведением,
// время идёт по настенным часам с частотой обновления дисплея, перемотка
// стрелками может прыгать немонотонно. Состояние каждого кадра берётся из
// того же чистого ядра, что и при экспорте, поэтому картинка совпадает.
package preview

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ivlev/text2video/internal/project"
	"github.com/ivlev/text2video/internal/render"
	"github.com/ivlev/text2video/internal/timeline"
)

const seekStepSeconds = 5.0

// Player реализует ebiten.Game поверх общего таймлайна.
type Player struct {
	project  project.Project
	duration timeline.Duration
	renderer *render.FrameRenderer
	content  *ebiten.Image
	ending   *ebiten.Image

	width, height int
	elapsed       float64
	paused        bool
	last          time.Time
}

func NewPlayer(p project.Project, width, height int) (*Player, error) {
	d, err := p.Duration()
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewFrameRenderer(p, width, height)
	if err != nil {
		return nil, err
	}

	pl := &Player{
		project:  p,
		duration: d,
		renderer: renderer,
		content:  ebiten.NewImageFromImage(renderer.Content().Image),
		width:    width,
		height:   height,
		last:     time.Now(),
	}
	if img := renderer.Ending(); img != nil {
		pl.ending = ebiten.NewImageFromImage(img)
	}
	return pl, nil
}

func (pl *Player) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		pl.paused = !pl.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		pl.elapsed = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		pl.seek(seekStepSeconds)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		pl.seek(-seekStepSeconds)
	}

	now := time.Now()
	dt := now.Sub(pl.last).Seconds()
	pl.last = now

	if !pl.paused {
		pl.elapsed += dt
		if pl.elapsed > pl.duration.Total {
			// Держим последний кадр; R начинает сначала.
			pl.elapsed = pl.duration.Total
		}
	}
	return nil
}

func (pl *Player) seek(delta float64) {
	pl.elapsed += delta
	if pl.elapsed < 0 {
		pl.elapsed = 0
	}
	if pl.elapsed > pl.duration.Total {
		pl.elapsed = pl.duration.Total
	}
}

func (pl *Player) Draw(screen *ebiten.Image) {
	st := timeline.StateAt(pl.elapsed, pl.duration, pl.project.Ending.Enabled)

	screen.Fill(pl.renderer.Background())

	if st.Blend.Content > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, pl.renderer.ContentY(st.Scroll.Progress))
		op.ColorScale.ScaleAlpha(float32(st.Blend.Content))
		screen.DrawImage(pl.content, op)
	}
	if st.Blend.Ending > 0 && pl.ending != nil {
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(st.Blend.Ending))
		screen.DrawImage(pl.ending, op)
	}

	// HUD только ASCII: отладочный шрифт ebitenutil кириллицу не умеет.
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"t=%.2fs / %.2fs  progress=%.0f%%\n[SPACE] pause  [<-] [->] seek  [R] restart  [Q] quit",
		pl.elapsed, pl.duration.Total, st.Scroll.Progress*100))
}

func (pl *Player) Layout(outsideWidth, outsideHeight int) (int, int) {
	return pl.width, pl.height
}

// Run открывает окно предпросмотра и блокируется до его закрытия.
func Run(p project.Project, width, height int) error {
	pl, err := NewPlayer(p, width, height)
	if err != nil {
		return err
	}

	windowW, windowH := width/2, height/2
	if windowW < 320 || windowH < 320 {
		windowW, windowH = width, height
	}
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("text2video — предпросмотр")

	return ebiten.RunGame(pl)
}
