// Package export — покадровый драйвер: строго монотонно шагает по времени
// с шагом 1/fps, собирает состояние каждого кадра из общего чистого ядра
// и отдаёт растрированные кадры энкодеру. Никакой собственной математики
// времени здесь нет — иначе предпросмотр и экспорт разойдутся.
package export

import (
	"context"
	"fmt"
	"image"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/text2video/internal/config"
	"github.com/ivlev/text2video/internal/project"
	"github.com/ivlev/text2video/internal/render"
	"github.com/ivlev/text2video/internal/system"
	"github.com/ivlev/text2video/internal/timeline"
	"github.com/ivlev/text2video/internal/video"
)

type Exporter struct {
	Project project.Project
	Config  *config.Config
	Encoder video.Encoder
	Pool    *system.FramePool
}

// FrameTimes возвращает моменты выборки кадров: i/fps, строго монотонно,
// от нуля до полной длительности, выровненной по кадрам.
func FrameTimes(total float64, fps int) []float64 {
	count := int(math.Round(total * float64(fps)))
	if count < 1 {
		count = 1
	}

	times := make([]float64, count)
	for i := range times {
		times[i] = float64(i) / float64(fps)
	}
	return times
}

type renderedFrame struct {
	index int
	img   *image.RGBA
}

func (e *Exporter) Run(ctx context.Context) error {
	startTime := time.Now()

	d, err := e.Project.Duration()
	if err != nil {
		return fmt.Errorf("ошибка модели длительностей: %w", err)
	}

	cfg := e.Config
	renderer, err := render.NewFrameRenderer(e.Project, cfg.Width, cfg.Height)
	if err != nil {
		return fmt.Errorf("ошибка подготовки кадров: %w", err)
	}

	times := FrameTimes(d.Total, cfg.FPS)

	workers := cfg.Workers
	if workers <= 0 {
		workers = system.RenderWorkers(cfg.Width * cfg.Height * 4)
	}
	if workers > len(times) {
		workers = len(times)
	}

	fmt.Printf("[*] Экспорт: %d кадров @ %d FPS | %dx%d | Потоков: %d\n",
		len(times), cfg.FPS, cfg.Width, cfg.Height, workers)

	// Пайплайн: jobs -> renderPool -> sequencer -> encoder.
	// Рендеринг параллельный, но энкодер обязан получать кадры по порядку,
	// поэтому между ними стоит пересборщик очереди.
	jobs := make(chan int)
	results := make(chan renderedFrame, workers*2)
	frames := make(chan *image.RGBA, workers)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range times {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var wgRender sync.WaitGroup
	for w := 0; w < workers; w++ {
		wgRender.Add(1)
		g.Go(func() error {
			defer wgRender.Done()
			for i := range jobs {
				dst := e.Pool.Get()
				renderer.Draw(timeline.StateAt(times[i], d, e.Project.Ending.Enabled), dst)
				select {
				case results <- renderedFrame{index: i, img: dst}:
				case <-gctx.Done():
					e.Pool.Put(dst)
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wgRender.Wait()
		close(results)
	}()

	g.Go(func() error {
		defer close(frames)
		pending := make(map[int]*image.RGBA)
		next := 0
		for rf := range results {
			pending[rf.index] = rf.img
			for {
				img, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				select {
				case frames <- img:
				case <-gctx.Done():
					return gctx.Err()
				}
				next++
			}
		}
		return nil
	})

	g.Go(func() error {
		return e.Encoder.EncodeStream(gctx, frames, config.EncodeParams{
			Width:        cfg.Width,
			Height:       cfg.Height,
			FPS:          cfg.FPS,
			AudioPath:    cfg.AudioPath,
			VideoEncoder: cfg.VideoEncoder,
			Quality:      cfg.Quality,
			OutputPath:   cfg.OutputVideo,
		})
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if cfg.ShowStats {
		totalTime := time.Since(startTime)
		fmt.Printf(
			"--- [PERFORMANCE REPORT] ---\n"+
				"Build: %s\n"+
				"Frames: %d\n"+
				"Total Time: %.2fs\n"+
				"Effective FPS: %.2f\n"+
				"----------------------------\n",
			cfg.BuildVersion, len(times), totalTime.Seconds(), float64(len(times))/totalTime.Seconds(),
		)
	}

	return nil
}
