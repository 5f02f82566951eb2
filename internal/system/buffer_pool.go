package system

import (
	"image"
	"sync"
)

// FramePool переиспользует кадровые буферы одного разрешения, снижая
// нагрузку на GC при покадровом экспорте: рендер-пул берёт буфер,
// энкодер возвращает его после записи в ffmpeg.
type FramePool struct {
	rect image.Rectangle
	pool sync.Pool
}

func NewFramePool(width, height int) *FramePool {
	rect := image.Rect(0, 0, width, height)
	return &FramePool{
		rect: rect,
		pool: sync.Pool{
			New: func() interface{} {
				return image.NewRGBA(rect)
			},
		},
	}
}

func (p *FramePool) Get() *image.RGBA {
	return p.pool.Get().(*image.RGBA)
}

func (p *FramePool) Put(img *image.RGBA) {
	if img == nil || img.Rect != p.rect {
		return
	}
	p.pool.Put(img)
}
