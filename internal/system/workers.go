package system

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// RenderWorkers подбирает число потоков рендеринга кадров под машину.
// Отталкиваемся от числа логических ядер, но ограничиваем пул так, чтобы
// буферы кадров в полёте занимали не больше четверти свободной памяти:
// кадр 1080x1920 RGBA — это ~8 МБ, и на слабой машине широкий пул
// выест память быстрее, чем энкодер успеет её вернуть.
func RenderWorkers(frameBytes int) int {
	workers, err := cpu.Counts(true)
	if err != nil || workers < 1 {
		workers = runtime.NumCPU()
	}

	if frameBytes > 0 {
		if vm, err := mem.VirtualMemory(); err == nil {
			budget := int(vm.Available / 4 / uint64(frameBytes))
			if budget < 1 {
				budget = 1
			}
			if workers > budget {
				workers = budget
			}
		}
	}

	if workers < 1 {
		workers = 1
	}
	return workers
}
