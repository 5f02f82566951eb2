// Package validate применяет фиксированную политику к модели длительностей
// и собирает чеклист готовности к экспорту. Все проверки чистые: любое
// отклонение становится записью со статусом, а не ошибкой выполнения.
package validate

import (
	"fmt"

	"github.com/ivlev/text2video/internal/timeline"
)

type Status string

const (
	StatusPass    Status = "pass"
	StatusWarning Status = "warning"
	StatusError   Status = "error"
)

// Check — одна позиция чеклиста.
type Check struct {
	ID      string
	Label   string
	Status  Status
	Message string
}

// Пороговые значения политики. Константы, не настройки.
const (
	maxReadableWPM  = 600 // быстрее — нечитаемо
	fastWPM         = 400 // быстрее — предупреждение
	maxTotalSeconds = 120 // дольше — стоит разбить на части
)

// Timeline проверяет модель длительностей по фиксированной таблице политики
// и возвращает упорядоченный список проверок.
func Timeline(d timeline.Duration) []Check {
	checks := make([]Check, 0, 4)

	content := Check{ID: "content", Label: "Текст", Status: StatusPass, Message: fmt.Sprintf("%d слов", d.WordCount)}
	if d.WordCount == 0 {
		content.Status = StatusWarning
		content.Message = "текст пустой — в видео не будет содержимого"
	}
	checks = append(checks, content)

	speed := Check{ID: "speed", Label: "Скорость чтения", Status: StatusPass, Message: fmt.Sprintf("%d слов/мин", d.TargetWPM)}
	switch {
	case d.TargetWPM > maxReadableWPM:
		speed.Status = StatusError
		speed.Message = fmt.Sprintf("%d слов/мин — нечитаемо быстро, увеличьте длительность", d.TargetWPM)
	case d.TargetWPM > fastWPM:
		speed.Status = StatusWarning
		speed.Message = fmt.Sprintf("%d слов/мин — быстро, зритель может не успеть", d.TargetWPM)
	}
	checks = append(checks, speed)

	length := Check{ID: "length", Label: "Длительность", Status: StatusPass, Message: fmt.Sprintf("%.0f сек", d.Content)}
	if d.Content < timeline.MinContentSeconds {
		length.Status = StatusError
		length.Message = fmt.Sprintf("%.1f сек — слишком короткое видео", d.Content)
	}
	checks = append(checks, length)

	total := Check{ID: "total", Label: "Общая длительность", Status: StatusPass, Message: fmt.Sprintf("%.0f сек", d.Total)}
	if d.Total > maxTotalSeconds {
		total.Status = StatusWarning
		total.Message = fmt.Sprintf("%.0f сек — подумайте о разбиении на несколько роликов", d.Total)
	}
	checks = append(checks, total)

	return checks
}

// IsValid — true, если среди проверок нет ошибок. Предупреждения не в счёт.
func IsValid(checks []Check) bool {
	for _, c := range checks {
		if c.Status == StatusError {
			return false
		}
	}
	return true
}
