package validate

import "github.com/ivlev/text2video/internal/timeline"

// Presence — внешние факты о проекте, которые чеклист не может вычислить
// из модели длительностей сам.
type Presence struct {
	AudioAttached    bool
	EndingEnabled    bool
	EndingConfigured bool // у финальной карточки есть заголовок, подпись или QR
}

// Checklist — упорядоченный чеклист готовности к экспорту.
// Ready == true, когда нет ни одной проверки со статусом error;
// предупреждения экспорт не блокируют.
type Checklist struct {
	Checks []Check
	Ready  bool
}

// Readiness собирает проверки политики таймлайна и проверки наличия
// внешних сущностей в единый чеклист. Функция только читает входные
// значения; решение не запускать экспорт принимает вызывающая сторона.
func Readiness(d timeline.Duration, pr Presence) Checklist {
	checks := Timeline(d)

	audio := Check{ID: "audio", Label: "Аудио", Status: StatusPass, Message: "аудиодорожка прикреплена"}
	if !pr.AudioAttached {
		audio.Status = StatusWarning
		audio.Message = "аудио не прикреплено — видео будет без звука"
	}
	checks = append(checks, audio)

	if pr.EndingEnabled {
		ending := Check{ID: "ending", Label: "Финальная карточка", Status: StatusPass, Message: "карточка настроена"}
		if !pr.EndingConfigured {
			ending.Status = StatusWarning
			ending.Message = "карточка включена, но пустая — добавьте текст или ссылку"
		}
		checks = append(checks, ending)
	}

	return Checklist{Checks: checks, Ready: IsValid(checks)}
}
