package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/text2video/internal/config"
	"github.com/ivlev/text2video/internal/export"
	"github.com/ivlev/text2video/internal/preview"
	"github.com/ivlev/text2video/internal/project"
	"github.com/ivlev/text2video/internal/source"
	"github.com/ivlev/text2video/internal/system"
	"github.com/ivlev/text2video/internal/validate"
	"github.com/ivlev/text2video/internal/video"
)

var buildVersion = "dev"

func main() {
	// Увеличиваем лимиты системы (для macOS/Linux)
	system.InitResourceLimits()

	// Создаем нужные директории, если их нет
	dirs := []string{"input/text", "input/audio", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "", "Путь к тексту: .txt, .md или .pdf (по умолчанию: самый свежий файл в input/text/)")
	projectPtr := flag.String("project", "", "Путь к файлу проекта (YAML)")
	saveProjectPtr := flag.String("save-project", "", "Сохранить собранный проект в YAML и продолжить")
	outputPtr := flag.String("output", "", "Путь к видео (если пусто, генерируется автоматически в output/)")
	pacingPtr := flag.String("pacing", "", "Темп чтения: slow, normal, fast, veryfast")
	durationPtr := flag.Float64("duration", 0, "Явная длительность контента в секундах (режим custom)")
	endingPtr := flag.Bool("ending", false, "Добавить финальную карточку")
	endingDurPtr := flag.Float64("ending-duration", 5, "Длительность финальной карточки (сек)")
	endingTitlePtr := flag.String("ending-title", "", "Заголовок финальной карточки")
	endingSubtitlePtr := flag.String("ending-subtitle", "", "Подпись финальной карточки")
	endingURLPtr := flag.String("ending-url", "", "Ссылка для QR-кода на финальной карточке")
	audioPtr := flag.String("audio", "", "Путь к аудио (по умолчанию: самый свежий файл в input/audio/)")
	widthPtr := flag.Int("width", 1080, "Ширина")
	heightPtr := flag.Int("height", 1920, "Высота")
	fpsPtr := flag.Int("fps", 30, "FPS")
	workersPtr := flag.Int("workers", 0, "Потоки рендеринга (0 - авто)")
	presetPtr := flag.String("preset", "", "Пресет формата: 16:9, 9:16 (Shorts/TikTok), 4:5 (Instagram)")
	qualityPtr := flag.Int("quality", 0, "Качество видео (0 - авто, x264: CRF 1-51, VideoToolbox: битрейт = Q*100кбит/с)")
	checkPtr := flag.Bool("check", false, "Показать чеклист готовности и выйти")
	previewPtr := flag.Bool("preview", false, "Открыть интерактивный предпросмотр вместо экспорта")
	statsPtr := flag.Bool("stats", false, "Показать отчет о производительности")

	flag.Parse()

	width, height := *widthPtr, *heightPtr
	switch *presetPtr {
	case "16:9":
		width, height = 1280, 720
	case "9:16":
		width, height = 1080, 1920
	case "4:5":
		width, height = 1080, 1350
	}

	proj := project.New()
	if *projectPtr != "" {
		loaded, err := project.Read(*projectPtr)
		if err != nil {
			log.Fatalf("[-] Ошибка чтения проекта: %v", err)
		}
		proj = loaded
		fmt.Printf("[*] Загружен проект: %s\n", *projectPtr)
	}

	// Текст: явный файл, затем проект, затем папка-приёмник
	inputPath := *inputPtr
	if inputPath == "" && proj.Text == "" {
		latest, err := system.FindLatestText("input/text")
		if err != nil {
			log.Fatalf("[-] Ошибка: %v. Положите текст в input/text/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Выбран файл: %s\n", inputPath)
	}
	if inputPath != "" {
		src, err := source.Open(inputPath)
		if err != nil {
			log.Fatalf("[-] Ошибка инициализации источника: %v", err)
		}
		text, err := src.Text()
		src.Close()
		if err != nil {
			log.Fatalf("[-] Ошибка чтения текста: %v", err)
		}
		proj = proj.WithText(text)
	}

	// Темп: явная длительность включает режим custom
	if *durationPtr > 0 {
		custom := *durationPtr
		proj = proj.WithPacing(project.Pacing{Mode: "custom", CustomSeconds: &custom})
	} else if *pacingPtr != "" {
		proj = proj.WithPacing(project.Pacing{Mode: *pacingPtr})
	}

	if *endingPtr {
		proj = proj.WithEnding(project.Ending{
			Enabled:  true,
			Seconds:  *endingDurPtr,
			Title:    *endingTitlePtr,
			Subtitle: *endingSubtitlePtr,
			QRURL:    *endingURLPtr,
		})
	}

	// Аудио: явный путь или самый свежий файл из папки-приёмника
	audioPath := *audioPtr
	if audioPath == "" && !proj.Audio.Attached() {
		if latest, err := system.FindLatestAudio("input/audio"); err == nil {
			audioPath = latest
			fmt.Printf("[*] Выбрано аудио: %s\n", audioPath)
		}
	}
	if audioPath != "" {
		if _, err := system.GetAudioDuration(audioPath); err != nil {
			log.Fatalf("[-] Не удалось прочитать аудио %s: %v", audioPath, err)
		}
		proj = proj.WithAudio(project.Audio{Path: audioPath})
	}

	d, err := proj.Duration()
	if err != nil {
		log.Fatalf("[-] Ошибка настроек темпа: %v", err)
	}

	fmt.Println("--- [PROJECT: TEXT ROLLER] ---")
	fmt.Printf("[*] Слов: %d | Темп: %d слов/мин\n", d.WordCount, d.TargetWPM)
	fmt.Printf("[*] Контент: %.0fс | Карточка: %.0fс | Всего: %.0fс\n", d.Content, d.Ending, d.Total)
	fmt.Printf("[*] Разрешение: %dx%d @ %d FPS\n", width, height, *fpsPtr)
	fmt.Println("------------------------------")

	checklist := validate.Readiness(d, validate.Presence{
		AudioAttached:    proj.Audio.Attached(),
		EndingEnabled:    proj.Ending.Enabled,
		EndingConfigured: proj.Ending.Configured(),
	})
	printChecklist(checklist)

	if *saveProjectPtr != "" {
		if err := project.Write(proj, *saveProjectPtr); err != nil {
			log.Fatalf("[-] Ошибка сохранения проекта: %v", err)
		}
		fmt.Printf("[*] Проект сохранен: %s\n", *saveProjectPtr)
	}

	if *checkPtr {
		if !checklist.Ready {
			os.Exit(1)
		}
		return
	}

	if *previewPtr {
		if err := preview.Run(proj, width, height); err != nil {
			log.Fatalf("[-] Ошибка предпросмотра: %v", err)
		}
		return
	}

	// Предупреждения не блокируют, ошибки — блокируют
	if !checklist.Ready {
		log.Fatalf("[-] Экспорт заблокирован: исправьте ошибки в чеклисте")
	}

	encoderName := system.GetBestH264Encoder()
	if encoderName != "libx264" {
		fmt.Printf("[*] Обнаружено аппаратное ускорение: %s\n", encoderName)
	}

	quality := *qualityPtr
	if quality == 0 {
		switch encoderName {
		case "h264_videotoolbox":
			quality = 75 // Хорошее качество для VideoToolbox
		case "h264_nvenc":
			quality = 28 // Эквивалент CRF для NVENC
		default:
			quality = 23 // Стандартный CRF для x264
		}
	}

	finalOutput := *outputPtr
	if finalOutput == "" {
		nameSource := inputPath
		if nameSource == "" {
			nameSource = "project"
		}
		baseName := filepath.Base(nameSource)
		nameOnly := strings.TrimSuffix(baseName, filepath.Ext(baseName))
		cleanName := strings.ReplaceAll(nameOnly, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		finalOutput = filepath.Join("output", fmt.Sprintf("%s_%s.mp4", cleanName, timestamp))
	}

	cfg := &config.Config{
		InputPath:    inputPath,
		ProjectPath:  *projectPtr,
		OutputVideo:  finalOutput,
		Width:        width,
		Height:       height,
		FPS:          *fpsPtr,
		Workers:      *workersPtr,
		AudioPath:    proj.Audio.Path,
		Preset:       *presetPtr,
		VideoEncoder: encoderName,
		Quality:      quality,
		ShowStats:    *statsPtr,
		BuildVersion: buildVersion,
	}

	pool := system.NewFramePool(width, height)
	exporter := &export.Exporter{
		Project: proj,
		Config:  cfg,
		Encoder: &video.FFmpegEncoder{Pool: pool},
		Pool:    pool,
	}

	if err := exporter.Run(context.Background()); err != nil {
		log.Fatalf("[-] Ошибка экспорта: %v", err)
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutputVideo)
}

func printChecklist(cl validate.Checklist) {
	icons := map[validate.Status]string{
		validate.StatusPass:    "[+]",
		validate.StatusWarning: "[!]",
		validate.StatusError:   "[-]",
	}
	for _, c := range cl.Checks {
		fmt.Printf("%s %s: %s\n", icons[c.Status], c.Label, c.Message)
	}
	if cl.Ready {
		fmt.Println("[*] Проект готов к экспорту")
	} else {
		fmt.Println("[-] Проект не готов к экспорту")
	}
}
