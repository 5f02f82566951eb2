package system

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось получить лимит файлов: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Не удалось установить лимит файлов: %v", err)
	}
}

var (
	textExtensions  = []string{".txt", ".md", ".pdf"}
	audioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".aac", ".flac"}
)

// FindLatestText возвращает самый свежий текстовый файл (txt/md/pdf)
// в папке-приёмнике.
func FindLatestText(dir string) (string, error) {
	path, err := findLatest(dir, textExtensions)
	if err != nil {
		return "", fmt.Errorf("в папке %s не найдено текстовых файлов", dir)
	}
	return path, nil
}

// FindLatestAudio возвращает самый свежий аудиофайл в папке-приёмнике.
func FindLatestAudio(dir string) (string, error) {
	path, err := findLatest(dir, audioExtensions)
	if err != nil {
		return "", fmt.Errorf("в папке %s не найдено аудио-файлов", dir)
	}
	return path, nil
}

func findLatest(dir string, extensions []string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExtension(f.Name(), extensions) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no matching files in %s", dir)
	}
	return latestFile, nil
}

func hasExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// GetAudioDuration спрашивает у ffprobe длительность дорожки в секундах.
func GetAudioDuration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, err
	}

	var duration float64
	_, err = fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &duration)
	if err != nil {
		return 0, err
	}

	return duration, nil
}

// GetBestH264Encoder выбирает самый быстрый доступный H.264 энкодер.
// Приоритет: VideoToolbox (macOS), NVENC (NVIDIA), затем libx264.
func GetBestH264Encoder() string {
	hardware := []string{"h264_videotoolbox", "h264_nvenc"}

	cmd := exec.Command("ffmpeg", "-encoders")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "libx264"
	}

	for _, enc := range hardware {
		if strings.Contains(string(out), enc) {
			return enc
		}
	}
	return "libx264"
}
