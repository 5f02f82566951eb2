package video

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os/exec"

	"github.com/ivlev/text2video/internal/config"
	"github.com/ivlev/text2video/internal/system"
)

// Encoder принимает готовые кадры по порядку и собирает из них видеофайл.
type Encoder interface {
	EncodeStream(ctx context.Context, frames <-chan *image.RGBA, params config.EncodeParams) error
}

// FFmpegEncoder пишет кадры как rawvideo в stdin одного процесса ffmpeg —
// без промежуточных файлов на диске. Аудио подмешивается тем же процессом.
type FFmpegEncoder struct {
	// Pool, если задан, получает кадровые буферы обратно после записи.
	Pool *system.FramePool
}

func (e *FFmpegEncoder) EncodeStream(ctx context.Context, frames <-chan *image.RGBA, params config.EncodeParams) error {
	args := e.buildFFmpegArgs(params)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start error: %w", err)
	}

	writeErr := func() error {
		defer stdin.Close()
		for frame := range frames {
			_, err := stdin.Write(frame.Pix)
			if e.Pool != nil {
				e.Pool.Put(frame)
			}
			if err != nil {
				return fmt.Errorf("write raw error: %w", err)
			}
		}
		return nil
	}()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w\nLog: %s", err, out.String())
	}
	return writeErr
}

func (e *FFmpegEncoder) buildFFmpegArgs(params config.EncodeParams) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", params.Width, params.Height),
		"-framerate", fmt.Sprintf("%d", params.FPS),
		"-i", "-",
	}

	if params.AudioPath != "" {
		args = append(args, "-i", params.AudioPath)
	}

	args = append(args,
		"-map", "0:v",
		"-r", fmt.Sprintf("%d", params.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", params.VideoEncoder,
	)

	if params.AudioPath != "" {
		// Дорожка обрезается по видеоряду: длину задаёт модель, не аудио.
		args = append(args, "-map", "1:a", "-c:a", "aac", "-shortest")
	}

	// Качество в зависимости от энкодера
	switch params.VideoEncoder {
	case "h264_videotoolbox":
		bitrate := params.Quality * 100 // кбит/с. 75 -> 7.5Мбит/с
		args = append(args, "-b:v", fmt.Sprintf("%dk", bitrate))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", params.Quality))
	default: // libx264
		args = append(args, "-crf", fmt.Sprintf("%d", params.Quality), "-preset", "medium")
	}

	args = append(args, params.OutputPath)
	return args
}
