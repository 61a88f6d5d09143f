package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/tube-digest/internal/logger"
	"github.com/nguyentantai21042004/tube-digest/pkg/executor"
)

// FallbackOptions configures the audio transcription fallback used when a
// video has no caption track.
type FallbackOptions struct {
	YtDlpPath   string // yt-dlp binary
	WhisperPath string // whisper.cpp binary
	ModelPath   string // whisper model file
	Language    string
	Threads     int
	TempDir     string
}

type implFallback struct {
	opts     FallbackOptions
	executor executor.Executor
	logger   logger.Logger
}

// NewFallback creates a Fetcher that downloads a video's audio with yt-dlp
// and transcribes it locally with whisper.cpp. Considerably slower than the
// caption track path; intended only as a last resort for caption-less
// videos.
func NewFallback(opts FallbackOptions, exec executor.Executor, log logger.Logger) Fetcher {
	if opts.Threads <= 0 {
		opts.Threads = 4
	}
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}
	return &implFallback{opts: opts, executor: exec, logger: log}
}

func (f *implFallback) Fetch(ctx context.Context, videoID string) (Transcript, error) {
	workDir, err := os.MkdirTemp(f.opts.TempDir, "fallback-*")
	if err != nil {
		return Transcript{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	audioPath, err := f.downloadAudio(ctx, workDir, videoID)
	if err != nil {
		return Transcript{}, fmt.Errorf("download audio: %w", err)
	}

	srtPath, err := f.transcribe(ctx, audioPath)
	if err != nil {
		return Transcript{}, fmt.Errorf("transcribe: %w", err)
	}

	data, err := os.ReadFile(srtPath)
	if err != nil {
		return Transcript{}, fmt.Errorf("read transcript: %w", err)
	}

	fragments, err := parseSRT(string(data))
	if err != nil {
		return Transcript{}, fmt.Errorf("parse transcript: %w", err)
	}

	return Transcript{VideoID: videoID, Source: "Whisper Transcription", Fragments: fragments}, nil
}

// downloadAudio extracts the audio track as 16kHz mono WAV, the format
// whisper.cpp expects.
func (f *implFallback) downloadAudio(ctx context.Context, workDir, videoID string) (string, error) {
	audioPath := filepath.Join(workDir, "audio.wav")

	f.logger.Info(ctx, "Downloading audio for %s", videoID)

	args := []string{
		"-x",
		"--audio-format", "wav",
		"--postprocessor-args", "-ar 16000 -ac 1",
		"-o", audioPath,
		"https://www.youtube.com/watch?v=" + videoID,
	}

	if _, err := f.executor.ExecuteInDir(ctx, workDir, f.opts.YtDlpPath, args...); err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}

	return audioPath, nil
}

func (f *implFallback) transcribe(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	f.logger.Info(ctx, "Transcribing audio with %d threads: %s", f.opts.Threads, audioPath)

	args := []string{
		"-m", f.opts.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", f.opts.Language,
		"-t", strconv.Itoa(f.opts.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := f.executor.Execute(ctx, f.opts.WhisperPath, args...); err != nil {
		return "", fmt.Errorf("whisper: %w", err)
	}

	return outputPrefix + ".srt", nil
}

// parseSRT converts SRT cue blocks into fragments, keeping only the start
// time of each cue.
func parseSRT(content string) ([]Fragment, error) {
	var fragments []Fragment

	blocks := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue
		}

		// lines[0] is the sequence number, lines[1] the timing line.
		timing := strings.SplitN(lines[1], "-->", 2)
		if len(timing) != 2 {
			continue
		}

		start, err := parseSRTTime(strings.TrimSpace(timing[0]))
		if err != nil {
			return nil, err
		}

		text := strings.TrimSpace(strings.Join(lines[2:], " "))
		if text == "" {
			continue
		}

		fragments = append(fragments, Fragment{StartSeconds: start, Text: text})
	}

	return fragments, nil
}

// parseSRTTime decodes "HH:MM:SS,mmm" to whole seconds.
func parseSRTTime(s string) (int, error) {
	s, _, _ = strings.Cut(s, ",")
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("malformed SRT time %q", s)
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("malformed SRT time %q: %w", s, err)
		}
		total = total*60 + n
	}
	return total, nil
}
