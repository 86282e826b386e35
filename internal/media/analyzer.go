package media

import (
	"encoding/json"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Quality buckets match what the upload helper showed users before they
// committed to a slow upload.
const (
	QualityHigh    = "High"
	QualityMedium  = "Medium"
	QualityLow     = "Low"
	QualityUnknown = "Unknown"
)

const (
	maxComfortableVideoSize = 100 << 20 // bytes
	maxComfortableImageSize = 2 << 20
	highBitrateThreshold    = 8_000_000 // bits per second
)

// Report describes one media file ahead of upload.
type Report struct {
	Path       string  `json:"path"`
	Kind       string  `json:"kind"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Duration   float64 `json:"duration,omitempty"`
	Size       int64   `json:"size"`
	Format     string  `json:"format"`
	Quality    string  `json:"quality"`
	Suggestion string  `json:"suggestion,omitempty"`
}

// AnalyzeVideo probes the file with ffprobe and grades it. Requires ffmpeg
// on PATH.
func AnalyzeVideo(videoPath string) (*Report, error) {
	fileInfo, err := os.Stat(videoPath)
	if err != nil {
		return nil, fmt.Errorf("video file not found: %w", err)
	}

	jsonOutput, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return nil, fmt.Errorf("probe video: %w", err)
	}

	var result struct {
		Streams []struct {
			CodecType string `json:"codec_type"`
			Width     int    `json:"width"`
			Height    int    `json:"height"`
		} `json:"streams"`
		Format struct {
			Duration string `json:"duration"`
			Size     string `json:"size"`
			Format   string `json:"format_name"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(jsonOutput), &result); err != nil {
		return nil, fmt.Errorf("parse probe output: %w", err)
	}

	report := &Report{Path: videoPath, Kind: "video", Format: "unknown"}

	for _, stream := range result.Streams {
		if stream.CodecType == "video" {
			report.Width = stream.Width
			report.Height = stream.Height
			break
		}
	}

	report.Duration, _ = strconv.ParseFloat(result.Format.Duration, 64)

	report.Size, err = strconv.ParseInt(result.Format.Size, 10, 64)
	if err != nil {
		report.Size = fileInfo.Size()
	}

	if parts := strings.Split(result.Format.Format, ","); len(parts) > 0 && parts[0] != "" {
		report.Format = parts[0]
	}

	gradeVideo(report)
	return report, nil
}

func gradeVideo(report *Report) {
	switch {
	case report.Height >= 1080:
		report.Quality = QualityHigh
	case report.Height >= 720:
		report.Quality = QualityMedium
	case report.Height > 0:
		report.Quality = QualityLow
	default:
		report.Quality = QualityUnknown
	}

	switch {
	case report.Size > maxComfortableVideoSize:
		report.Suggestion = "Video file is very large. Consider compressing before upload."
	case report.Duration > 0 && float64(report.Size*8)/report.Duration > highBitrateThreshold:
		report.Suggestion = "Video bitrate is high. Consider compressing for faster loading."
	case report.Quality == QualityLow:
		report.Suggestion = "Video quality is low. Consider using higher quality if available."
	}
}

// AnalyzeImage grades an image by decoded dimensions and file size.
func AnalyzeImage(imagePath string) (*Report, error) {
	fileInfo, err := os.Stat(imagePath)
	if err != nil {
		return nil, fmt.Errorf("image file not found: %w", err)
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	report := &Report{
		Path:   imagePath,
		Kind:   "image",
		Width:  cfg.Width,
		Height: cfg.Height,
		Size:   fileInfo.Size(),
		Format: format,
	}

	switch {
	case cfg.Width >= 1920:
		report.Quality = QualityHigh
	case cfg.Width >= 1024:
		report.Quality = QualityMedium
	default:
		report.Quality = QualityLow
	}

	if report.Size > maxComfortableImageSize {
		report.Suggestion = "Image size is large. Consider compressing before upload."
	}
	return report, nil
}

// Thumbnail grabs a single frame at timeOffset (ffmpeg time syntax, e.g.
// "00:00:01") into thumbnailPath.
func Thumbnail(videoPath, thumbnailPath, timeOffset string) error {
	if err := os.MkdirAll(filepath.Dir(thumbnailPath), 0755); err != nil {
		return fmt.Errorf("create thumbnail dir: %w", err)
	}

	return ffmpeg.Input(videoPath, ffmpeg.KwArgs{
		"ss": timeOffset,
	}).
		Output(thumbnailPath, ffmpeg.KwArgs{
			"vframes": "1",
			"q:v":     "2",
		}).
		OverWriteOutput().
		Run()
}
