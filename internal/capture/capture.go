// Package capture writes rendered frames to PNG files.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vectorviewer/internal/logger"
)

// Presenter saves every presented frame as a numbered PNG.
type Presenter struct {
	outputDir string
	prefix    string
	frame     int
}

// NewPresenter creates a presenter writing to outputDir. The directory is
// created if needed.
func NewPresenter(outputDir, prefix string) (*Presenter, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output dir: %w", err)
		}
	}
	return &Presenter{
		outputDir: outputDir,
		prefix:    prefix,
	}, nil
}

// Present writes frame to <prefix>_<n>.png, n counting from 0.
func (p *Presenter) Present(frame *image.RGBA) error {
	path := p.FramePath(p.frame)
	if err := writePNG(path, frame); err != nil {
		return err
	}
	logger.Debug("frame captured", zap.String("path", path), zap.Int("frame", p.frame))
	p.frame++
	return nil
}

// Count returns the number of frames written.
func (p *Presenter) Count() int {
	return p.frame
}

// FramePath returns the file name used for frame n.
func (p *Presenter) FramePath(n int) string {
	return p.join(fmt.Sprintf("%s_%06d.png", p.prefix, n))
}

// Screenshot writes img to a timestamped file and returns its path.
func (p *Presenter) Screenshot(img image.Image) (string, error) {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	path := p.join(fmt.Sprintf("%s_%s.png", p.prefix, timestamp))
	if err := writePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

func (p *Presenter) join(name string) string {
	if p.outputDir == "" {
		return name
	}
	return filepath.Join(p.outputDir, name)
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return file.Close()
}
