package fileop

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

var (
	ErrInputUnreadable  = errors.New("input unreadable")
	ErrOutputUnwritable = errors.New("output unwritable")
)

// DecodeImage opens and decodes the image at path, returning it with the name
// of the format it was decoded from.
func DecodeImage(logger *slog.Logger, path string) (image.Image, string, error) {
	if err := checkSource(path); err != nil {
		return nil, "", err
	}

	inFile, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: could not open image %q: %w", ErrInputUnreadable, path, err)
	}
	defer closeFile(logger, inFile, "image")

	img, format, err := image.Decode(inFile)
	if err != nil {
		return nil, "", fmt.Errorf("%w: could not decode image %q: %w", ErrInputUnreadable, path, err)
	}

	logger.Debug("decoded image", "file", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, format, nil
}

// ReadText reads the whole UTF-8 text file at path.
func ReadText(path string) (string, error) {
	if err := checkSource(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: could not read %q: %w", ErrInputUnreadable, path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %q is not valid UTF-8 text", ErrInputUnreadable, path)
	}
	return string(data), nil
}

// WriteTargets writes data to every target in order, stopping at the first
// failure. Targets written before the failure keep their content.
func WriteTargets(logger *slog.Logger, targets []string, data []byte) error {
	for _, target := range targets {
		if err := WriteFile(logger, target, data); err != nil {
			return err
		}
		logger.Info("wrote output", "file", target, "bytes", len(data))
	}
	return nil
}

// WriteFile replaces the file at dest with data. The data goes to a temporary
// file next to dest first and is renamed into place only once it is complete
// and synced, so a failed write never leaves partial output at dest.
func WriteFile(logger *slog.Logger, dest string, data []byte) error {
	destDir, destName := filepath.Split(dest)
	if destDir == "" {
		destDir = "."
	}

	outFile, err := os.CreateTemp(destDir, "."+destName+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: could not create temporary file for %q: %w", ErrOutputUnwritable, dest, err)
	}
	tmpName := outFile.Name()

	renamed := false
	defer func() {
		if renamed {
			return
		}
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			logger.Error("could not remove temporary file", "name", tmpName, "error", rmErr)
		}
	}()

	if _, err = outFile.Write(data); err != nil {
		outFile.Close()
		return fmt.Errorf("%w: could not write %q: %w", ErrOutputUnwritable, dest, err)
	}
	if err = outFile.Sync(); err != nil {
		outFile.Close()
		return fmt.Errorf("%w: could not flush %q: %w", ErrOutputUnwritable, dest, err)
	}
	if err = outFile.Close(); err != nil {
		return fmt.Errorf("%w: could not close %q: %w", ErrOutputUnwritable, dest, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: could not set permissions on %q: %w", ErrOutputUnwritable, dest, err)
	}
	if err = os.Rename(tmpName, dest); err != nil {
		return fmt.Errorf("%w: could not rename into %q: %w", ErrOutputUnwritable, dest, err)
	}

	renamed = true
	return nil
}

func checkSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: cannot stat %q: %w", ErrInputUnreadable, path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: cannot read non-regular file %q: %s", ErrInputUnreadable, path, info.Mode().String())
	}
	return nil
}

func closeFile(logger *slog.Logger, f *os.File, kind string) {
	if err := f.Close(); err != nil {
		logger.Error("could not close "+kind+" file", "name", f.Name(), "error", err)
	}
}
