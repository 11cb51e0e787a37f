// Package snapshot saves exported files through a host specific collaborator.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrCanceled is returned when the user dismissed the save dialog.
var ErrCanceled = errors.New("save canceled")

// Saver stores data under a suggested file name.
type Saver interface {
	Save(data []byte, name string) error
}

// Filename returns a suggested name like "prefix-20060102-150405.ext".
func Filename(prefix string, t time.Time, ext string) string {
	return fmt.Sprintf("%s-%s.%s", prefix, t.Format("20060102-150405"), ext)
}

// Export saves data and reports the outcome to logPrint.
// Cancellation and failure are not retried.
func Export(s Saver, data []byte, name string, logPrint func(msg interface{})) error {
	err := s.Save(data, name)
	if logPrint == nil {
		return err
	}
	switch {
	case err == nil:
		logPrint(name + " saved")
	case errors.Is(err, ErrCanceled):
		logPrint("saving " + name + " canceled")
	default:
		logPrint(fmt.Errorf("saving %s: %w", name, err))
	}
	return err
}

// DirSaver writes files into a directory.
type DirSaver struct {
	Dir string
}

func (s DirSaver) Save(data []byte, name string) error {
	if name == "" {
		return ErrCanceled
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, filepath.Base(name)), data, 0644)
}
