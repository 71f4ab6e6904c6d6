package orient

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

func copyFile(logger *slog.Logger, src, dest string) error {
	logger.Info("copying", "to", dest)

	if err := checkFile(src); err != nil {
		return err
	}

	inFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("could not open source file %q: %w", src, err)
	}
	defer inFile.Close()

	return writeFile(dest, inFile)
}

// writeFile creates dest, failing if it exists, and fills it from r. A
// partly written dest is removed on error.
func writeFile(dest string, r io.Reader) (err error) {
	// O_EXCL makes an existing destination an error instead of a truncation
	outFile, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("could not create destination file %q: %w", dest, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close destination file %q: %w", dest, closeErr)
		}
		if err != nil {
			os.Remove(dest)
		}
	}()

	if _, err = io.Copy(outFile, r); err != nil {
		return fmt.Errorf("could not copy into %q: %w", dest, err)
	}

	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush destination file %q: %w", dest, err)
	}
	return nil
}

func moveFile(logger *slog.Logger, src, dest string) error {
	logger.Info("moving", "to", dest)

	if err := checkFile(src); err != nil {
		return err
	}
	if _, err := os.Lstat(dest); err == nil {
		return fmt.Errorf("destination file already exists: %q", dest)
	}

	return os.Rename(src, dest)
}

func checkFile(src string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("cannot stat source file %q: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot copy non-regular file %q: %s", info.Name(), info.Mode().String())
	}
	return nil
}
