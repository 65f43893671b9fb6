// Package run_manager owns the node's temporary runtime directory and the
// files indexed inside it (run.lock and friends). Package-level state: there
// is exactly one runtime directory per process.
package run_manager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

var (
	created      bool
	runDir       string
	indexedPaths = make(map[string]string)
)

// Create creates the temp runtime directory.
func Create(uuid32 string) (string, error) {
	if created {
		return runDir, fmt.Errorf("runtime directory is already created")
	}
	path, err := os.MkdirTemp("", fmt.Sprintf("*-%s-%s", uuid32, "memnode-runtime"))
	if err != nil {
		return "", err
	}
	runDir = path
	created = true
	return path, nil
}

func Clean() error {
	if !created {
		return nil
	}
	created = false
	indexedPaths = make(map[string]string)
	return os.RemoveAll(runDir)
}

func Get(index string) (string, error) {
	if !created {
		return "", fmt.Errorf("runtime directory is not created")
	}
	value, ok := indexedPaths[index]
	if !ok {
		return "", fmt.Errorf("cannot detect file under index %s", index)
	}
	return value, nil
}

// Set recursively creates a file in runDir and indexes it.
func Set(index string) error {
	if !created {
		return fmt.Errorf("runtime directory is not created")
	}
	fullPath := filepath.Join(runDir, index)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	indexedPaths[index] = fullPath
	return nil
}

func RuntimeDir() string {
	return runDir
}

// Watch polls an indexed file's mtime and fires the callback once when it
// changes or disappears. Used to turn a touched run.lock into a shutdown.
func Watch(parentCtx context.Context, index string, callback func()) (context.CancelFunc, error) {
	path, err := Get(index)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	baseline := info.ModTime()

	ctx, cancel := context.WithCancel(parentCtx)
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				info, err := os.Stat(path)
				if err != nil || info.ModTime() != baseline {
					callback()
					return
				}
			}
		}
	}()
	return cancel, nil
}
