// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package corrector

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/spellfix/base/fsx"
	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long [Corrector.Watch] waits after the last change
// to the dictionary files before reloading, so that an editor or copy
// writing several files triggers a single reload.
var WatchDelay = 250 * time.Millisecond

// Watch reloads the dictionary whenever its .aff or .dic file or the
// personal word list changes on disk, until ctx is done. Reload errors
// are logged and watching continues, so a later fix of the files is
// picked up. It returns an error only if watching cannot start.
func (c *Corrector) Watch(ctx context.Context) error {
	dir, err := fsx.Expand(c.cfg.DictionaryPath)
	if err != nil {
		return err
	}
	dir, err = filepath.Abs(dir)
	if err != nil {
		return err
	}
	files := map[string]bool{
		filepath.Join(dir, c.cfg.DictionaryName+".aff"): true,
		filepath.Join(dir, c.cfg.DictionaryName+".dic"): true,
	}
	dirs := []string{dir}
	if c.cfg.PersonalDict != "" {
		fn, err := fsx.Expand(c.cfg.PersonalDict)
		if err != nil {
			return err
		}
		fn, err = filepath.Abs(fn)
		if err != nil {
			return err
		}
		files[fn] = true
		if pd := filepath.Dir(fn); pd != dir {
			dirs = append(dirs, pd)
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			return err
		}
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !files[absPath(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("dictionary file changed", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(WatchDelay)
			} else {
				timer.Reset(WatchDelay)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			if err := c.Reload(); err != nil {
				slog.Error("reloading dictionary", "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watching dictionary", "err", err)
		}
	}
}

func absPath(name string) string {
	if abs, err := filepath.Abs(name); err == nil {
		return abs
	}
	return filepath.Clean(name)
}
