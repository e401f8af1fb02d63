// Copyright (c) 2025, The NetCube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// fileWatcher notices changes to one file. The directory is watched so
// that editors replacing the file are seen too.
type fileWatcher struct {
	filename string
	watcher  *fsnotify.Watcher
	done     chan bool
	changed  atomic.Bool
}

func watchFile(filename string) (*fileWatcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	dir, err := filepath.EvalSymlinks(filepath.Dir(abs))
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	fw := &fileWatcher{filename: filepath.Join(dir, filepath.Base(abs)), watcher: w, done: make(chan bool)}
	go fw.run()
	return fw, nil
}

func (fw *fileWatcher) run() {
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.filename {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fw.changed.Store(true)
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			errors.Log(err)
		}
	}
}

// Changed reports whether the file changed since the last call.
func (fw *fileWatcher) Changed() bool {
	return fw.changed.Swap(false)
}

func (fw *fileWatcher) Close() error {
	close(fw.done)
	return fw.watcher.Close()
}
