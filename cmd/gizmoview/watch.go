// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher reports changes to one file on its Changed channel.
// It watches the containing directory so that editors that save by
// renaming a new file into place are also seen.
type fileWatcher struct {
	// Changed receives the file name once a burst of changes has
	// settled for the watcher delay.
	Changed chan string

	// Errors receives watcher errors.
	Errors chan error

	filename string
	delay    time.Duration
	watcher  *fsnotify.Watcher
	closeCh  chan struct{}
	once     sync.Once
}

// newFileWatcher starts watching the given file. A change is reported
// after no further change has been seen for delay.
func newFileWatcher(filename string, delay time.Duration) (*fileWatcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	fw := &fileWatcher{
		Changed:  make(chan string, 4),
		Errors:   make(chan error, 1),
		filename: abs,
		delay:    delay,
		watcher:  w,
		closeCh:  make(chan struct{}),
	}
	go fw.run()
	return fw, nil
}

// Close stops watching.
func (fw *fileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.closeCh)
		err = fw.watcher.Close()
	})
	return err
}

func (fw *fileWatcher) run() {
	var timer *time.Timer
	var settled <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != fw.filename {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(fw.delay)
			} else {
				timer.Reset(fw.delay)
			}
			settled = timer.C
		case <-settled:
			settled = nil
			select {
			case fw.Changed <- fw.filename:
			default:
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case fw.Errors <- err:
			default:
			}
		case <-fw.closeCh:
			return
		}
	}
}
