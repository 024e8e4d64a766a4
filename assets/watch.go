package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// LevelWatcher reports level files that change on disk. Events carries the
// file name relative to the watched directory.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	dir     string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewLevelWatcher watches dir for writes to .txt and .tmx files.
func NewLevelWatcher(dir string) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	lw := &LevelWatcher{
		watcher: w,
		dir:     dir,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go lw.run()
	return lw, nil
}

// Close stops the watcher. It is safe to call more than once.
func (lw *LevelWatcher) Close() error {
	var err error
	lw.once.Do(func() {
		close(lw.closeCh)
		err = lw.watcher.Close()
		<-lw.done
	})
	return err
}

// Poll returns the changed files seen since the last call without
// blocking, with duplicates removed.
func (lw *LevelWatcher) Poll() []string {
	var changed []string
	seen := make(map[string]bool)
	for {
		select {
		case name, ok := <-lw.Events:
			if !ok {
				return changed
			}
			if !seen[name] {
				seen[name] = true
				changed = append(changed, name)
			}
		default:
			return changed
		}
	}
}

func (lw *LevelWatcher) run() {
	defer close(lw.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now

			rel, err := filepath.Rel(lw.dir, event.Name)
			if err != nil {
				rel = filepath.Base(event.Name)
			}
			select {
			case lw.Events <- filepath.ToSlash(rel):
			default:
			}
		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			select {
			case lw.Errors <- err:
			default:
			}
		case <-lw.closeCh:
			return
		}
	}
}

// IsLevelFile reports whether path has a level file extension.
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ".tmx"
}
