package assets

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/automoto/bounce/shared/leveldata"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// DebounceInterval is how long the watcher waits after the last change to a
// map before reloading, so one editor save triggers one reload.
const DebounceInterval = 100 * time.Millisecond

// LevelWatcher reloads a level pack whenever one of its .tmx files changes
// and delivers the new catalog on Levels. Packs that fail to load are logged
// and skipped; the previous catalog stays in use.
type LevelWatcher struct {
	watcher *fsnotify.Watcher
	load    LoadFunc
	levels  chan []leveldata.Level
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatchLevels starts watching dir. Call Close to stop.
func WatchLevels(dir string, load LoadFunc) (*LevelWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &LevelWatcher{
		watcher: w,
		load:    load,
		levels:  make(chan []leveldata.Level, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	log.WithField("dir", dir).Info("watching level pack")
	return watcher, nil
}

// Levels delivers reloaded catalogs. Only the newest unread catalog is kept.
func (w *LevelWatcher) Levels() <-chan []leveldata.Level {
	return w.levels
}

func (w *LevelWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *LevelWatcher) run() {
	defer close(w.done)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !isMapFile(event.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(DebounceInterval)
			} else {
				timer.Reset(DebounceInterval)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("level watcher error")
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *LevelWatcher) reload() {
	levels, err := w.load()
	if err != nil {
		log.WithError(err).Warn("level pack reload failed, keeping previous levels")
		return
	}
	// Replace any catalog the game has not picked up yet.
	select {
	case <-w.levels:
	default:
	}
	w.levels <- levels
}

func isMapFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tmx"
}
