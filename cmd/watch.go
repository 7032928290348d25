package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/harmondex/util"
	"github.com/spf13/cobra"
)

var (
	watchKey     string
	watchOutDir  string
	watchInitial bool
)

func init() {
	watchCmd.Flags().StringVarP(&watchKey, "key", "k", "", "key to spell in")
	watchCmd.Flags().StringVarP(&watchOutDir, "out", "o", "", "output directory (defaults to watch.output_dir, then stdout)")
	watchCmd.Flags().BoolVar(&watchInitial, "initial", true, "transcribe files already in the directory on start")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Re-transcribes MIDI files whenever they change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := resolveKey(watchKey, "")
		if err != nil {
			return err
		}
		cat, err := cfg.Spelling.LoadCatalog()
		if err != nil {
			return err
		}
		outDir := watchOutDir
		if outDir == "" {
			outDir = cfg.Watch.OutputDir
		}

		t := transcriber{key: k, catalog: cat, outDir: outDir, logger: logger}
		w, err := newWatcher(t, time.Duration(cfg.Watch.DebounceMs)*time.Millisecond, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer w.close()

		if watchInitial {
			paths, err := util.GatherAllMidiPaths(args[0], 0)
			if err != nil {
				return err
			}
			t.processAll(paths, cmd.OutOrStdout())
		}
		if err := w.add(args[0]); err != nil {
			return err
		}
		logger.WithField("directory", args[0]).Info("Watching for MIDI changes")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		w.run(ctx)
		logger.Info("Received shutdown signal")
		return nil
	},
}

type watcher struct {
	transcriber
	wait    time.Duration
	out     io.Writer
	watcher *fsnotify.Watcher

	mu         sync.Mutex
	debouncers map[string]func(func())
	closed     bool

	// held while transcribing; transcriptions share out
	procMu sync.Mutex
}

func newWatcher(t transcriber, wait time.Duration, out io.Writer) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &watcher{
		transcriber: t,
		wait:        wait,
		out:         out,
		watcher:     fw,
		debouncers:  make(map[string]func(func())),
	}, nil
}

// add watches dir and every directory below it.
func (w *watcher) add(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}

func (w *watcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Error("File watcher error")
		}
	}
}

func (w *watcher) handleFileEvent(event fsnotify.Event) {
	fileName := filepath.Base(event.Name)
	if strings.HasPrefix(fileName, ".") || strings.HasSuffix(fileName, ".tmp") {
		return
	}
	isMidi := util.IsMidiFile(event.Name)

	switch {
	case (event.Has(fsnotify.Create) || event.Has(fsnotify.Write)) && isMidi:
		// editors and copies fire several writes per save
		w.debounced(event.Name)(func() { w.transcribe(event.Name) })

	case event.Has(fsnotify.Remove) && isMidi:
		w.logger.WithField("file", event.Name).Info("MIDI file removed")

	case event.Has(fsnotify.Create):
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.add(event.Name); err != nil {
				w.logger.WithError(err).WithField("directory", event.Name).Error("Could not watch directory")
				return
			}
			w.logger.WithField("directory", event.Name).Info("Watching new directory")
		}
	}
}

func (w *watcher) debounced(path string) func(func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return func(func()) {}
	}
	d, ok := w.debouncers[path]
	if !ok {
		d = debounce.New(w.wait)
		w.debouncers[path] = d
	}
	return d
}

func (w *watcher) isClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// transcribe runs on debounce timer goroutines.
func (w *watcher) transcribe(path string) {
	w.procMu.Lock()
	defer w.procMu.Unlock()
	if w.isClosed() {
		return
	}
	if err := w.process(path, w.out); err != nil {
		w.logger.WithError(err).WithField("file", path).Warn("Could not transcribe midi file")
	}
}

// close cancels pending transcriptions and waits for a running one.
func (w *watcher) close() {
	w.mu.Lock()
	w.closed = true
	for _, d := range w.debouncers {
		d(func() {})
	}
	w.mu.Unlock()

	w.procMu.Lock()
	defer w.procMu.Unlock()
	w.watcher.Close()
}
