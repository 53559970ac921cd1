package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/openvams/vams-infra-go/internal/deployconfig"
)

// newWatchCmd creates the "watch" subcommand for recomposing policy on
// config changes.
func newWatchCmd() *cobra.Command {
	var (
		configPath   string
		overridePath string
		debounce     time.Duration
		outputFile   string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recompose the CSP header on config changes",
		Long: `Watch monitors the deployment config and CSP override file and
recomposes the Content-Security-Policy header whenever either changes.

The watch command:
- Monitors the config file and the configured override file
- Recomposes the header on each change
- Debounces rapid changes to avoid excessive recomposition

Examples:
    vams-infra watch --config deploy.yaml
    vams-infra watch --config deploy.yaml --debounce 1s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(watchOptions{
				configPath:   configPath,
				overridePath: overridePath,
				debounce:     debounce,
				outputFile:   outputFile,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Deployment configuration file (required)")
	cmd.Flags().StringVar(&overridePath, "override", "", "CSP override file (default: the config's cspOverride path)")
	cmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Debounce duration for rapid changes")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the composed result (default: stdout)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

type watchOptions struct {
	configPath   string
	overridePath string
	debounce     time.Duration
	outputFile   string
}

// runWatch monitors the config and override files and recomposes on changes.
func runWatch(opts watchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the parent directories: editors replace files on save, and
	// watching the path directly loses the watch after the first rename.
	watched, err := watchTargets(opts)
	if err != nil {
		return err
	}
	for dir := range watchDirs(watched) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	for _, path := range watched {
		fmt.Printf("Watching: %s\n", path)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("Running initial composition...")
	recompose(opts)

	var debounceTimer *time.Timer
	recomposeChan := make(chan struct{}, 1)

	fmt.Println("\nWatching for changes... (Ctrl+C to stop)")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !watchedPath(watched, event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			// Debounce: reset timer on each change
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(opts.debounce, func() {
				select {
				case recomposeChan <- struct{}{}:
				default:
				}
			})

		case <-recomposeChan:
			fmt.Printf("\n[%s] Change detected, recomposing...\n", time.Now().Format("15:04:05"))
			recompose(opts)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)

		case <-sigChan:
			fmt.Println("\nStopping watch...")
			return nil
		}
	}
}

// watchTargets returns the absolute paths to monitor: the config file plus
// the active override file, if any.
func watchTargets(opts watchOptions) ([]string, error) {
	paths := []string{opts.configPath}

	overridePath := opts.overridePath
	if overridePath == "" {
		if cfg, err := deployconfig.Load(opts.configPath); err == nil {
			overridePath = cfg.CSPOverride
		}
	}
	if overridePath != "" {
		paths = append(paths, overridePath)
	}

	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		abs = append(abs, a)
	}
	return abs, nil
}

// watchDirs collects the unique parent directories of the watch targets.
func watchDirs(paths []string) map[string]bool {
	dirs := make(map[string]bool, len(paths))
	for _, p := range paths {
		dirs[filepath.Dir(p)] = true
	}
	return dirs
}

// watchedPath reports whether an event path is one of the watch targets.
func watchedPath(watched []string, name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	for _, p := range watched {
		if abs == p {
			return true
		}
	}
	return false
}

// recompose reloads the config and re-emits the CSP result. Failures are
// reported but never stop the watch.
func recompose(opts watchOptions) {
	cfg, err := deployconfig.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		return
	}

	result, err := composeCsp(cfg, opts.overridePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Composition error: %v\n", err)
		return
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if opts.outputFile != "" {
		if err := os.WriteFile(opts.outputFile, []byte(result.Header+"\n"), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Write error: %v\n", err)
			return
		}
		fmt.Printf("Wrote %s\n", opts.outputFile)
		return
	}

	fmt.Println(result.Header)
}
