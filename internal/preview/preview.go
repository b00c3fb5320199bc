// Package preview serverer den genererte siden lokalt og bygger på nytt
// når konfigurasjonen, malen eller ressursene endrer seg. Et feilet
// gjenbygg beholder forrige vellykkede utkatalog.
package preview

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mgsolli/hjemmebyggern/internal/runner"
)

// debounceDelay samler en sky av filsystem-hendelser til ett gjenbygg.
const debounceDelay = 300 * time.Millisecond

// Run bygger siden, serverer utkatalogen på addr og gjenbygger ved
// endringer til ctx kanselleres. Det første bygget må lykkes.
func Run(ctx context.Context, opts runner.Options, deps runner.Deps, addr string) error {
	if err := runner.RunApp(ctx, opts, deps); err != nil {
		return err
	}

	// Utkatalogen gjenskapes ved hvert bygg og ligger gjerne i en
	// overvåket katalog; hendelser derfra er våre egne og skal ikke
	// utløse nye bygg.
	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    addr,
		Handler: http.FileServer(http.Dir(opts.OutputDir)),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Forhåndsvisning kjører", "addr", "http://"+addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			slog.Warn("Klarte ikke å lukke filovervåkeren", "error", cerr)
		}
	}()

	for _, dir := range watchDirs(opts) {
		if werr := watcher.Add(dir); werr != nil {
			slog.Warn("Klarte ikke å overvåke katalogen", "dir", dir, "error", werr)
		}
	}

	debounce := time.NewTimer(time.Hour)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)

		case err := <-errCh:
			return err

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if insideDir(ev.Name, outputDir) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				slog.Debug("Endring oppdaget", "fil", ev.Name)
				debounce.Reset(debounceDelay)
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Filovervåkeren meldte feil", "error", werr)

		case <-debounce.C:
			slog.Info("Bygger på nytt etter endring")
			if err := runner.RunApp(ctx, opts, deps); err != nil {
				slog.Error("Gjenbygg feilet, beholder forrige resultat", "error", err)
			}
		}
	}
}

// insideDir rapporterer om path ligger i dir eller er dir selv.
func insideDir(path, dir string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// watchDirs er katalogene som inneholder kildene til et bygg, uten
// duplikater.
func watchDirs(opts runner.Options) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, d := range []string{
		filepath.Dir(opts.ConfigPath),
		filepath.Dir(opts.TemplatePath),
		opts.AssetDir,
	} {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs
}
