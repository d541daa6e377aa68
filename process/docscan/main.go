package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"travelbe/models"
	"travelbe/pkg/passport"
)

// docscan walks a drop directory of scanned passport/ID images, runs the
// extraction pipeline on each and attaches the result to the matching
// passenger record. Matching uses the passenger-<id>-* filename convention
// first and falls back to the extracted document number.

var passengerFileRE = regexp.MustCompile(`^passenger-(\d+)\b`)

var db *gorm.DB

// global flags (parsed in main)
var (
	verbose bool
	minConf int
)

var extMime = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// preloadState caches which filenames already have Upload rows so reruns
// over the same directory stay idempotent without per-file queries.
type preloadState struct {
	uploadsByFile map[string]*models.Upload
	mu            sync.RWMutex
}

func newPreloadState() *preloadState {
	return &preloadState{uploadsByFile: make(map[string]*models.Upload, 1024)}
}

func (ps *preloadState) getUpload(name string) (*models.Upload, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	u, ok := ps.uploadsByFile[name]
	return u, ok
}

func (ps *preloadState) putUpload(u *models.Upload) {
	ps.mu.Lock()
	ps.uploadsByFile[u.FileName] = u
	ps.mu.Unlock()
}

func mustInitDBFromEnv() *gorm.DB {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatalf("DB_DSN must be set in environment to run this tool")
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return gdb
}

func main() {
	dirFlag := flag.String("dir", "uploads/inbox", "directory to scan for passport images")
	dryRun := flag.Bool("dry-run", false, "Run extraction and print results without touching the DB")
	watch := flag.Bool("watch", false, "Watch directory for new files")
	workers := flag.Int("workers", 0, "Worker pool size (default NumCPU)")
	flag.BoolVar(&verbose, "verbose", false, "Verbose per-file logging")
	flag.IntVar(&minConf, "min-conf", 33, "Minimum extraction confidence (0-100) to update a passenger")
	flag.Parse()

	if *dryRun {
		log.Printf("Dry-run: scanning %s (no DB interaction)", *dirFlag)
		files := listImageFiles(*dirFlag)
		log.Printf("Found %d candidate files", len(files))
		for _, f := range files {
			res := passport.ExtractFromImage(filepath.Join(*dirFlag, f))
			if !res.Success {
				log.Printf("EXTRACT fail %s: %v", f, deref(res.Error))
				continue
			}
			log.Printf("EXTRACT %s conf=%d method=%s doc=%s name=%s %s", f, res.Confidence, res.Method,
				res.Data.DocumentNumber, res.Data.Name, res.Data.Surname)
		}
		return
	}

	db = mustInitDBFromEnv()
	ps := preloadAll()
	log.Printf("Preloaded: uploads=%d", len(ps.uploadsByFile))

	files := listImageFiles(*dirFlag)
	log.Printf("Scanning %d files (workers=%d)", len(files), effectiveWorkers(*workers))
	runWorkerPool(*dirFlag, ps, files, effectiveWorkers(*workers))

	if *watch {
		if err := watchDirectory(*dirFlag, ps, effectiveWorkers(*workers)); err != nil {
			log.Fatalf("watch failed: %v", err)
		}
	}
}

func effectiveWorkers(w int) int {
	if w <= 0 {
		return runtime.NumCPU()
	}
	return w
}

func logV(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// preloadAll fetches existing uploads to minimize per-file queries.
func preloadAll() *preloadState {
	ps := newPreloadState()
	var ups []models.Upload
	if err := db.Find(&ups).Error; err == nil {
		for i := range ups {
			u := ups[i]
			ps.uploadsByFile[u.FileName] = &u
		}
	}
	return ps
}

func listImageFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !isSupportedExt(e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

func isSupportedExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return true
	}
	return false
}

func mimeFromExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if m, ok := extMime[ext]; ok {
		return m
	}
	return ""
}

func watchDirectory(dir string, ps *preloadState, workers int) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	log.Printf("Watching %s (debounced) ...", dir)

	fileCh := make(chan string, 256)
	go func() {
		// simple debounce map of pending files
		pending := map[string]time.Time{}
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					close(fileCh)
					return
				}
				if ev.Op&fsnotify.Create == fsnotify.Create {
					name := filepath.Base(ev.Name)
					if !isSupportedExt(name) {
						continue
					}
					pending[name] = time.Now()
				}
			case <-ticker.C:
				now := time.Now()
				for name, t := range pending {
					if now.Sub(t) > 300*time.Millisecond { // stable
						fileCh <- name
						delete(pending, name)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					close(fileCh)
					return
				}
				log.Printf("watch error: %v", err)
			}
		}
	}()

	go runWorkerPool(dir, ps, nil, workers, fileCh)
	// block forever (Ctrl+C to exit)
	select {}
}

// runWorkerPool fans filenames out to a fixed set of workers.
func runWorkerPool(dir string, ps *preloadState, initial []string, workers int, extraCh ...<-chan string) {
	fileCh := make(chan string, 1024)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range fileCh {
				processSingleFile(dir, name, ps)
			}
		}()
	}
	go func() {
		for _, f := range initial {
			fileCh <- f
		}
		for _, ch := range extraCh {
			go func(c <-chan string) {
				for n := range c {
					fileCh <- n
				}
			}(ch)
		}
		if len(extraCh) == 0 {
			close(fileCh)
		}
	}()
	if len(extraCh) == 0 {
		wg.Wait()
	}
}

// processSingleFile runs extraction for one image and records the outcome.
// Idempotent: a file that already has an Upload row is skipped.
func processSingleFile(dir, name string, ps *preloadState) {
	if _, ok := ps.getUpload(name); ok {
		logV("SKIP upload exists %s", name)
		return
	}
	filePath := filepath.Join(dir, name)
	storePath := filepath.ToSlash(filepath.Join("inbox", name))

	res := passport.ExtractFromImage(filePath)

	p := matchPassenger(name, res)
	if p == nil {
		logV("NO MATCH %s (doc=%s)", name, extractedDocNumber(res))
		return
	}

	up := models.Upload{
		PassengerID: p.ID,
		FileName:    name,
		StorePath:   storePath,
		ContentType: mimeFromExt(name),
		RawText:     res.RawText,
		Confidence:  res.Confidence,
		Method:      res.Method,
	}
	if !res.Success {
		up.Failed = true
		up.FailedReason = deref(res.Error)
	} else if strings.TrimSpace(res.RawText) == "" {
		up.Failed = true
		up.FailedReason = passport.ErrNoText.Error()
	}
	if err := db.Create(&up).Error; err != nil {
		if isUniqueConstraintError(err) { // race: another worker created it
			logV("SKIP upload race %s", name)
			return
		}
		log.Printf("ERROR create upload %s: %v", name, err)
		return
	}
	ps.putUpload(&up)
	log.Printf("NEW upload id=%d file=%s passenger=%d conf=%d", up.ID, name, p.ID, res.Confidence)

	if res.Success && res.Data != nil && res.Confidence >= minConf && res.Confidence > p.ExtractConfidence {
		p.GivenName = res.Data.Name
		p.Surname = res.Data.Surname
		p.DocumentNumber = res.Data.DocumentNumber
		p.Nationality = res.Data.Nationality
		p.DateOfBirth = res.Data.DateOfBirth
		p.ExpirationDate = res.Data.ExpirationDate
		p.ExtractConfidence = res.Confidence
		p.PassportStatus = models.PassportExtracted
		if err := db.Save(p).Error; err != nil {
			log.Printf("ERROR update passenger %d: %v", p.ID, err)
			return
		}
		log.Printf("PASSENGER updated id=%d doc=%s", p.ID, p.DocumentNumber)
	} else {
		logV("SKIP passenger update %s conf=%d (min=%d, current=%d)", name, res.Confidence, minConf, p.ExtractConfidence)
	}

	if err := moveToProcessed(filePath, name); err != nil {
		log.Printf("WARN failed to move processed file %s: %v", name, err)
	} else {
		logV("moved processed %s", name)
	}
}

func extractedDocNumber(res passport.ExtractionResult) string {
	if res.Data == nil {
		return ""
	}
	return res.Data.DocumentNumber
}

// matchPassenger resolves which passenger a scanned file belongs to. The
// passenger-<id>-* naming convention wins; otherwise the extracted document
// number is looked up.
func matchPassenger(name string, res passport.ExtractionResult) *models.Passenger {
	if m := passengerFileRE.FindStringSubmatch(name); m != nil {
		id, err := strconv.ParseUint(m[1], 10, 32)
		if err == nil {
			var p models.Passenger
			if err := db.First(&p, uint(id)).Error; err == nil {
				return &p
			}
			log.Printf("WARN filename references unknown passenger %d (%s)", id, name)
		}
	}
	doc := extractedDocNumber(res)
	if doc == "" {
		return nil
	}
	var p models.Passenger
	if err := db.Where("document_number = ?", doc).First(&p).Error; err != nil {
		return nil
	}
	return &p
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}

// moveToProcessed moves a handled file into <base>/processed/<name> so
// rescans never pick it up twice. Attempts an atomic rename and falls back
// to copy+remove across filesystems.
func moveToProcessed(srcFullPath, name string) error {
	processedDir := filepath.Join(filepath.Dir(filepath.Dir(srcFullPath)), "processed")
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return err
	}
	dst := filepath.Join(processedDir, name)
	if err := os.Rename(srcFullPath, dst); err == nil {
		return nil
	}
	return copyRemove(srcFullPath, dst)
}

func copyRemove(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	_ = out.Close()
	return os.Remove(src)
}
