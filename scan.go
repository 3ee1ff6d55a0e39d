package gen3peek

import (
	"context"
	"errors"
	"fmt"
	"hash/crc32"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gen3peek/profile"
)

// Game Boy Advance cartridges top out at 32 MB.
const maxROMSize = 32 << 20

// Scanner walks a directory tree for cartridge images and records
// them in a catalog database.
type Scanner struct {
	db     *DB
	logger *log.Logger
}

// NewScanner returns a Scanner recording into db.
func NewScanner(db *DB, logger *log.Logger) *Scanner {
	return &Scanner{
		db:     db,
		logger: logger,
	}
}

func (s *Scanner) findROMs(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if info.Size() > maxROMSize {
				return nil
			}

			switch filepath.Ext(file) {
			case ".gba", ".agb":
			default:
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (s *Scanner) romWorker(ctx context.Context, in <-chan string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			info, err := s.scanROM(file)
			if err != nil {
				s.logger.Printf("Skipping \"%s\": %v\n", file, err)
				continue
			}

			if !info.Matched {
				s.logger.Printf("No profile for \"%s\", code \"%s\", assuming \"%s\"\n", file, info.Code, info.Profile)
			}

			if err := s.db.Add(*info); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func (s *Scanner) scanROM(file string) (*ROMInfo, error) {
	rom, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	code := profile.GameCode(rom)
	if code == "" {
		return nil, errors.New("image too small to hold a header")
	}

	p, matched := profile.Detect(rom)

	return &ROMInfo{
		Path:     file,
		CRC:      fmt.Sprintf("%08X", crc32.ChecksumIEEE(rom)),
		Code:     code,
		Revision: profile.Revision(rom),
		Profile:  p.Name,
		Matched:  matched,
	}, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks path recording every cartridge image it finds.
func (s *Scanner) Scan(path string) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := s.findROMs(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < 4; i++ {
		errc, err := s.romWorker(ctx, files)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
