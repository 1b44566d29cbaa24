package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/ezouu/reddit-price-checker/internal/domain"
)

// WriterService implements the Monitor Pattern for thread safety
type WriterService struct {
	FilePath string
}

func (w *WriterService) Start(wg *sync.WaitGroup, input <-chan domain.Listing) {
	defer wg.Done()

	os.MkdirAll(filepath.Dir(w.FilePath), 0755)

	f, err := os.OpenFile(w.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)

	for listing := range input {
		// Write as NDJSON
		enc.Encode(listing)
	}
}
