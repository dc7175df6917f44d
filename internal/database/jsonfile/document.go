package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/osse101/WolfJourney_Go/internal/domain"
	"github.com/osse101/WolfJourney_Go/internal/utils"
)

// document is one JSON file of the form {"<key>": [...]}. Every
// read-modify-write holds mu, so concurrent writers in this process never
// lose each other's updates.
type document[T any] struct {
	mu   sync.Mutex
	path string
	key  string
}

func newDocument[T any](path, key string) *document[T] {
	return &document[T]{path: path, key: key}
}

// ensure writes an empty shell when the file does not exist yet.
func (d *document[T]) ensure() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := os.Stat(d.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: "+ErrMsgReadDocument+": %v", domain.ErrStorage, d.path, err)
	}
	if err := d.save(nil); err != nil {
		return err
	}
	slog.Default().Info(LogMsgDocumentCreated, "path", d.path)
	return nil
}

// read loads the items. A missing file is always empty. A corrupt file is an
// error when strict and empty otherwise.
func (d *document[T]) read(strict bool) ([]T, error) {
	doc, err := utils.ReadJSON[map[string][]T](d.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		if strict {
			return nil, fmt.Errorf("%w: "+ErrMsgReadDocument+": %v", domain.ErrStorage, d.key, err)
		}
		slog.Default().Warn(LogMsgDocumentCorrupt, "path", d.path, "error", err)
		return nil, nil
	}
	return doc[d.key], nil
}

// load is the strict read used by query paths.
func (d *document[T]) load() ([]T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.read(true)
}

// update applies fn to the current items and persists the result.
func (d *document[T]) update(fn func([]T) []T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	items, err := d.read(false)
	if err != nil {
		return err
	}
	return d.save(fn(items))
}

func (d *document[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	if err := utils.WriteJSONAtomic(d.path, map[string][]T{d.key: items}); err != nil {
		return fmt.Errorf("%w: "+ErrMsgWriteDocument+": %v", domain.ErrStorage, d.key, err)
	}
	slog.Default().Debug(LogMsgDocumentWritten, "path", d.path, "count", len(items))
	return nil
}
