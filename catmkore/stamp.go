package catmkore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Stamp records a successful composition. A stamp that outlives the process
// keeps a re-evaluated build description from composing again.
type Stamp struct {
	Origin string    `msgpack:"origin"`
	At     time.Time `msgpack:"at"`
}

// StampStore is the backing store of the one-shot compose flag. Load returns
// nil without error if no stamp is set.
type StampStore interface {
	Load() (*Stamp, error)
	Store(Stamp) error
}

type MemStamps struct {
	stamp *Stamp
}

func (ms *MemStamps) Load() (*Stamp, error) { return ms.stamp, nil }

func (ms *MemStamps) Store(s Stamp) error {
	ms.stamp = &s
	return nil
}

func (ms *MemStamps) Clear() { ms.stamp = nil }

// FileStamps keeps the stamp msgpack-encoded in the named file.
type FileStamps string

func (fs FileStamps) Load() (*Stamp, error) {
	f, err := os.Open(string(fs))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	var s Stamp
	if err := msgpack.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding compose stamp %s: %w", string(fs), err)
	}
	return &s, nil
}

func (fs FileStamps) Store(s Stamp) error {
	dir := filepath.Dir(string(fs))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "stamp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if err = msgpack.NewEncoder(f).Encode(&s); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), string(fs))
}

// Clear removes the stamp file. A missing file is not an error.
func (fs FileStamps) Clear() error {
	err := os.Remove(string(fs))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
