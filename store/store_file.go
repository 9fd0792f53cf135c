package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/homanp/ohh/hand"
)

// FileHandStore writes each hand as <game_number>.json under a data
// directory.
type FileHandStore struct {
	dataDir string
}

func NewFileHandStore(dataDir string) (*FileHandStore, error) {
	err := os.MkdirAll(dataDir, 0755)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to create hand data directory [%s]", dataDir)
	}
	return &FileHandStore{dataDir: dataDir}, nil
}

func (f *FileHandStore) Save(h *hand.HandHistory) error {
	return hand.SaveHandFile(h, f.fileName(h.GameNumber))
}

func (f *FileHandStore) Load(gameNumber string) (*hand.HandHistory, error) {
	fileName := f.fileName(gameNumber)
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		return nil, fmt.Errorf("Hand history for game [%s] is not found", gameNumber)
	}
	return hand.ReadHandFile(fileName)
}

func (f *FileHandStore) Remove(gameNumber string) error {
	err := os.Remove(f.fileName(gameNumber))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "Unable to remove hand history for game [%s]", gameNumber)
	}
	return nil
}

func (f *FileHandStore) fileName(gameNumber string) string {
	return filepath.Join(f.dataDir, fmt.Sprintf("%s.json", gameNumber))
}
