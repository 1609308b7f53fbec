// Package store persists positions keyed by their Zobrist hash.
package store

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
)

// Record is the stored form of a position.
type Record struct {
	FEN      string    `json:"fen"`
	Zobrist  uint64    `json:"zobrist"`
	Seen     int       `json:"seen"`
	LastSeen time.Time `json:"last_seen"`
}

// PositionStore wraps BadgerDB for persistent position storage.
type PositionStore struct {
	db *badger.DB
}

// Open opens (or creates) a position store in dir.
func Open(dir string) (*PositionStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &PositionStore{db: db}, nil
}

// Close closes the database.
func (s *PositionStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// keyBytes encodes a Zobrist key as a big-endian byte key.
func keyBytes(key uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], key)
	return buf[:]
}

// Record stores the position, incrementing its seen count if it was
// stored before. It returns the position's Zobrist key.
func (s *PositionStore) Record(b *chess.Board) (uint64, error) {
	key := hashing.GenerateZobristHash(b)

	err := s.db.Update(func(txn *badger.Txn) error {
		rec := Record{
			FEN:     engine.BoardToFEN(b),
			Zobrist: key,
		}

		item, err := txn.Get(keyBytes(key))
		if err == nil {
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		rec.Seen++
		rec.LastSeen = time.Now()

		data, err := json.Marshal(&rec)
		if err != nil {
			return err
		}
		return txn.Set(keyBytes(key), data)
	})

	return key, err
}

// Load retrieves the record for a Zobrist key. It returns
// badger.ErrKeyNotFound when the position was never recorded.
func (s *PositionStore) Load(key uint64) (*Record, error) {
	rec := &Record{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyBytes(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// Has reports whether a position with the given key was recorded.
func (s *PositionStore) Has(key uint64) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(keyBytes(key))
		return err
	})
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Board reconstructs the stored position for a Zobrist key.
func (s *PositionStore) Board(key uint64) (*chess.Board, error) {
	rec, err := s.Load(key)
	if err != nil {
		return nil, err
	}
	return engine.NewBoardFromFEN(rec.FEN)
}

// Len returns the number of stored positions.
func (s *PositionStore) Len() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
