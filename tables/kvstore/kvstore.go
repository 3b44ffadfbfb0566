/******************************************************************************
 * Copyright (c) 2025-2026 Astra Flight Systems Inc.                          *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package kvstore is a reference table implementation backed by a bbolt
// bucket. Its load handler ingests a JSON table file and writes the
// entries into the bucket; its dump handler writes the bucket back out
// as a JSON file. It exists both as a usable table and as the worked
// example of the interfaces.Table contract.
//
// Table file format:
//
//	{"table": {"name": "...", "version": 1, "entries": {"key": "value"}}}
package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.etcd.io/bbolt"

	"github.com/AstraFW/AstraFW/common/interfaces"
	"github.com/AstraFW/AstraFW/jsonbind"
	"github.com/AstraFW/AstraFW/tablemgr"
)

// MaxTableFileChar caps the table file size.
const MaxTableFileChar = 16384

// Event IDs
const (
	EIDLoad        = 2200
	EIDLoadErr     = 2201
	EIDDump        = 2202
	EIDDumpErr     = 2203
	EIDEntriesErr  = 2204
	EIDOpenErr     = 2205
)

// Dump qualifier values. Any other value falls back to pretty output.
const (
	DumpPretty  uint8 = 0
	DumpCompact uint8 = 1
)

// Ensure Store implements the Table interface
var _ interfaces.Table = (*Store)(nil)

// Store is a bbolt backed key/value table. A single task is assumed to
// drive loads and dumps; the database file is opened per operation so
// the store holds no handle between calls.
type Store struct {
	logger  interfaces.Logger
	binder  *jsonbind.Binder
	dbPath  string
	bucket  string
	name    string
	version int32
}

// New returns a Store instance
func New(dbPath string, options ...func(*Store) error) (*Store, error) {
	s := &Store{dbPath: dbPath, bucket: "Table"}

	for _, option := range options {
		err := option(s)
		if err != nil {
			return nil, err
		}
	}

	if s.logger == nil {
		return nil, errors.New("logger is required")
	}

	if s.dbPath == "" {
		return nil, errors.New("database path is required")
	}

	binder, err := jsonbind.New(jsonbind.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}
	s.binder = binder

	return s, nil
}

func WithLogger(logger interfaces.Logger) func(*Store) error {
	return func(s *Store) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		s.logger = logger
		return nil
	}
}

// WithBucket overrides the bucket name
func WithBucket(bucket string) func(*Store) error {
	return func(s *Store) error {
		if bucket == "" {
			return errors.New("bucket name is empty")
		}
		s.bucket = bucket
		return nil
	}
}

// Name returns the table name from the most recent load.
func (s *Store) Name() string {
	return s.name
}

// Version returns the table version from the most recent load.
func (s *Store) Version() int32 {
	return s.version
}

// Count returns how many entries the bucket holds. Reports false if the
// database cannot be opened or the bucket does not exist.
func (s *Store) Count() (int, bool) {
	db, ok := s.open()
	if !ok {
		return 0, false
	}
	defer db.Close()

	count := 0
	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(s.bucket))
		if b == nil {
			return fmt.Errorf("bucket %s does not exist", s.bucket)
		}
		count = b.Stats().KeyN
		return nil
	})
	if err != nil {
		s.logger.Errorf(EIDDumpErr, "Error reading bucket %s: %s", s.bucket, err.Error())
		return 0, false
	}

	return count, true
}

// LoadTable ingests a JSON table file into the bucket. Replace mode
// drops the bucket contents first; update mode upserts the file's
// entries and leaves the rest untouched.
func (s *Store) LoadTable(mode uint8, filename string) bool {

	buf := make([]byte, MaxTableFileChar)
	return s.binder.ProcessFile(filename, buf, func(jsonLen int) bool {
		return s.loadJSON(mode, filename, buf[:jsonLen])
	})
}

// loadJSON runs extraction and the bucket write against a validated
// buffer.
func (s *Store) loadJSON(mode uint8, filename string, buf []byte) bool {

	nameObj, err := jsonbind.NewStrObj("table.name", &s.name, 64)
	if err != nil {
		s.logger.Errorf(EIDLoadErr, "Error building table descriptor: %s", err.Error())
		return false
	}
	verObj, err := jsonbind.NewIntObj("table.version", &s.version)
	if err != nil {
		s.logger.Errorf(EIDLoadErr, "Error building table descriptor: %s", err.Error())
		return false
	}

	objs := []jsonbind.Obj{nameObj, verObj}
	if cnt := s.binder.ExtractArray(objs, buf); cnt != len(objs) {
		s.logger.Errorf(EIDLoadErr,
			"Error processing table file %s. %d of %d header fields processed",
			filename, cnt, len(objs))
		return false
	}

	entries := gjson.GetBytes(buf, "table.entries")
	if !entries.Exists() || !entries.IsObject() {
		s.logger.Errorf(EIDEntriesErr, "Table file %s has no entries object", filename)
		return false
	}

	db, ok := s.open()
	if !ok {
		return false
	}
	defer db.Close()

	count := 0
	err = db.Update(func(tx *bbolt.Tx) error {
		bucket := []byte(s.bucket)

		if mode == tablemgr.LoadReplace {
			if tx.Bucket(bucket) != nil {
				if delErr := tx.DeleteBucket(bucket); delErr != nil {
					return delErr
				}
			}
		}

		b, createErr := tx.CreateBucketIfNotExists(bucket)
		if createErr != nil {
			return createErr
		}

		var putErr error
		entries.ForEach(func(key, value gjson.Result) bool {
			putErr = b.Put([]byte(key.String()), []byte(value.String()))
			if putErr != nil {
				return false
			}
			count++
			return true
		})
		return putErr
	})
	if err != nil {
		s.logger.Errorf(EIDLoadErr, "Error writing table %s to bucket %s: %s",
			s.name, s.bucket, err.Error())
		return false
	}

	s.logger.Infof(EIDLoad, "Table %s version %d loaded %d entries from %s",
		s.name, s.version, count, filename)
	return true
}

// dumpFile is the on-disk shape written by DumpTable.
type dumpFile struct {
	Table dumpTable `json:"table"`
}

type dumpTable struct {
	Name      string            `json:"name"`
	Version   int32             `json:"version"`
	DumpID    string            `json:"dumpId"`
	CreatedAt string            `json:"createdAt"`
	Entries   map[string]string `json:"entries"`
}

// DumpTable writes the bucket contents to filename as a JSON file. The
// qualifier selects pretty or compact output. Each dump carries a
// generated identifier so ground tools can tell files apart.
func (s *Store) DumpTable(mode uint8, filename string) bool {

	db, ok := s.open()
	if !ok {
		return false
	}
	defer db.Close()

	entries := make(map[string]string)
	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(s.bucket))
		if b == nil {
			return fmt.Errorf("bucket %s does not exist", s.bucket)
		}
		return b.ForEach(func(k, v []byte) error {
			entries[string(k)] = string(v)
			return nil
		})
	})
	if err != nil {
		s.logger.Errorf(EIDDumpErr, "Error reading bucket %s: %s", s.bucket, err.Error())
		return false
	}

	out := dumpFile{Table: dumpTable{
		Name:      s.name,
		Version:   s.version,
		DumpID:    "D-" + uuid.New().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:   entries,
	}}

	var data []byte
	if mode == DumpCompact {
		data, err = json.Marshal(out)
	} else {
		data, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		s.logger.Errorf(EIDDumpErr, "Error serializing table dump: %s", err.Error())
		return false
	}

	if err = os.WriteFile(filename, data, 0644); err != nil {
		s.logger.Errorf(EIDDumpErr, "Error writing dump file %s: %s", filename, err.Error())
		return false
	}

	s.logger.Infof(EIDDump, "Table %s dumped %d entries to %s", s.name, len(entries), filename)
	return true
}

// open opens the bolt file with a short timeout so a locked file fails
// fast instead of stalling the caller's task.
func (s *Store) open() (*bbolt.DB, bool) {
	db, err := bbolt.Open(s.dbPath, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		s.logger.Errorf(EIDOpenErr, "Failed to open database %s: %s", s.dbPath, err.Error())
		return nil, false
	}
	return db, true
}
