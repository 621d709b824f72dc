package memdb

import (
	"fmt"
	"sync"

	"github.com/luminet/go-luminet/db"
)

type memdb struct {
	db map[string][]byte
	sync.RWMutex
}

// New creates a memory-based key-value store
// which is mainly used for testing.
func New() db.Database {
	return &memdb{db: make(map[string][]byte)}
}

func memKey(bucket string, key []byte) string {
	return bucket + "/" + string(key)
}

func (m *memdb) NewBucket(name string) error {
	return nil
}

// Put writes the key/value pair to database.
func (m *memdb) Put(bucket string, key, value []byte) error {
	m.Lock()
	defer m.Unlock()

	if m.db == nil {
		return fmt.Errorf("Memdb is closed.")
	}

	m.db[memKey(bucket, key)] = value
	return nil
}

// Delete deletes the key from the database.
func (m *memdb) Delete(bucket string, key []byte) error {
	m.Lock()
	defer m.Unlock()

	if m.db == nil {
		return fmt.Errorf("Memdb is closed.")
	}

	delete(m.db, memKey(bucket, key))
	return nil
}

// Get retrieves the value of the key from database.
func (m *memdb) Get(bucket string, key []byte) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()

	if m.db == nil {
		return nil, fmt.Errorf("Memdb is closed.")
	}

	v, ok := m.db[memKey(bucket, key)]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// Begin starts a transaction which buffers the writes and
// deletes until Commit is called.
func (m *memdb) Begin() (db.Tx, error) {
	m.Lock()
	defer m.Unlock()

	if m.db == nil {
		return nil, fmt.Errorf("Memdb is closed.")
	}

	tx := &memdbTx{
		base:    m,
		writes:  make(map[string][]byte),
		deletes: make(map[string]struct{}),
	}
	return tx, nil
}

func (m *memdb) Close() error {
	m.Lock()
	defer m.Unlock()

	m.db = nil
	return nil
}

type memdbTx struct {
	base    *memdb
	writes  map[string][]byte
	deletes map[string]struct{}
	done    bool
}

func (tx *memdbTx) Get(bucket string, key []byte) ([]byte, error) {
	k := memKey(bucket, key)
	if _, ok := tx.deletes[k]; ok {
		return nil, nil
	}
	if v, ok := tx.writes[k]; ok {
		return v, nil
	}
	return tx.base.Get(bucket, key)
}

func (tx *memdbTx) Put(bucket string, key, value []byte) error {
	if tx.done {
		return fmt.Errorf("Memdb tx is finished.")
	}
	k := memKey(bucket, key)
	delete(tx.deletes, k)
	tx.writes[k] = value
	return nil
}

func (tx *memdbTx) Delete(bucket string, key []byte) error {
	if tx.done {
		return fmt.Errorf("Memdb tx is finished.")
	}
	k := memKey(bucket, key)
	delete(tx.writes, k)
	tx.deletes[k] = struct{}{}
	return nil
}

func (tx *memdbTx) Commit() error {
	if tx.done {
		return fmt.Errorf("Memdb tx is finished.")
	}
	tx.done = true

	tx.base.Lock()
	defer tx.base.Unlock()

	if tx.base.db == nil {
		return fmt.Errorf("Memdb is closed.")
	}

	for k, v := range tx.writes {
		tx.base.db[k] = v
	}
	for k := range tx.deletes {
		delete(tx.base.db, k)
	}
	return nil
}

func (tx *memdbTx) Rollback() error {
	if tx.done {
		return fmt.Errorf("Memdb tx is finished.")
	}
	tx.done = true
	tx.writes = nil
	tx.deletes = nil
	return nil
}
