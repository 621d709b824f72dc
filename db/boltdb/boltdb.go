// Copyright 2020 The go-luminet Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package boltdb

import (
	"errors"
	"time"

	"github.com/boltdb/bolt"

	"github.com/luminet/go-luminet/db"
	"github.com/luminet/go-luminet/log"
)

type boltdb struct {
	db *bolt.DB
}

// New creates a new boltdb instance which can be used by multiple
// goroutines of the same process, BoltDB obtains a file lock on the data
// file so multiple processes cannot open the same database at the same time.
// It will panic if the database cannot be created or opened.
func New(path string) db.Database {
	// open a database in specified path
	bt, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		log.Fatal(err)
	}
	return &boltdb{db: bt}
}

func (bt *boltdb) NewBucket(name string) error {
	if err := bt.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		if err != nil {
			return err
		}
		return nil
	}); err != nil {
		return err
	}
	return nil
}

// Put writes the key/value pair to database.
func (bt *boltdb) Put(bucket string, key, value []byte) error {
	if err := bt.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		err := b.Put(key, value)
		return err
	}); err != nil {
		return err
	}
	return nil
}

// Delete deletes the key from the database.
func (bt *boltdb) Delete(bucket string, key []byte) error {
	if err := bt.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		err := b.Delete(key)
		return err
	}); err != nil {
		return err
	}
	return nil
}

// Get retrieves the value of the key from database, the value
// is nil if the key does not exist.
func (bt *boltdb) Get(bucket string, key []byte) ([]byte, error) {
	var value []byte
	if err := bt.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		v := b.Get(key)
		if v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return value, nil
}

// Begin starts a writable database transaction.
func (bt *boltdb) Begin() (db.Tx, error) {
	tx, err := bt.db.Begin(true)
	if err != nil {
		return nil, err
	}
	return &boltdbTx{tx: tx}, nil
}

func (bt *boltdb) Close() error {
	return bt.db.Close()
}

type boltdbTx struct {
	tx *bolt.Tx
}

func (bt *boltdbTx) Get(bucket string, key []byte) ([]byte, error) {
	b := bt.tx.Bucket([]byte(bucket))
	if b == nil {
		return nil, errors.New("bucket not exist")
	}
	v := b.Get(key)
	if v == nil {
		return nil, nil
	}
	value := make([]byte, len(v))
	copy(value, v)
	return value, nil
}

func (bt *boltdbTx) Put(bucket string, key, value []byte) error {
	b := bt.tx.Bucket([]byte(bucket))
	if b == nil {
		return errors.New("bucket not exist")
	}
	return b.Put(key, value)
}

func (bt *boltdbTx) Delete(bucket string, key []byte) error {
	b := bt.tx.Bucket([]byte(bucket))
	if b == nil {
		return errors.New("bucket not exist")
	}
	return b.Delete(key)
}

func (bt *boltdbTx) Commit() error {
	return bt.tx.Commit()
}

func (bt *boltdbTx) Rollback() error {
	return bt.tx.Rollback()
}
