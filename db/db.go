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

package db

// Getter wraps the read access to the database.
type Getter interface {
	Get(bucket string, key []byte) ([]byte, error)
}

// Putter wraps the write access to the database.
type Putter interface {
	Put(bucket string, key []byte, value []byte) error
}

// Deleter wraps the delete access to the database.
type Deleter interface {
	Delete(bucket string, key []byte) error
}

// Tx is a batch of database operations which will either
// be applied together by Commit or discarded by Rollback.
type Tx interface {
	Getter
	Putter
	Deleter
	Commit() error
	Rollback() error
}

// Database is the generic operation interface which every
// database backend should implement.
type Database interface {
	Getter
	Putter
	Deleter
	NewBucket(name string) error
	Begin() (Tx, error)
	Close() error
}
