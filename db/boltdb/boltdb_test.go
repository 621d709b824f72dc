package boltdb

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoltdb(t *testing.T) {
	dir, err := ioutil.TempDir("", "boltdb")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	d := New(filepath.Join(dir, "test.db"))
	defer d.Close()

	err = d.NewBucket("TEST")
	assert.Nil(t, err)

	err = d.Put("TEST", []byte("key"), []byte("value"))
	assert.Nil(t, err)

	v, err := d.Get("TEST", []byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("value"), v)

	err = d.Delete("TEST", []byte("key"))
	assert.Nil(t, err)

	v, err = d.Get("TEST", []byte("key"))
	assert.Nil(t, err)
	assert.Nil(t, v)
}

func TestBoltdbTx(t *testing.T) {
	dir, err := ioutil.TempDir("", "boltdb")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	d := New(filepath.Join(dir, "test.db"))
	defer d.Close()

	err = d.NewBucket("TEST")
	assert.Nil(t, err)

	tx, err := d.Begin()
	assert.Nil(t, err)
	err = tx.Put("TEST", []byte("a"), []byte("1"))
	assert.Nil(t, err)
	err = tx.Rollback()
	assert.Nil(t, err)

	v, err := d.Get("TEST", []byte("a"))
	assert.Nil(t, err)
	assert.Nil(t, v)

	tx, err = d.Begin()
	assert.Nil(t, err)
	err = tx.Put("TEST", []byte("a"), []byte("1"))
	assert.Nil(t, err)
	err = tx.Commit()
	assert.Nil(t, err)

	v, err = d.Get("TEST", []byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), v)
}
