// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/shipchain/vaultd/fault"
)

// Local - files below a base directory
type Local struct {
	base string
}

// NewLocal - base directory is made absolute
func NewLocal(base string) (*Local, error) {
	if "" == base {
		return nil, fault.MissingParameter("base_path")
	}
	abs, err := filepath.Abs(base)
	if nil != err {
		return nil, fault.StorageDriverFailure(TypeLocal, err)
	}
	return &Local{base: abs}, nil
}

// Name - driver interface
func (l *Local) Name() string { return TypeLocal }

func (l *Local) filename(name string) (string, error) {
	clean, err := cleanName(name)
	if nil != err {
		return "", err
	}
	return filepath.Join(l.base, filepath.FromSlash(clean)), nil
}

// Get - read a whole file
func (l *Local) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); nil != err {
		return nil, err
	}
	filename, err := l.filename(name)
	if nil != err {
		return nil, err
	}
	data, err := ioutil.ReadFile(filename)
	if os.IsNotExist(err) {
		return nil, fault.FileNotFound
	}
	if nil != err {
		return nil, fault.StorageDriverFailure(TypeLocal, err)
	}
	return data, nil
}

// Put - write via a temporary file and rename
func (l *Local) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); nil != err {
		return err
	}
	filename, err := l.filename(name)
	if nil != err {
		return err
	}

	directory := filepath.Dir(filename)
	if err := os.MkdirAll(directory, 0700); nil != err {
		return fault.StorageDriverFailure(TypeLocal, err)
	}

	tmp, err := ioutil.TempFile(directory, ".tmp-"+filepath.Base(filename)+"-")
	if nil != err {
		return fault.StorageDriverFailure(TypeLocal, err)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if nil == err {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); nil == err {
		err = closeErr
	}
	if nil == err {
		err = os.Rename(tmpName, filename)
	}
	if nil != err {
		_ = os.Remove(tmpName)
		return fault.StorageDriverFailure(TypeLocal, err)
	}
	return nil
}

// Exists - true if the file is present
func (l *Local) Exists(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); nil != err {
		return false, err
	}
	filename, err := l.filename(name)
	if nil != err {
		return false, err
	}
	_, err = os.Stat(filename)
	if os.IsNotExist(err) {
		return false, nil
	}
	if nil != err {
		return false, fault.StorageDriverFailure(TypeLocal, err)
	}
	return true, nil
}

// URI - file:// form of the absolute path
func (l *Local) URI(name string) string {
	filename, err := l.filename(name)
	if nil != err {
		filename = filepath.Join(l.base, name)
	}
	return "file://" + filepath.ToSlash(filename)
}
