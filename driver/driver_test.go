// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver_test

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"

	"github.com/shipchain/vaultd/driver"
	"github.com/shipchain/vaultd/fault"
	"github.com/shipchain/vaultd/fixtures"
)

func TestNew(t *testing.T) {
	base := fixtures.TempDirectory("driver")
	defer os.RemoveAll(base)

	d, err := driver.New(driver.Options{DriverType: driver.TypeLocal, BasePath: base})
	assert.Nil(t, err, "local")
	assert.Equal(t, driver.TypeLocal, d.Name(), "wrong name")

	d, err = driver.New(driver.Options{DriverType: driver.TypeS3, Bucket: "vaults", Region: "us-east-1"})
	assert.Nil(t, err, "s3")
	assert.Equal(t, "s3://vaults/v/meta.json", d.URI("v/meta.json"), "wrong s3 uri")

	d, err = driver.New(driver.Options{DriverType: driver.TypeSFTP, Host: "files.example.com", Username: "vault", Password: "secret", BasePath: "/srv/vaults"})
	assert.Nil(t, err, "sftp")
	assert.Equal(t, "sftp://vault@files.example.com:22/srv/vaults/v/meta.json", d.URI("v/meta.json"), "wrong sftp uri")

	_, err = driver.New(driver.Options{DriverType: driver.TypeSFTP, Host: "files.example.com", Username: "vault"})
	assert.Equal(t, "Missing required parameter: 'password'", err.Error(), "sftp without auth")

	_, err = driver.New(driver.Options{DriverType: "ftp"})
	assert.Equal(t, "Storage driver type is not valid [ftp]", err.Error(), "wrong type accepted")
	assert.False(t, driver.IsValidType("ftp"), "ftp valid")
}

func TestLocal(t *testing.T) {
	base := fixtures.TempDirectory("driver")
	defer os.RemoveAll(base)
	ctx := context.Background()

	d, err := driver.NewLocal(base)
	assert.Nil(t, err, "new local")

	_, err = d.Get(ctx, "vault/meta.json")
	assert.Equal(t, fault.FileNotFound, err, "missing file")
	assert.Equal(t, "File Not Found", err.Error(), "wrong message")

	found, err := d.Exists(ctx, "vault/meta.json")
	assert.Nil(t, err, "exists on missing")
	assert.False(t, found, "missing file found")

	assert.Nil(t, d.Put(ctx, "vault/meta.json", []byte("one")), "first put")
	assert.Nil(t, d.Put(ctx, "vault/meta.json", []byte("two")), "second put")

	data, err := d.Get(ctx, "vault/meta.json")
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte("two"), data, "wrong data")

	found, err = d.Exists(ctx, "vault/meta.json")
	assert.Nil(t, err, "exists")
	assert.True(t, found, "file not found")

	entries, err := ioutil.ReadDir(filepath.Join(base, "vault"))
	assert.Nil(t, err, "read dir")
	assert.Equal(t, 1, len(entries), "temporary files left behind")

	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Join(base, "vault", "meta.json")), d.URI("vault/meta.json"), "wrong uri")

	_, err = d.Get(ctx, "../outside")
	assert.True(t, fault.IsErrInvalid(err), "path escape accepted")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = d.Get(cancelled, "vault/meta.json")
	assert.Equal(t, context.Canceled, err, "cancelled context ignored")
}

// in memory bucket
type fakeS3 struct {
	s3iface.S3API
	objects map[string][]byte
}

func (f *fakeS3) GetObjectWithContext(_ aws.Context, in *s3.GetObjectInput, _ ...request.Option) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "missing", nil)
	}
	return &s3.GetObjectOutput{Body: ioutil.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, in *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	data, err := ioutil.ReadAll(in.Body)
	if nil != err {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObjectWithContext(_ aws.Context, in *s3.HeadObjectInput, _ ...request.Option) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[*in.Bucket+"/"+*in.Key]; !ok {
		return nil, awserr.NewRequestFailure(awserr.New("NotFound", "not found", nil), 404, "req")
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestS3(t *testing.T) {
	ctx := context.Background()
	fake := &fakeS3{objects: map[string][]byte{}}
	d := driver.NewS3WithClient(fake, "bucket", "vaults")

	_, err := d.Get(ctx, "v/meta.json")
	assert.Equal(t, fault.FileNotFound, err, "missing object")

	found, err := d.Exists(ctx, "v/meta.json")
	assert.Nil(t, err, "exists on missing")
	assert.False(t, found, "missing object found")

	assert.Nil(t, d.Put(ctx, "v/meta.json", []byte(`{}`)), "put")
	_, ok := fake.objects["bucket/vaults/v/meta.json"]
	assert.True(t, ok, "prefix not applied")

	data, err := d.Get(ctx, "v/meta.json")
	assert.Nil(t, err, "get")
	assert.Equal(t, []byte(`{}`), data, "wrong data")

	found, err = d.Exists(ctx, "v/meta.json")
	assert.Nil(t, err, "exists")
	assert.True(t, found, "object not found")

	assert.Equal(t, "s3://bucket/vaults/v/meta.json", d.URI("v/meta.json"), "wrong uri")
}
