// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver

import (
	"context"
	"path"
	"strings"

	"github.com/shipchain/vaultd/fault"
)

// driver type names
const (
	TypeLocal = "local"
	TypeS3    = "s3"
	TypeSFTP  = "sftp"
)

// Driver - byte level persistence for one storage credential
type Driver interface {
	Name() string
	Get(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
	Exists(ctx context.Context, name string) (bool, error)
	URI(name string) string
}

// Options - connection settings resolved from a storage credential
type Options struct {
	DriverType string `json:"driver_type"`
	BasePath   string `json:"base_path"`

	// s3
	Bucket          string `json:"bucket,omitempty"`
	Region          string `json:"region,omitempty"`
	Endpoint        string `json:"endpoint,omitempty"`
	AccessKeyID     string `json:"access_key_id,omitempty"`
	SecretAccessKey string `json:"secret_access_key,omitempty"`
	ForcePathStyle  bool   `json:"force_path_style,omitempty"`

	// sftp
	Host       string `json:"host,omitempty"`
	Port       int    `json:"port,omitempty"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
	HostKey    string `json:"host_key,omitempty"`
}

// IsValidType - one of the known driver types
func IsValidType(driverType string) bool {
	switch driverType {
	case TypeLocal, TypeS3, TypeSFTP:
		return true
	default:
		return false
	}
}

// New - create the driver named by options
func New(options Options) (Driver, error) {
	switch options.DriverType {
	case TypeLocal:
		return NewLocal(options.BasePath)
	case TypeS3:
		return NewS3(options)
	case TypeSFTP:
		return NewSFTP(options)
	default:
		return nil, fault.InvalidStorageDriver(options.DriverType)
	}
}

// clean a relative object name, refusing to escape the base path
func cleanName(name string) (string, error) {
	if "" == name {
		return "", fault.InvalidParameterType("path", "path")
	}
	clean := path.Clean("/" + strings.Replace(name, "\\", "/", -1))
	clean = strings.TrimPrefix(clean, "/")
	if "" == clean || "." == clean {
		return "", fault.InvalidParameterType("path", "path")
	}
	for _, segment := range strings.Split(name, "/") {
		if ".." == segment {
			return "", fault.InvalidParameterType("path", "path")
		}
	}
	return clean, nil
}
