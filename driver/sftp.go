// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/shipchain/vaultd/fault"
)

const (
	sftpDefaultPort = 22
	sftpDialTimeout = 15 * time.Second

	// SSH_FX_NO_SUCH_FILE
	sftpNoSuchFile = 2
)

// SFTP - files below a directory on a remote host
type SFTP struct {
	address string
	base    string
	user    string
	config  *ssh.ClientConfig
}

// NewSFTP - build ssh settings, connection happens per call
func NewSFTP(options Options) (*SFTP, error) {
	if "" == options.Host {
		return nil, fault.MissingParameter("host")
	}
	if "" == options.Username {
		return nil, fault.MissingParameter("username")
	}

	auth := []ssh.AuthMethod{}
	if "" != options.PrivateKey {
		signer, err := ssh.ParsePrivateKey([]byte(options.PrivateKey))
		if nil != err {
			return nil, fault.InvalidParameterType("private_key", "PEM key")
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}
	if "" != options.Password {
		auth = append(auth, ssh.Password(options.Password))
	}
	if 0 == len(auth) {
		return nil, fault.MissingParameter("password")
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if "" != options.HostKey {
		hostKey, _, _, _, err := ssh.ParseAuthorizedKey([]byte(options.HostKey))
		if nil != err {
			return nil, fault.InvalidParameterType("host_key", "authorized key")
		}
		hostKeyCallback = ssh.FixedHostKey(hostKey)
	}

	port := options.Port
	if 0 == port {
		port = sftpDefaultPort
	}

	return &SFTP{
		address: net.JoinHostPort(options.Host, strconv.Itoa(port)),
		base:    options.BasePath,
		user:    options.Username,
		config: &ssh.ClientConfig{
			User:            options.Username,
			Auth:            auth,
			HostKeyCallback: hostKeyCallback,
			Timeout:         sftpDialTimeout,
		},
	}, nil
}

// Name - driver interface
func (s *SFTP) Name() string { return TypeSFTP }

func (s *SFTP) filename(name string) (string, error) {
	clean, err := cleanName(name)
	if nil != err {
		return "", err
	}
	if "" == s.base {
		return clean, nil
	}
	return path.Join(s.base, clean), nil
}

// run one operation on a fresh session
func (s *SFTP) session(ctx context.Context, f func(client *sftp.Client) error) error {
	if err := ctx.Err(); nil != err {
		return err
	}

	dialer := net.Dialer{Timeout: sftpDialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", s.address)
	if nil != err {
		return fault.StorageDriverFailure(TypeSFTP, err)
	}
	sshConn, chans, reqs, err := ssh.NewClientConn(conn, s.address, s.config)
	if nil != err {
		conn.Close()
		return fault.StorageDriverFailure(TypeSFTP, err)
	}
	sshClient := ssh.NewClient(sshConn, chans, reqs)
	defer sshClient.Close()

	client, err := sftp.NewClient(sshClient)
	if nil != err {
		return fault.StorageDriverFailure(TypeSFTP, err)
	}
	defer client.Close()

	return f(client)
}

// Get - read a whole remote file
func (s *SFTP) Get(ctx context.Context, name string) ([]byte, error) {
	filename, err := s.filename(name)
	if nil != err {
		return nil, err
	}

	var data []byte
	err = s.session(ctx, func(client *sftp.Client) error {
		f, err := client.Open(filename)
		if nil != err {
			return sftpError(err)
		}
		defer f.Close()
		data, err = ioutil.ReadAll(f)
		if nil != err {
			return fault.StorageDriverFailure(TypeSFTP, err)
		}
		return nil
	})
	return data, err
}

// Put - write a temporary remote file then rename over the target
func (s *SFTP) Put(ctx context.Context, name string, data []byte) error {
	filename, err := s.filename(name)
	if nil != err {
		return err
	}

	return s.session(ctx, func(client *sftp.Client) error {
		if err := client.MkdirAll(path.Dir(filename)); nil != err {
			return fault.StorageDriverFailure(TypeSFTP, err)
		}

		tmpName := fmt.Sprintf("%s.tmp-%d", filename, time.Now().UnixNano())
		f, err := client.Create(tmpName)
		if nil != err {
			return fault.StorageDriverFailure(TypeSFTP, err)
		}
		_, err = f.Write(data)
		if closeErr := f.Close(); nil == err {
			err = closeErr
		}
		if nil == err {
			err = client.PosixRename(tmpName, filename)
		}
		if nil != err {
			_ = client.Remove(tmpName)
			return fault.StorageDriverFailure(TypeSFTP, err)
		}
		return nil
	})
}

// Exists - stat the remote file
func (s *SFTP) Exists(ctx context.Context, name string) (bool, error) {
	filename, err := s.filename(name)
	if nil != err {
		return false, err
	}

	found := false
	err = s.session(ctx, func(client *sftp.Client) error {
		_, err := client.Stat(filename)
		if nil == err {
			found = true
			return nil
		}
		err = sftpError(err)
		if fault.FileNotFound == err {
			return nil
		}
		return err
	})
	return found, err
}

// URI - sftp://user@host:port/path
func (s *SFTP) URI(name string) string {
	filename, err := s.filename(name)
	if nil != err {
		filename = name
	}
	if !path.IsAbs(filename) {
		filename = "/" + filename
	}
	return "sftp://" + s.user + "@" + s.address + filename
}

func sftpError(err error) error {
	if os.IsNotExist(err) {
		return fault.FileNotFound
	}
	var status *sftp.StatusError
	if errors.As(err, &status) && sftpNoSuchFile == status.Code {
		return fault.FileNotFound
	}
	return fault.StorageDriverFailure(TypeSFTP, err)
}
