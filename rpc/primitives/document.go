// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package primitives

import (
	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/engine"
	"github.com/shipchain/vaultd/primitive"
)

// Document - type for RPC
type Document struct {
	service
}

// NewDocument - Document service
func NewDocument(log *logger.L, e *engine.Engine) *Document {
	return &Document{service: newService(log, e)}
}

// Get - the document with its fields
func (d *Document) Get(arguments *Vault, reply *DataReply) error {
	d.log.Infof("Document.Get: %+v", arguments)
	return d.get(arguments, primitive.KindDocument, reply)
}

// GetFields - field map
func (d *Document) GetFields(arguments *Vault, reply *FieldsReply) error {
	d.log.Infof("Document.GetFields: %+v", arguments)
	return d.getFields(arguments, primitive.KindDocument, reply)
}

// SetFields - replace the field map
func (d *Document) SetFields(arguments *FieldsArguments, reply *WriteReply) error {
	d.log.Infof("Document.SetFields: %+v", arguments.Vault)
	return d.setFields(arguments, primitive.KindDocument, reply)
}
