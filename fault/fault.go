// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConflictError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LinkFormatError GenericError
type LinkTypeError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RemoteError GenericError
type StorageError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised          = ProcessError("already initialised")
	CannotDecodeAddress         = InvalidError("cannot decode address")
	CertificateFileExists       = ExistsError("certificate file already exists")
	ChecksumMismatch            = InvalidError("checksum mismatch")
	ConfigurationNotFound       = NotFoundError("configuration file not found")
	ConfigurationNotTable       = InvalidError("configuration must return a table")
	CryptoFailed                = ProcessError("crypto failed")
	FileNotFound                = NotFoundError("File Not Found")
	InvalidCount                = InvalidError("invalid count")
	InvalidFields               = InvalidError("Invalid Object: fields must be an object")
	InvalidIpAddress            = InvalidError("invalid IP address")
	InvalidKeyLength            = InvalidError("invalid key length")
	InvalidLinkEntry            = LinkFormatError("Invalid LinkEntry provided")
	InvalidPortNumber           = InvalidError("invalid port number")
	InvalidPublicKey            = InvalidError("invalid public key")
	InvalidRequest              = InvalidError("invalid request")
	InvalidSignature            = InvalidError("invalid signature")
	InvalidStructPointer        = InvalidError("invalid struct pointer")
	KeyFileExists               = ExistsError("key file already exists")
	LinkMissingScheme           = LinkFormatError("LinkEntry is missing VAULTREF# scheme")
	LinkMissingSegments         = LinkFormatError("LinkEntry has insufficient path segments")
	LinkInvalidEndpoint         = LinkFormatError("LinkEntry has an invalid endpoint")
	MissingParameters           = InvalidError("missing parameters")
	MethodNotFound              = NotFoundError("method not found")
	NotInitialised              = ProcessError("not initialised")
	RateLimiting                = InvalidError("rate limiting")
	ReadOnlyDatabase            = ProcessError("database is read only")
	SignatureNotInitialised     = ProcessError("Signature service is not initialised")
	StorageCredentialsNotFound  = NotFoundError("StorageCredentials not found")
	VaultMetadataNotLoaded      = ProcessError("Vault metadata is not loaded")
	VaultMetadataAlreadyExists  = ExistsError("Vault metadata already exists")
	VaultSignatureMissing       = InvalidError("Vault metadata is not signed")
	WalletNotFound              = NotFoundError("Wallet not found")
	WrongPassword               = InvalidError("wrong password")
	WrongRemoteResponseEnvelope = RemoteError("Invalid JSON-RPC response envelope")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConflictError) Error() string   { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LinkFormatError) Error() string { return string(e) }
func (e LinkTypeError) Error() string   { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RemoteError) Error() string     { return string(e) }
func (e StorageError) Error() string    { return string(e) }

// determine the class of an error, looking through any %w wrapping
func IsErrConflict(e error) bool   { var x ConflictError; return errors.As(e, &x) }
func IsErrExists(e error) bool     { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool    { var x InvalidError; return errors.As(e, &x) }
func IsErrLinkFormat(e error) bool { var x LinkFormatError; return errors.As(e, &x) }
func IsErrLinkType(e error) bool   { var x LinkTypeError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool   { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool    { var x ProcessError; return errors.As(e, &x) }
func IsErrRemote(e error) bool     { var x RemoteError; return errors.As(e, &x) }
func IsErrStorage(e error) bool    { var x StorageError; return errors.As(e, &x) }

// messages carrying data
// ----------------------

// InvalidPrimitiveType - unknown primitive type name
func InvalidPrimitiveType(name string) error {
	return InvalidError(fmt.Sprintf("Primitive type is not valid [%s]", name))
}

// PrimitiveExists - a primitive type may only be injected once per vault
func PrimitiveExists(name string, vaultID string) error {
	return ExistsError(fmt.Sprintf("Primitive %s already exists in Vault %s", name, vaultID))
}

// PrimitiveNotFound - vault does not hold the requested primitive
func PrimitiveNotFound(name string, vaultID string) error {
	return NotFoundError(fmt.Sprintf("Primitive %s not found in Vault %s", name, vaultID))
}

// LinkTypeMismatch - declared link target disagrees with the slot
func LinkTypeMismatch(expected string, actual string) error {
	return LinkTypeError(fmt.Sprintf("Expecting Link to [%s] instead received [%s]", expected, actual))
}

// LinkNotFound - a single link slot has not been set
func LinkNotFound(linkName string, primitiveName string) error {
	return NotFoundError(fmt.Sprintf("%s not found in %s", linkName, primitiveName))
}

// CollectionKeyNotFound - named collection does not hold key
func CollectionKeyNotFound(singular string, key string, primitiveName string) error {
	return NotFoundError(fmt.Sprintf("%s '%s' not found in %s", singular, key, primitiveName))
}

// LinkIDNotFound - list primitive does not hold link id
func LinkIDNotFound(linkID string) error {
	return NotFoundError(fmt.Sprintf("LinkID [%s] not found!", linkID))
}

// LinkIDExists - list primitive already holds link id
func LinkIDExists(linkID string) error {
	return ExistsError(fmt.Sprintf("LinkID [%s] already exists!", linkID))
}

// SchemaViolation - typed primitive fields rejected by its schema
func SchemaViolation(primitiveName string, detail string) error {
	return InvalidError(fmt.Sprintf("%s Invalid: %s", primitiveName, detail))
}

// UnableToLoadVault - storage driver failed to return the metadata
//
// the driver reason is embedded verbatim, callers match on this text
func UnableToLoadVault(reason error) error {
	message := fmt.Sprintf("Unable to load vault from Storage driver '%s'", reason)
	if IsErrNotFound(reason) {
		return NotFoundError(message)
	}
	return StorageError(message)
}

// UnableToWriteVault - storage driver failed to persist the metadata
func UnableToWriteVault(reason error) error {
	return StorageError(fmt.Sprintf("Unable to write vault to Storage driver '%s'", reason))
}

// StorageDriverFailure - any other driver level failure
func StorageDriverFailure(driver string, reason error) error {
	return StorageError(fmt.Sprintf("Storage driver %s failed: %s", driver, reason))
}

// InvalidStorageDriver - unknown driver type
func InvalidStorageDriver(name string) error {
	return InvalidError(fmt.Sprintf("Storage driver type is not valid [%s]", name))
}

// InvalidRole - only the owners role is supported
func InvalidRole(role string) error {
	return InvalidError(fmt.Sprintf("Role is not valid [%s]", role))
}

// NotAuthorised - acting wallet is not an owner of the vault
func NotAuthorised(publicKey string, vaultID string) error {
	return InvalidError(fmt.Sprintf("Wallet %s is not authorised for Vault %s", publicKey, vaultID))
}

// RevisionConflict - strict writes detected a concurrent writer
func RevisionConflict(vaultID string, expected uint64, found uint64) error {
	return ConflictError(fmt.Sprintf("Vault %s revision conflict: expected %d found %d", vaultID, expected, found))
}

// VaultVerificationFailed - hash or signature does not match content
func VaultVerificationFailed(vaultID string, reason string) error {
	return InvalidError(fmt.Sprintf("Vault %s failed verification: %s", vaultID, reason))
}

// MissingParameter - required RPC parameter absent
func MissingParameter(name string) error {
	return InvalidError(fmt.Sprintf("Missing required parameter: '%s'", name))
}

// InvalidParameterType - RPC parameter is of the wrong type
func InvalidParameterType(name string, expected string) error {
	return InvalidError(fmt.Sprintf("Invalid %s provided for parameter: '%s'", expected, name))
}

// UnableToResolveLink - remote or local resolution of one link failed
func UnableToResolveLink(ref string, reason error) error {
	return RemoteError(fmt.Sprintf("Unable to resolve link [%s]: %s", ref, reason))
}

// LinkDepthExceeded - recursive resolution went too deep
func LinkDepthExceeded(ref string, depth int) error {
	return RemoteError(fmt.Sprintf("Link resolution exceeded maximum depth %d at [%s]", depth, ref))
}

// LinkCycle - resolution revisited a locator on its own path
func LinkCycle(ref string) error {
	return RemoteError(fmt.Sprintf("Cyclic link detected at [%s]", ref))
}

// RemoteCallFailed - JSON-RPC error or transport failure
func RemoteCallFailed(endpoint string, reason string) error {
	return RemoteError(fmt.Sprintf("Remote call to %s failed: %s", endpoint, reason))
}
