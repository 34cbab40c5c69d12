// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resolver

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/fault"
)

const (
	defaultTimeout      = 30 * time.Second
	maximumResponseSize = 16 << 20
)

type clientRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type clientError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type clientResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *clientError    `json:"error"`
}

// HTTPCaller - JSON-RPC 2.0 over HTTP POST
type HTTPCaller struct {
	sync.RWMutex
	log    *logger.L
	client *http.Client
	nextID uint64
}

// NewHTTPCaller - caller with a bounded timeout
func NewHTTPCaller(log *logger.L, configuration Configuration) *HTTPCaller {
	c := &HTTPCaller{
		log: log,
	}
	c.Configure(configuration)
	return c
}

// Configure - rebuild the HTTP client for a new timeout or TLS policy
func (c *HTTPCaller) Configure(configuration Configuration) {
	timeout := time.Duration(configuration.Timeout) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if configuration.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	c.Lock()
	c.client = &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
	c.Unlock()
}

func (c *HTTPCaller) httpClient() *http.Client {
	c.RLock()
	defer c.RUnlock()
	return c.client
}

// Call - post one request and return its result
func (c *HTTPCaller) Call(ctx context.Context, endpoint string, method string, params interface{}) (json.RawMessage, error) {
	id := atomic.AddUint64(&c.nextID, 1)
	body, err := json.Marshal(clientRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	})
	if nil != err {
		return nil, err
	}

	request, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if nil != err {
		return nil, fault.RemoteCallFailed(endpoint, err.Error())
	}
	request = request.WithContext(ctx)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	c.log.Debugf("call: %s  method: %s  id: %d", endpoint, method, id)

	response, err := c.httpClient().Do(request)
	if nil != err {
		return nil, fault.RemoteCallFailed(endpoint, err.Error())
	}
	defer response.Body.Close()

	data, err := ioutil.ReadAll(io.LimitReader(response.Body, maximumResponseSize))
	if nil != err {
		return nil, fault.RemoteCallFailed(endpoint, err.Error())
	}

	if http.StatusOK != response.StatusCode {
		return nil, fault.RemoteCallFailed(endpoint, fmt.Sprintf("HTTP status %d", response.StatusCode))
	}

	var reply clientResponse
	if err := json.Unmarshal(data, &reply); nil != err {
		return nil, fault.WrongRemoteResponseEnvelope
	}
	if "2.0" != reply.JSONRPC {
		return nil, fault.WrongRemoteResponseEnvelope
	}
	if nil != reply.Error {
		return nil, fault.RemoteCallFailed(endpoint, reply.Error.Message)
	}
	if 0 == len(reply.Result) || "null" == string(reply.Result) {
		return nil, fault.WrongRemoteResponseEnvelope
	}
	return reply.Result, nil
}
