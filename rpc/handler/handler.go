// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/shipchain/vaultd/counter"
)

const (
	maximumBodySize = 4 << 20

	version2 = "2.0"

	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeServerError    = -32000
)

// JSON-RPC 2.0 method names served by an internal service method
var aliases = map[string]string{
	"vaults.linked.get_linked_data": "Linked.GetLinkedData",
}

// Handler - endpoints served by the https listener
type Handler interface {
	SetAllow(map[string][]*net.IPNet)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Root(http.ResponseWriter, *http.Request)
}

// InternalConnection - lets the rpc codec read a request body and write a response
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

type handler struct {
	sync.RWMutex

	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	maximumConnections uint64
	count              counter.Counter
	allow              map[string][]*net.IPNet
}

// New - handler over an rpc server with its services registered
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		maximumConnections: maximumConnections,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - access control lists keyed by endpoint name
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

func (h *handler) isAllowed(name string, r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()
	for _, cidr := range h.allow[name] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// Root - anything not matched
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - JSON-RPC 1.0 passed to the rpc server, 2.0 translated first
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	body, err := ioutil.ReadAll(io.LimitReader(r.Body, maximumBodySize))
	if nil != err {
		sendInternalServerError(w)
		return
	}

	var probe struct {
		Version string `json:"jsonrpc"`
	}
	if err := json.Unmarshal(body, &probe); nil != err {
		if 0 == len(bytes.TrimSpace(body)) {
			sendInternalServerError(w)
			return
		}
		sendReply(w, response2{
			Version: version2,
			ID:      json.RawMessage("null"),
			Error:   &error2{Code: codeParseError, Message: "parse error"},
		})
		return
	}

	if version2 == probe.Version {
		sendReply(w, h.serve2(body))
		return
	}

	out, err := h.serve(body)
	if 0 == len(out) {
		h.log.Warnf("rpc: serve error: %v", err)
		sendInternalServerError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// a single JSON-RPC 1.0 request through the rpc server
//
// the codec writes a response even for unknown methods so output is
// returned alongside any serve error
func (h *handler) serve(request []byte) ([]byte, error) {
	var out bytes.Buffer
	codec := jsonrpc.NewServerCodec(&InternalConnection{in: bytes.NewReader(request), out: &out})
	err := h.server.ServeRequest(codec)
	return out.Bytes(), err
}

type request1 struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
	ID     json.RawMessage `json:"id"`
}

type response1 struct {
	ID     json.RawMessage `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  interface{}     `json:"error"`
}

type request2 struct {
	Version string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      json.RawMessage `json:"id"`
}

type error2 struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type response2 struct {
	Version string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *error2         `json:"error,omitempty"`
}

func (h *handler) serve2(body []byte) response2 {
	var req request2
	if err := json.Unmarshal(body, &req); nil != err {
		return response2{Version: version2, ID: json.RawMessage("null"), Error: &error2{Code: codeParseError, Message: "parse error"}}
	}
	id := req.ID
	if 0 == len(id) {
		id = json.RawMessage("null")
	}
	reply := response2{Version: version2, ID: id}

	if "" == req.Method {
		reply.Error = &error2{Code: codeInvalidRequest, Message: "invalid request"}
		return reply
	}
	method := req.Method
	if internal, ok := aliases[method]; ok {
		method = internal
	}

	// the 1.0 codec takes a single element params array
	params := bytes.TrimSpace(req.Params)
	switch {
	case 0 == len(params) || "null" == string(params):
		params = []byte("[{}]")
	case '[' != params[0]:
		params = append(append([]byte("["), params...), ']')
	}

	request, err := json.Marshal(request1{Method: method, Params: params, ID: id})
	if nil != err {
		reply.Error = &error2{Code: codeInvalidRequest, Message: err.Error()}
		return reply
	}

	h.log.Debugf("rpc 2.0: %s -> %s", req.Method, method)

	out, err := h.serve(request)
	if 0 == len(out) {
		message := "internal server error"
		if nil != err {
			message = err.Error()
		}
		reply.Error = &error2{Code: codeServerError, Message: message}
		return reply
	}

	var result response1
	if err := json.Unmarshal(out, &result); nil != err {
		reply.Error = &error2{Code: codeServerError, Message: err.Error()}
		return reply
	}
	if nil != result.Error {
		message, ok := result.Error.(string)
		if !ok {
			message = "internal server error"
		}
		code := codeServerError
		if strings.HasPrefix(message, "rpc: can't find") {
			code = codeMethodNotFound
		}
		reply.Error = &error2{Code: code, Message: message}
		return reply
	}
	reply.Result = result.Result
	return reply
}

// Details - server status for allowed clients
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.isAllowed("details", r) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	type theReply struct {
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
		RPCs    uint64 `json:"rpcs"`
	}

	sendReply(w, theReply{
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
		RPCs:    h.count.Uint64(),
	})
}

func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "Too Many Requests", http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
