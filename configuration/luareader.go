// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/shipchain/vaultd/fault"
)

// field names are taken verbatim from the tags
var mapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	},
}

// ParseConfigurationFile - run a Lua file and map its returned table
// onto config
//
// the script sees its own path as arg[0]
func ParseConfigurationFile(fileName string, config interface{}) error {
	return run(config, func(L *lua.LState) error {
		arg := &lua.LTable{}
		arg.Insert(0, lua.LString(fileName))
		L.SetGlobal("arg", arg)

		return L.DoFile(fileName)
	})
}

// ParseConfigurationString - as ParseConfigurationFile for an in-memory chunk
func ParseConfigurationString(chunk string, config interface{}) error {
	return run(config, func(L *lua.LState) error {
		return L.DoString(chunk)
	})
}

func run(config interface{}, load func(*lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()
	L.OpenLibs()

	if err := load(L); nil != err {
		return err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fault.ConfigurationNotTable
	}
	return mapper.Map(table, config)
}
