// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js && !wasm
// +build !js,!wasm

package main

// CanExport reports whether frames can be written to the local filesystem
const CanExport = true
