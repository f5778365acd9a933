// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package static serves a directory over HTTP with content types browsers
// accept for WebAssembly modules and scripts.
package static

import (
	"log"
	"net/http"
	"strings"
)

// contentTypes overrides the detected type for these path suffixes
var contentTypes = []struct {
	suffix, contentType string
}{
	{".wasm", "application/wasm"},
	{".js", "application/javascript"},
}

// ContentType returns the forced content type for path
func ContentType(path string) (string, bool) {
	for _, c := range contentTypes {
		if strings.HasSuffix(path, c.suffix) {
			return c.contentType, true
		}
	}
	return "", false
}

// Handler serves root with http.FileServer, setting the content type of
// .wasm and .js paths first. http.FileServer keeps a content type that is
// already set.
func Handler(root http.FileSystem) http.Handler {
	fs := http.FileServer(root)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if contentType, ok := ContentType(r.URL.Path); ok {
			w.Header().Set("Content-Type", contentType)
		}
		fs.ServeHTTP(w, r)
	})
}

// Logger logs each request before passing it on
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[%s] %s %s", r.RemoteAddr, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
