// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package static

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	testCases := []struct {
		name      string
		config    Config
		expectErr bool
	}{
		{"default", DefaultConfig(), false},
		{"temp dir", Config{Addr: "127.0.0.1:0", Root: dir}, false},
		{"no address", Config{Root: dir}, true},
		{"missing root", Config{Addr: ":8000", Root: filepath.Join(dir, "nope")}, true},
		{"root is a file", Config{Addr: ":8000", Root: file}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8000", DefaultConfig().URL())
	assert.Equal(t, "http://127.0.0.1:9090", Config{Addr: "0.0.0.0:9090"}.URL())
}

func TestServerServeAndShutdown(t *testing.T) {
	dir := testRoot(t)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(Config{Addr: listener.Addr().String(), Root: dir})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ctx, listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/spincube.wasm")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/wasm", resp.Header.Get("Content-Type"))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServerStartListenError(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	srv := New(Config{Addr: listener.Addr().String(), Root: t.TempDir()})
	err = srv.Start(context.Background())
	assert.Error(t, err)
}
