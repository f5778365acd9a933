// Copyright 2025 The spincube Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"log"

	"github.com/aedoom/spincube/internal/static"
)

func main() {
	cfg := static.DefaultConfig()
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.StringVar(&cfg.Root, "dir", cfg.Root, "directory to serve")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	log.Printf("Serving at %s", cfg.URL())
	if err := static.New(cfg).Start(context.Background()); err != nil {
		log.Fatal(err)
	}
}
