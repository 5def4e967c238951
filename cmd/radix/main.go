// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command radix runs one traced digit operation and prints its trace.
//
// Usage:
//
//    radix [flags] op u v [base]
//
// op is one of add, subtract, multiply or divide (or +, -, x, /). u and v
// are non-negative decimal integers of any size. The base defaults to the
// configured one.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"

	"github.com/db47h/radix"
	"github.com/db47h/radix/context"
	"github.com/db47h/radix/internal/config"
	"github.com/db47h/radix/internal/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	configPath string
	format     string
	verify     bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to config file")
	flag.StringVar(&opts.format, "format", "", "Output format: json, msgpack or text")
	flag.BoolVar(&opts.verify, "verify", false, "Verify the result before printing it")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] op u v [base]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Stdout, cfg, opts, flag.Args(), logger); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		logger.Fatal("radix failed", zap.Error(err))
	}
}

var errUsage = errors.New("usage")

func run(w io.Writer, cfg *config.Config, opts options, args []string, logger *zap.Logger) error {
	if opts.format != "" {
		cfg.Format = opts.format
	}
	cfg.Verify = cfg.Verify || opts.verify
	if err := cfg.Validate(); err != nil {
		return err
	}

	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("%w: expected 3 or 4 arguments, got %d", errUsage, len(args))
	}
	op, err := radix.ParseOp(args[0])
	if err != nil {
		return err
	}
	u, ok := new(big.Int).SetString(args[1], 10)
	if !ok {
		return fmt.Errorf("%w: invalid integer u = %q", errUsage, args[1])
	}
	v, ok := new(big.Int).SetString(args[2], 10)
	if !ok {
		return fmt.Errorf("%w: invalid integer v = %q", errUsage, args[2])
	}
	base := cfg.Base
	if len(args) == 4 {
		if base, err = strconv.Atoi(args[3]); err != nil {
			return fmt.Errorf("%w: invalid base %q", errUsage, args[3])
		}
	}

	ctx := context.New(base).SetLogger(logger)
	r := ctx.Compute(op, u, v)
	if cfg.Verify {
		r = ctx.Verify(r)
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	logger.Info("computed",
		zap.Stringer("op", op),
		zap.Int("base", base),
		zap.Int("steps", r.Steps()),
		zap.String("format", cfg.Format))
	return render.Write(w, r, cfg.Format, cfg.Indent)
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if lvl == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
