/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logging

import (
	"flag"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// Options configures logging.
type Options struct {
	// Debug enables verbose logging.
	Debug bool

	zapOptions zap.Options
}

// AddFlags registers the zap flags alongside our own.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	goflags := flag.NewFlagSet("zap", flag.ContinueOnError)

	o.zapOptions.BindFlags(goflags)

	f.AddGoFlagSet(goflags)
	f.BoolVar(&o.Debug, "debug", false, "Enable debug logging.")
}

// SetupLogging installs the global logger.
func (o *Options) SetupLogging() {
	log.SetLogger(o.Logger(nil))
}

// Logger returns a logger writing to the given writer, or the zap default
// when nil.
func (o *Options) Logger(w io.Writer) logr.Logger {
	opts := []zap.Opts{
		zap.UseFlagOptions(&o.zapOptions),
	}

	if w != nil {
		opts = append(opts, zap.WriteTo(w))
	}

	if o.Debug {
		opts = append(opts, zap.Level(uberzap.NewAtomicLevelAt(zapcore.DebugLevel)))
	}

	return zap.New(opts...)
}
