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

package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/reddit/pkg/client"
	"github.com/unikorn-cloud/reddit/pkg/constants"
	"github.com/unikorn-cloud/reddit/pkg/logging"
	"github.com/unikorn-cloud/reddit/pkg/models"
	"github.com/unikorn-cloud/reddit/pkg/outcome"
	"github.com/unikorn-cloud/reddit/pkg/validation"

	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
)

const (
	exitFailed  = 1
	exitSkipped = 2
)

type options struct {
	client  client.Options
	logging logging.Options

	name      string
	subreddit string
	limit     int
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	o.client.AddFlags(f)
	o.logging.AddFlags(f)

	f.StringVar(&o.name, "name", "ModelCheck", "Name the checker identifies itself as in the user agent.")
	f.StringVar(&o.subreddit, "subreddit", "all", "Subreddit to fetch submissions from.")
	f.IntVar(&o.limit, "limit", 25, "Maximum number of submissions to validate.")
}

func main() {
	var o options

	o.AddFlags(pflag.CommandLine)

	pflag.Parse()

	o.logging.SetupLogging()

	logger := log.Log.WithName("init")
	logger.Info("checker starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx := log.IntoContext(signals.SetupSignalHandler(), log.Log.WithName("check"))

	if err := run(ctx, &o); err != nil {
		result := outcome.Classify(err)

		if result.Skip {
			logger.Info(result.Message)
			os.Exit(exitSkipped)
		}

		fmt.Println(result.Message)
		os.Exit(exitFailed)
	}
}

func run(ctx context.Context, o *options) error {
	log := log.FromContext(ctx)

	cli := client.New(&o.client)
	cli.SetUserAgent(constants.UserAgent(o.name))

	subreddit, err := cli.Subreddit(ctx, o.subreddit)
	if err != nil {
		return err
	}

	if err := check(ctx, subreddit); err != nil {
		return err
	}

	submissions, err := cli.New(ctx, o.subreddit, o.limit)
	if err != nil {
		return err
	}

	if err := validation.Models(submissions); err != nil {
		return unwrapUnreachable(err)
	}

	for _, submission := range submissions {
		report(ctx, submission)
	}

	log.Info("models valid", "subreddit", o.subreddit, "submissions", len(submissions))

	return nil
}

func check(ctx context.Context, m models.Model) error {
	if err := validation.Model(m); err != nil {
		return unwrapUnreachable(err)
	}

	report(ctx, m)

	return nil
}

// report logs any fields the model doesn't know about.
func report(ctx context.Context, m models.Model) {
	if uncovered := validation.Uncovered(m); len(uncovered) > 0 {
		log.FromContext(ctx).V(1).Info("model has undeclared fields", "model", fmt.Sprintf("%T", m), "fields", uncovered)
	}
}

// unwrapUnreachable returns the underlying cause of a property that could
// not be invoked, it is then classified like any other error.
func unwrapUnreachable(err error) error {
	if verr := (*validation.Error)(nil); errors.As(err, &verr) && verr.Kind == validation.Unreachable {
		return verr.Cause
	}

	return err
}
