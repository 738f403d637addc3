/*
Copyright 2024-2025 the Unikorn Authors.
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

// Package api provides integration test utilities for running suites
// against the live API.
//
// Suites are configured from the environment, or a .env file, and are
// skipped entirely when no credentials are available.  Each suite builds
// its own client and harness, there is no shared state between suites.
//
// Write tests are subject to posting limits upstream, fixtures report
// these as skipped rather than failed.
package api
