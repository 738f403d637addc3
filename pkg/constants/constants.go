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

package constants

import (
	"fmt"
	"os"
	"path"
)

var (
	// Application is the application name.
	//nolint:gochecknoglobals
	Application = path.Base(os.Args[0])

	// Version is the application version set via the Makefile.
	//nolint:gochecknoglobals
	Version = "0.0.0"

	// Revision is the git revision set via the Makefile.
	//nolint:gochecknoglobals
	Revision = "unknown"
)

const (
	// LibraryName is what the client identifies itself as upstream.
	LibraryName = "uni-reddit"

	// DefaultBaseURL is the OAuth API endpoint.
	DefaultBaseURL = "https://oauth.reddit.com"
)

// VersionString returns a canonical version string.  It's based on
// HTTP's User-Agent so can be used to set that too, if this ever has to
// call out to other services.
func VersionString() string {
	return fmt.Sprintf("%s/%s (revision/%s)", Application, Version, Revision)
}

// UserAgent returns the identifying string for a named consumer of
// the library e.g. a test suite.
func UserAgent(name string) string {
	return fmt.Sprintf("%s for %s v%s", name, LibraryName, Version)
}
