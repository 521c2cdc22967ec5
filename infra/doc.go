// Package infra contains technical adapters such as file sources, the run
// journal and metrics exporters. These packages should depend only on the
// interfaces defined in the core packages.
package infra
