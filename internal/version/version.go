// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Catalog tab, TOML catalogs, JSON export
// 0.2.0 - Detail overlay, drag-rotate, eased zoom
// 0.1.0 - Initial release: animated orrery, planet list, info panel
