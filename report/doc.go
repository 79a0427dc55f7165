// Package report runs several search strategies over the same grid and
// writes a comparison of their outcomes.
//
// Compare launches one goroutine per strategy. Each run owns its frontier
// and explored set; only the read-only grid is shared. Rows come back in the
// order the strategies were given, regardless of completion order.
//
// Formats:
//
//   - table:   human-readable lipgloss table
//   - json:    array of rows
//   - yaml:    sequence of rows
//   - parquet: one row group, zstd-compressed, for offline analysis
package report
