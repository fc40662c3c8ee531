// Package commands defines the contactplot CLI.
//
// Commands
//
//   - contactplot <contacts.csv>   Draw the ROI heatmap and, with --domains,
//     the contacts-by-domain CSV files and chart
//   - domains <domains.csv>        Print the domain set a run would use
//   - verify <manifest.json>       Re-check saved artifacts against a manifest
//
// # Implementation
//
// Flag defaults come from app.DefaultConfig (environment variables); the root
// command opens the log file in the output directory, builds the dependency
// graph with app.NewWire and hands the parsed app.Config to App.Run.
package commands
