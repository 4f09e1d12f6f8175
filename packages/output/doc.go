// Package output formats assertion failures for display.
//
// The console formatter colours the header of an aggregated failure and each
// underlying message so that long "run all" reports stay readable in a
// terminal. Colour is dropped when disabled or when fatih/color detects that
// the output is not a terminal.
package output
