// Package cmd implements the jtl subcommands.
//
// Each command is a struct with kong field tags and a Run method. All
// commands read JTL documents from file path arguments, with "-"
// standing for stdin.
package cmd
