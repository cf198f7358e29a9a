// Package app contains the sort pipeline driver. It defines the main App
// struct, its configuration, and the execution lifecycle (read, sort with
// every engine, time, write, report), decoupled from any specific entrypoint
// like a CLI.
package app
