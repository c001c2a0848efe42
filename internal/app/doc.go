// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle (load the edge list, run
// the searches, write the report), decoupled from any specific entrypoint
// like a CLI.
package app
