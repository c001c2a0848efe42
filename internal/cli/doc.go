// Package cli turns command-line arguments into an app.Config. Usage errors
// come back as *ExitError carrying exit code 2; everything that happens
// after parsing is the app's business.
package cli
