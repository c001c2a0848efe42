// Package config defines the format-agnostic model of a query: which edge
// list to load and which searches to run on it, along with the Loader
// interface that concrete formats implement.
//
// The HCL implementation lives in the hcl package.
package config
