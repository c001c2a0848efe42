// Package hcl provides the HCL implementation of config.Loader.
//
// A query file names the edge list and any number of searches:
//
//	graph = "cities.txt"
//
//	search "commute" {
//	  from       = "New York"
//	  to         = env.GOAL_CITY
//	  algorithms = ["bfs"]
//	}
//
// Expressions are evaluated against an `env` object holding the process
// environment, overlaid with an optional dotenv file, and a handful of
// string functions (upper, lower, trimspace, format). A relative graph path
// is resolved against the directory of the file that declares it.
package hcl
