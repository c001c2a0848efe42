// Package loader builds a graph.Graph from a line-oriented edge list.
//
// Each line holds exactly two comma separated node names:
//
//	New York,Boston
//	Boston,Portland
//
// Surrounding whitespace and the line terminator (LF or CRLF) are stripped
// before the line is split. Any line that does not split into exactly two
// fields stops the load with a *ParseError; nothing is skipped.
package loader
