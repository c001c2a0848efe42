package hcl

// queryFile is the top-level structure of a single .hcl query file.
type queryFile struct {
	Graph    string         `hcl:"graph,optional"`
	Searches []*searchBlock `hcl:"search,block"`
}

// searchBlock is a `search "<name>" { ... }` block.
type searchBlock struct {
	Name       string   `hcl:"name,label"`
	From       string   `hcl:"from"`
	To         string   `hcl:"to"`
	Algorithms []string `hcl:"algorithms,optional"`
}
