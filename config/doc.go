// Package config loads the YAML run configuration for cmd/junctions.
//
// Load reads the file, applies defaults for absent fields, then validates.
// Every validation error is prefixed "config:".
//
//	input: boxes.txt     # path to "x,y,z" lines; "-" reads stdin
//	mode: clusters       # clusters | complete
//	link_budget: 1000    # links accepted before analysis (clusters mode)
//	top_k: 3             # largest circuits multiplied (clusters mode)
//	axis: x              # coordinate multiplied (complete mode)
//	log:
//	  level: info        # debug | info | warn | error
//	  format: text       # text | json
package config
