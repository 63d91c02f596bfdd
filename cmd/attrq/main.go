// attrq queries annotation trees by path.
//
// Annotation documents are YAML files listing attributes: bare markers,
// nested attributes with arguments, and name = value pairs. attrq answers
// whether a path names a marker, which value a path binds, and flattens all
// attributes into an ordered map keyed by dotted path.
//
// Usage:
//
//	# Does level0(level1) exist?
//	attrq contains level0.level1 -f attrs.yaml
//
//	# Value bound at a path, cast to an unsigned integer
//	attrq value limits.max -f attrs.yaml --as uint64
//
//	# Flatten every attribute
//	attrq map -f attrs.yaml --format json
//
//	# Re-evaluate a path whenever the document changes
//	attrq watch level0.level1 -f attrs.yaml --metrics-file attrq.prom
//
// contains and value exit with status 1 when nothing matches and 2 on errors.
package main

func main() {
	Execute()
}
