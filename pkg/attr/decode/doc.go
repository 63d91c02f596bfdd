// Package decode reads annotation trees from YAML interchange documents.
//
// A syntax parser that understands attribute source text can hand its output
// to attrq by writing one of these documents. The decoder keeps the line and
// column of every entry so query results and errors point back at the file.
//
// # Document Format
//
//	attributes:
//	  - name: level0          # top-level attribute
//	    style: outer          # optional: outer (default) or inner
//	    args:
//	      - name: level1      # nested bare marker
//	      - name: level1_1    # nested attribute
//	        args:
//	          - name: level2
//	            value: bye    # name-value argument
//
// An entry with 'value' is a name-value argument; any other entry is a nested
// attribute. The YAML tag of the value decides the literal kind: strings,
// integers, floats, and booleans are supported.
//
// # Basic Usage
//
//	d := decode.NewDecoder()
//	attrs, err := d.Decode("attrs.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Structural problems are collected in an *errors.ErrorList, each with the
// source location, the surrounding lines, and a suggestion where one applies.
// Decoding never returns a partial tree alongside an error.
package decode
