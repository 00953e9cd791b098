// Package catalog loads enumeration definitions from YAML and builds them
// into a Catalog.
//
// A catalog file lists definitions under "enumerations":
//
//	enumerations:
//	  - name: gender
//	    kind: char
//	    code_set: MFN
//	    names: [MALE, FEMALE, NON_BINARY]
//	  - name: status
//	    names: [ACTIVE, INACTIVE]
//
// or holds a single definition at the top level. Kind is one of "byte"
// (the default), "char" and "alphanum"; code_set applies to "char" only.
//
// Load accepts a file or a directory of *.yaml and *.yml files:
//
//	c, err := catalog.Load("enums/")
//	if err != nil {
//	    return err
//	}
//	gender, _ := c.Char("gender")
//	gender.DisplayName("N") // "Non Binary"
//
// A Catalog is a plain value. Nothing is registered globally, so two
// catalogs never see each other's enumerations.
package catalog
