// Package edid owns the EDID 1.3 / CEA-861 wire contract.
//
// Ownership boundary:
// - display timing parameter model and field identifiers
// - binary block encoding (base block + audio extension)
// - parameter validation entry points
package edid
