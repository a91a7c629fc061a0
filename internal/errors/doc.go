// Package errors provides structured, actionable error messages for vmini.
//
// Every error carries a stable code (e.g. "E101") that maps to a short
// message, a longer explanation and a category:
//   - render: failures raised while building, mounting or unmounting a tree
//   - config: vmini.json / vmini.yaml parsing and validation
//   - transport: live server and snapshot export failures
//   - cli: command-line usage problems
//
// # Usage
//
//	err := errors.New("E101").
//	    WithDetail(`tag "1div" is not a valid element name`).
//	    WithSuggestion("Element names must start with a letter")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E101: Invalid tag name
//	//
//	//   tag "1div" is not a valid element name
//	//
//	//   Hint: Element names must start with a letter
//
// Codes are recovered from wrapped chains with Code:
//
//	if errors.Code(err) == "E102" { ... }
package errors
