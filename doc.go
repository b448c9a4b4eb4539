// Package algebra provides a deterministic symbolic algebra kernel for Go.
//
// Expressions are trees built from monomials (Term) and four binary
// operation nodes (Add, Mult, Div, Pow). Simplify rewrites a node in place
// into its canonical form: like terms combined, products distributed and
// integer powers expanded.
//
// Design goals:
//   - Exact coefficients (math/big.Rat)
//   - Deterministic simplification and stable output
//   - Every node exclusively owns its operands; constructors clone inputs
//   - Simplify is atomic: a failed call leaves the node untouched
//   - JSON, LaTeX and MCP-ready tool APIs
package algebra
