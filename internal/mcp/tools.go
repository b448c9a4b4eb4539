// Package mcp exposes the algebra kernel as JSON tool calls for agent
// frameworks.
package mcp

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/njchilds90/goalgebra"
	"github.com/njchilds90/goalgebra/parser"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	String string      `json:"string,omitempty"`
	// Unresolved is set when the result still holds a division by a
	// polynomial.
	Unresolved bool   `json:"unresolved,omitempty"`
	Error      string `json:"error,omitempty"`
}

// HandleToolCall executes one tool call. Expression parameters may be infix
// strings ("3x^2 + 1"), JSON trees as produced by algebra.ToJSON, or bare
// numbers. Numbers are read as exact decimals, so 0.1 means 1/10. Powers
// are bounded by algebra.SetMaxExponent.
func HandleToolCall(req ToolRequest) ToolResponse {
	getExpr := func(key string) (algebra.Expr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		switch val := v.(type) {
		case string:
			return parser.Parse(val)
		case map[string]interface{}:
			return algebra.FromJSON(val)
		case float64, json.Number:
			r, ok := number(val)
			if !ok {
				return nil, fmt.Errorf("param %s is not a finite number", key)
			}
			return algebra.NewTerm(r)
		}
		return nil, fmt.Errorf("invalid type for param %s", key)
	}
	getNumber := func(key string) (*big.Rat, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		n, ok := number(v)
		if !ok {
			return nil, fmt.Errorf("param %s must be a number", key)
		}
		return n, nil
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getPair := func(x, y string) (algebra.Expr, algebra.Expr, error) {
		a, err := getExpr(x)
		if err != nil {
			return nil, nil, err
		}
		b, err := getExpr(y)
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }
	respond := func(e algebra.Expr) ToolResponse {
		return ToolResponse{
			Result:     algebra.JSONValue(e),
			LaTeX:      algebra.LaTeX(e),
			String:     algebra.String(e),
			Unresolved: unresolved(e),
		}
	}
	simplified := func(e algebra.Expr, err error) ToolResponse {
		if err != nil {
			return fail(err)
		}
		v, err := algebra.Simplify(e)
		if err != nil {
			return fail(err)
		}
		return respond(v)
	}

	switch req.Tool {
	case "simplify", "expand":
		return simplified(getExpr("expr"))

	case "render":
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		return respond(e)

	case "parse":
		s, err := getString("input")
		if err != nil {
			return fail(err)
		}
		e, err := parser.Parse(s)
		if err != nil {
			return fail(err)
		}
		return respond(e)

	case "multiply":
		a, b, err := getPair("a", "b")
		if err != nil {
			return fail(err)
		}
		return simplified(algebra.NewMult(a, b))

	case "divide":
		a, b, err := getPair("dividend", "divisor")
		if err != nil {
			return fail(err)
		}
		return simplified(algebra.NewDiv(a, b))

	case "power":
		base, err := getExpr("base")
		if err != nil {
			return fail(err)
		}
		n, err := getNumber("exponent")
		if err != nil {
			return fail(err)
		}
		return simplified(algebra.NewPow(base, n))

	case "distribute":
		e, factor, err := getPair("expr", "factor")
		if err != nil {
			return fail(err)
		}
		v, err := algebra.Simplify(e)
		if err != nil {
			return fail(err)
		}
		sum, ok := v.(*algebra.Add)
		if !ok {
			return simplified(algebra.NewMult(v, factor))
		}
		if err := sum.Distribute(factor); err != nil {
			return fail(err)
		}
		return respond(sum.Value())

	case "choose":
		n, err := getNumber("n")
		if err != nil {
			return fail(err)
		}
		k, err := getNumber("k")
		if err != nil {
			return fail(err)
		}
		c, err := algebra.Choose(n, k)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: c.String(), String: c.String(), LaTeX: c.String()}

	case "equal":
		a, b, err := getPair("a", "b")
		if err != nil {
			return fail(err)
		}
		av, err := algebra.Simplify(a)
		if err != nil {
			return fail(err)
		}
		bv, err := algebra.Simplify(b)
		if err != nil {
			return fail(err)
		}
		eq := av.Equal(bv)
		return ToolResponse{Result: eq, String: fmt.Sprint(eq)}

	case "like_terms":
		a, b, err := getPair("a", "b")
		if err != nil {
			return fail(err)
		}
		av, err := algebra.Simplify(a)
		if err != nil {
			return fail(err)
		}
		bv, err := algebra.Simplify(b)
		if err != nil {
			return fail(err)
		}
		ta, okA := av.(*algebra.Term)
		tb, okB := bv.(*algebra.Term)
		if !okA || !okB {
			return fail(fmt.Errorf("like_terms: both params must be monomials"))
		}
		like := ta.LikeTerm(tb)
		return ToolResponse{Result: like, String: fmt.Sprint(like)}

	case "to_json":
		e, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		s, err := algebra.ToJSON(e)
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: algebra.JSONValue(e), String: s}

	case "mcp_spec":
		return ToolResponse{String: ToolSpec()}
	}
	return ToolResponse{Error: "unknown tool: " + req.Tool}
}

// number reads a JSON number exactly. A float64 is taken from its shortest
// decimal form.
func number(v interface{}) (*big.Rat, bool) {
	switch n := v.(type) {
	case json.Number:
		return new(big.Rat).SetString(n.String())
	case float64:
		return new(big.Rat).SetString(strconv.FormatFloat(n, 'g', -1, 64))
	}
	return nil, false
}

func unresolved(e algebra.Expr) bool {
	switch v := e.(type) {
	case *algebra.Div:
		return !v.Resolved()
	case *algebra.Add:
		for _, t := range v.Terms() {
			if unresolved(t) {
				return true
			}
		}
	}
	return false
}

// ============================================================
// Tool schema
// ============================================================

func ToolSpec() string {
	expr := "string|object"
	tools := []map[string]interface{}{
		ts("simplify", "Reduce an expression to canonical form", []string{"expr"}, map[string]string{"expr": expr}),
		ts("expand", "Alias of simplify: distribute products and expand integer powers", []string{"expr"}, map[string]string{"expr": expr}),
		ts("render", "Render an expression as infix text and LaTeX without simplifying", []string{"expr"}, map[string]string{"expr": expr}),
		ts("parse", "Parse infix text into a JSON expression tree", []string{"input"}, map[string]string{"input": "string"}),
		ts("multiply", "Simplify a*b", []string{"a", "b"}, map[string]string{"a": expr, "b": expr}),
		ts("divide", "Simplify dividend/divisor", []string{"dividend", "divisor"}, map[string]string{"dividend": expr, "divisor": expr}),
		ts("power", "Simplify base^exponent for an integer exponent", []string{"base", "exponent"}, map[string]string{"base": expr, "exponent": "integer"}),
		ts("distribute", "Multiply factor through every term of expr", []string{"expr", "factor"}, map[string]string{"expr": expr, "factor": expr}),
		ts("choose", "Binomial coefficient C(n, k)", []string{"n", "k"}, map[string]string{"n": "integer", "k": "integer"}),
		ts("equal", "Compare two expressions after simplification", []string{"a", "b"}, map[string]string{"a": expr, "b": expr}),
		ts("like_terms", "Whether two monomials have identical variable powers", []string{"a", "b"}, map[string]string{"a": expr, "b": expr}),
		ts("to_json", "Encode an expression as a JSON tree", []string{"expr"}, map[string]string{"expr": expr}),
		ts("mcp_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
