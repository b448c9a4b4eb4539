package algebra

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// ============================================================
// JSON Serialization
// ============================================================

func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(e.toJSON())
	return string(b), err
}

// JSONValue returns the tree encoding of e as generic JSON values.
func JSONValue(e Expr) map[string]interface{} { return e.toJSON() }

func (t *Term) toJSON() map[string]interface{} {
	vars := make([]map[string]interface{}, len(t.vars))
	for i, vp := range t.vars {
		vars[i] = map[string]interface{}{"base": vp.Base.label, "exponent": vp.Exponent}
	}
	return map[string]interface{}{"type": "term", "coefficient": ratString(t.coeff), "variables": vars}
}

func (a *Add) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "add", "augend": a.augend.toJSON(), "addend": a.addend.toJSON()}
}

func (m *Mult) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "mult", "multiplicand": m.multiplicand.toJSON(), "multiplier": m.multiplier.toJSON()}
}

func (d *Div) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "div", "dividend": d.dividend.toJSON(), "divisor": d.divisor.toJSON()}
}

func (p *Pow) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "pow", "base": p.base.toJSON(), "exponent": p.exponent}
}

// UnmarshalExpr decodes a JSON tree produced by ToJSON. Numbers keep their
// decimal meaning: a coefficient of 0.1 decodes as 1/10.
func UnmarshalExpr(data []byte) (Expr, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after expression")
	}
	return FromJSON(m)
}

// jsonRat reads a coefficient exactly. Strings and json.Number go through
// big.Rat.SetString; a float64 from a plain json.Unmarshal is read from its
// shortest decimal form rather than its binary value.
func jsonRat(v interface{}) (*big.Rat, bool) {
	switch n := v.(type) {
	case string:
		return new(big.Rat).SetString(n)
	case json.Number:
		return new(big.Rat).SetString(n.String())
	case float64:
		return new(big.Rat).SetString(strconv.FormatFloat(n, 'g', -1, 64))
	}
	return toRat(v)
}

func jsonInt(v interface{}) (int, bool) {
	if _, ok := v.(string); ok {
		return 0, false
	}
	r, ok := jsonRat(v)
	if !ok {
		return 0, false
	}
	return ratInt(r)
}

// FromJSON decodes a generic JSON tree. Variables with the same label share
// one *Variable across the decoded tree.
func FromJSON(data map[string]interface{}) (Expr, error) {
	d := &decoder{vars: map[string]*Variable{}}
	return d.expr(data)
}

type decoder struct {
	vars map[string]*Variable
}

func (d *decoder) variable(label string) *Variable {
	if v, ok := d.vars[label]; ok {
		return v
	}
	v := NewVariable(label)
	d.vars[label] = v
	return v
}

func (d *decoder) expr(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subExpr := func(field string) (Expr, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		e, err := d.expr(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		return e, nil
	}

	subInt := func(field string) (int, error) {
		v, ok := data[field]
		if !ok {
			return 0, fmt.Errorf("%s: missing %q", typ, field)
		}
		n, ok := jsonInt(v)
		if !ok {
			return 0, fmt.Errorf("%s: %q must be an integer", typ, field)
		}
		return n, nil
	}

	pair := func(x, y string) (Expr, Expr, error) {
		a, err := subExpr(x)
		if err != nil {
			return nil, nil, err
		}
		b, err := subExpr(y)
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}

	switch typ {
	case "term":
		return d.term(data)

	case "add":
		a, b, err := pair("augend", "addend")
		if err != nil {
			return nil, err
		}
		return &Add{augend: a, addend: b}, nil

	case "mult":
		a, b, err := pair("multiplicand", "multiplier")
		if err != nil {
			return nil, err
		}
		return &Mult{multiplicand: a, multiplier: b}, nil

	case "div":
		a, b, err := pair("dividend", "divisor")
		if err != nil {
			return nil, err
		}
		return &Div{dividend: a, divisor: b}, nil

	case "pow":
		base, err := subExpr("base")
		if err != nil {
			return nil, err
		}
		n, err := subInt("exponent")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedExponent, err)
		}
		return &Pow{base: base, exponent: n}, nil
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}

func (d *decoder) term(data map[string]interface{}) (Expr, error) {
	t := &Term{coeff: ratOne()}
	if c, ok := data["coefficient"]; ok {
		r, ok := jsonRat(c)
		if !ok {
			return nil, fmt.Errorf("term: invalid coefficient: %v", c)
		}
		t.coeff = r
	}
	raw, ok := data["variables"]
	if !ok || raw == nil {
		t.canonicalize()
		return t, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("term: 'variables' must be an array")
	}
	for i, it := range list {
		m, ok := it.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("term: variables[%d] must be an object", i)
		}
		base, ok := m["base"].(string)
		if !ok || base == "" {
			return nil, fmt.Errorf("term: variables[%d].base must be a non-empty string", i)
		}
		exp := 1
		if e, ok := m["exponent"]; ok {
			n, ok := jsonInt(e)
			if !ok {
				return nil, fmt.Errorf("%w: term: variables[%d].exponent %v", ErrUnsupportedExponent, i, e)
			}
			exp = n
		}
		if err := t.mergeVar(VariablePower{Base: d.variable(base), Exponent: exp}, 1); err != nil {
			return nil, fmt.Errorf("term: variables[%d]: %w", i, err)
		}
	}
	t.canonicalize()
	return t, nil
}
