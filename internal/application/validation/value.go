// Package validation implementa los validadores de entidad: detección de campos
// requeridos ausentes y coerción de los valores crudos del cuerpo de la petición.
package validation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Value es un campo del payload tal como llegó: presente o no, con su valor decodificado.
// Los números JSON se conservan como json.Number para no perder precisión antes de la coerción.
type Value struct {
	raw     any
	present bool
}

// Of construye un Value presente.
func Of(raw any) Value {
	return Value{raw: raw, present: true}
}

// UnmarshalJSON marca el campo como presente (incluso si es null).
func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	v.raw = raw
	v.present = true
	return nil
}

// DecodeFields decodifica un objeto JSON en campos indexados por su clave exacta.
// A diferencia del decodificador de structs, "NAME" no cuenta como "name".
func DecodeFields(data []byte) (map[string]Value, error) {
	var fields map[string]Value
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// MarshalJSON devuelve el valor crudo; un campo ausente se serializa como null.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

// Present indica si la clave venía en el cuerpo.
func (v Value) Present() bool { return v.present }

// Raw devuelve el valor decodificado sin coerción.
func (v Value) Raw() any { return v.raw }

// Missing: ausente, null, o vacío/solo espacios tras convertirlo a texto.
func (v Value) Missing() bool {
	if !v.present || v.raw == nil {
		return true
	}
	return strings.TrimSpace(text(v.raw)) == ""
}

// String convierte a texto y recorta espacios.
func (v Value) String() string {
	if v.raw == nil {
		return ""
	}
	return strings.TrimSpace(text(v.raw))
}

// Number convierte a número. ok es false si el valor no representa un número finito.
func (v Value) Number() (n float64, ok bool) {
	switch x := v.raw.(type) {
	case nil:
		return 0, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case json.Number:
		return parseNumber(string(x))
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		return parseNumber(s)
	default:
		return 0, false
	}
}

// Bool convierte a booleano; def se usa cuando la clave no venía en el cuerpo.
func (v Value) Bool(def bool) bool {
	if !v.present {
		return def
	}
	switch x := v.raw.(type) {
	case nil:
		return false
	case bool:
		return x
	case json.Number:
		n, ok := parseNumber(string(x))
		return ok && n != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(x)); err == nil {
			return b
		}
		return x != ""
	default:
		return true
	}
}

// Strings normaliza una lista: cada elemento a texto recortado. Un escalar se
// toma como lista de un elemento; ausente o null da lista vacía.
func (v Value) Strings() []string {
	var items []any
	switch x := v.raw.(type) {
	case nil:
		return []string{}
	case []any:
		items = x
	default:
		items = []any{x}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, strings.TrimSpace(text(it)))
	}
	return out
}

func parseNumber(s string) (float64, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// text replica la conversión a cadena que esperan los clientes: listas unidas por
// coma, objetos como "[object Object]", null dentro de listas como vacío.
func text(raw any) string {
	switch x := raw.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		if d, err := decimal.NewFromString(string(x)); err == nil {
			return d.String()
		}
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []any:
		parts := make([]string, len(x))
		for i, it := range x {
			parts[i] = text(it)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return ""
	}
}
