package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildReceiptSchema returns a JSON-Schema (draft 2020-12 subset) for the
// serialized ParsedReceipt, as a generic map. Callers can hand it to
// downstream consumers as the output contract and validate locally.
func BuildReceiptSchema() map[string]any {
	props := map[string]any{
		"merchant_raw":   map[string]any{"type": "string"},
		"merchant_chain": map[string]any{"type": "string"},
		"date": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"day":   map[string]any{"type": "integer", "minimum": 1, "maximum": 31},
				"month": map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
				"year":  map[string]any{"type": "integer", "minimum": 2020, "maximum": 2030},
			},
			"required": []string{"day", "month", "year"},
		},
		"time": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"hour":   map[string]any{"type": "integer", "minimum": 0, "maximum": 23},
				"minute": map[string]any{"type": "integer", "minimum": 0, "maximum": 59},
			},
			"required": []string{"hour", "minute"},
		},
		"subtotal":       decimalProp(),
		"discount_total": decimalProp(),
		"vat_total":      decimalProp(),
		"total":          decimalProp(),
		"vat": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"rate":   map[string]any{"type": "integer", "minimum": 0, "maximum": 99},
					"amount": decimalProp(),
				},
				"required": []string{"rate", "amount"},
			},
		},
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"description": map[string]any{"type": "string", "minLength": 1},
					"qty":         decimalProp(),
					"unit":        map[string]any{"type": "string"},
					"line_total":  decimalProp(),
				},
				"required": []string{"description", "line_total"},
			},
		},
		"payment_method": map[string]any{"type": "string"},
		"masked_pan":     map[string]any{"type": "string", "pattern": `^[* ]+\d{4}$`},
		"card_scheme":    map[string]any{"type": "string"},
		"receipt_number": map[string]any{"type": "string", "minLength": 6},
		"fiscal_number":  map[string]any{"type": "string", "pattern": `^\d{10,11}$`},
		"address_lines":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"confidence":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"warnings":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"errors":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"valid":          map[string]any{"type": "boolean"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"confidence", "warnings", "valid"},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d+)?$`,
	}
}

// ValidateOutput validates a serialized ParsedReceipt against the output
// contract.
func ValidateOutput(data []byte) error {
	b, err := json.Marshal(BuildReceiptSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("receipt.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("receipt.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
