package tui

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-tasklist/models"
	"github.com/tidwall/gjson"
)

// FormProps is everything a form viewer needs to draw a task form.
type FormProps struct {
	Schema    models.FormSchema
	Variables map[string]any
	// Disabled makes the form read-only, e.g. while the task is not claimed
	// by the current user.
	Disabled bool
}

// FormViewer renders a task form. The meaning of the schema is up to the
// implementation.
type FormViewer interface {
	Render(props FormProps) string
}

// readOnlyFormViewer lists the task variables in key order. Labels are taken
// from schema components that declare a matching "key".
type readOnlyFormViewer struct{}

// NewReadOnlyFormViewer returns the default [FormViewer].
func NewReadOnlyFormViewer() FormViewer {
	return readOnlyFormViewer{}
}

func (readOnlyFormViewer) Render(props FormProps) string {
	if len(props.Variables) == 0 {
		return "Нет переменных"
	}

	labels := schemaLabels(props.Schema)

	var b strings.Builder
	for i, k := range slices.Sorted(maps.Keys(props.Variables)) {
		if i > 0 {
			b.WriteString("\n")
		}
		label := k
		if l, ok := labels[k]; ok {
			label = l
		}
		fmt.Fprintf(&b, "%s: %s", label, formatValue(props.Variables[k]))
	}

	if props.Disabled {
		b.WriteString("\n\n(только чтение)")
	}

	return b.String()
}

// schemaLabels maps component keys to labels, searching nested components.
func schemaLabels(schema models.FormSchema) map[string]string {
	labels := make(map[string]string)
	if len(schema) == 0 || !gjson.ValidBytes(schema) {
		return labels
	}

	var walk func(components gjson.Result)
	walk = func(components gjson.Result) {
		components.ForEach(func(_, c gjson.Result) bool {
			k, l := c.Get("key").String(), c.Get("label").String()
			if k != "" && l != "" {
				labels[k] = l
			}
			walk(c.Get("components"))
			return true
		})
	}
	walk(gjson.GetBytes(schema, "components"))

	return labels
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		return valueOrDash(val)
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	default:
		return fmt.Sprint(val)
	}
}
