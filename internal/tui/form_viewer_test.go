package tui

import (
	"testing"

	"github.com/MKhiriev/go-tasklist/models"
	"github.com/stretchr/testify/assert"
)

func TestReadOnlyFormViewer_KeyOrder(t *testing.T) {
	out := NewReadOnlyFormViewer().Render(FormProps{
		Variables: map[string]any{"b": 2, "a": "x", "c": nil},
	})

	assert.Equal(t, "a: x\nb: 2\nc: -", out)
}

func TestReadOnlyFormViewer_LabelsFromSchema(t *testing.T) {
	schema := models.FormSchema(`{
		"components": [
			{"key": "amount", "label": "Amount"},
			{"type": "group", "components": [{"key": "comment", "label": "Comment"}]}
		]
	}`)

	out := NewReadOnlyFormViewer().Render(FormProps{
		Schema:    schema,
		Variables: map[string]any{"amount": 10, "comment": "ok", "other": true},
	})

	assert.Equal(t, "Amount: 10\nComment: ok\nother: true", out)
}

func TestReadOnlyFormViewer_Disabled(t *testing.T) {
	out := NewReadOnlyFormViewer().Render(FormProps{
		Variables: map[string]any{"a": []any{1, "two"}},
		Disabled:  true,
	})

	assert.Contains(t, out, `a: [1,"two"]`)
	assert.Contains(t, out, "(только чтение)")
}

func TestReadOnlyFormViewer_Empty(t *testing.T) {
	assert.Equal(t, "Нет переменных", NewReadOnlyFormViewer().Render(FormProps{}))
}

func TestSchemaLabels_InvalidSchema(t *testing.T) {
	assert.Empty(t, schemaLabels(models.FormSchema(`{not json`)))
	assert.Empty(t, schemaLabels(nil))
}
