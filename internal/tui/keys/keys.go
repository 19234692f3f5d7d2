package keys

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMapToSlice flattens a struct of key.Binding fields into a slice.
func KeyMapToSlice(keymap any) []key.Binding {
	v := reflect.ValueOf(keymap)
	if v.Kind() != reflect.Struct {
		return nil
	}
	bindings := make([]key.Binding, v.NumField())
	for i := range bindings {
		bindings[i] = v.Field(i).Interface().(key.Binding)
	}
	return bindings
}
