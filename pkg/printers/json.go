package printers

import (
	"encoding/json"
	"fmt"
)

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	enc := json.NewEncoder(pp.out())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("printers: %w", err)
	}
	return nil
}

// Text writes s followed by a blank line.
func (pp *PrettyPrint) Text(s string) {
	_, _ = fmt.Fprintf(pp.out(), "%s\n\n", s)
}
