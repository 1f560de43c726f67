package dom

import (
	"fmt"
)

// applyProperty writes a bound value onto the element with the
// property-specific coercion rules.
func applyProperty(el *Element, prop string, v any) {
	switch prop {
	case "value":
		// nil coerces to the empty string; value-bearing elements use
		// their native setter, everything else a plain property.
		s := ""
		if v != nil {
			s = coerceString(v)
		}
		if el.IsValueBearing() {
			el.SetValue(s)
		} else {
			el.SetProperty("value", s)
		}
	case "checked", "disabled":
		el.SetProperty(prop, truthy(v))
	case "ariaLabel":
		// nil passes through as nil.
		if v == nil {
			el.SetProperty("ariaLabel", nil)
			return
		}
		el.SetProperty("ariaLabel", coerceString(v))
	}
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// truthy mirrors host-language boolean coercion: nil, false, numeric zero,
// and the empty string are false; everything else is true.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case string:
		return x != ""
	}
	return true
}
