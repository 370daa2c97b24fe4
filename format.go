package cobracolor

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// placeholderToken replaces values whose keys are in the omit list.
const placeholderToken = "PLACEHOLDER"

// Style table for the pretty-printer. One template per visual role; the
// four key classes mirror field visibility (see keyClass).
var formatStyles = struct {
	title            Template
	key              Template
	keyProtected     Template
	keyPrivate       Template
	keyInheritedPriv Template
	typeName         Template
	placeholder      Template
}{
	title:            NewTemplate(Named("y"), NoColor, Bold),
	key:              NewTemplate(NoColor, NoColor, Bold, Selected),
	keyProtected:     NewTemplate(NoColor, NoColor, Bold),
	keyPrivate:       NewTemplate(NoColor, NoColor, Dim),
	keyInheritedPriv: NewTemplate(NoColor, NoColor, Dim, Strikethrough),
	typeName:         NewTemplate(Named("c"), NoColor, Italic),
	placeholder:      NewTemplate(NoColor, NoColor, Underline),
}

// keyClass is the visibility class of an entry's key, which picks its style.
type keyClass int

const (
	classPublic keyClass = iota // exported field or plain map key
	classProtected              // unexported field on the value's own type
	classPrivate                // exported field promoted from an embedded type
	classInheritedPrivate       // unexported field promoted from an embedded type
)

func (c keyClass) template() Template {
	switch c {
	case classProtected:
		return formatStyles.keyProtected
	case classPrivate:
		return formatStyles.keyPrivate
	case classInheritedPrivate:
		return formatStyles.keyInheritedPriv
	}
	return formatStyles.key
}

// entry is one formatted line before assembly.
type entry struct {
	key      string
	class    keyClass
	typeName string
	value    string
	truthy   bool
}

// FormatList renders a slice as numbered lines, one item per line, with the
// index zero-padded to the width of the total count.
func FormatList(items []any, display bool) string {
	lines := make([]string, 0, len(items))
	pad := digits(len(items))
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("#%0*d %v", pad, i+1, item))
	}
	result := strings.Join(lines, "\n")
	if display {
		SmartPrint(result)
	}
	return result
}

// FormatMap renders a map as numbered, styled lines in sorted key order.
// Keys listed in omits have truthy values replaced by a placeholder. An
// optional title is rendered as a styled header above the entries.
func FormatMap(target map[string]any, omits []string, title string, display bool) string {
	keys := make([]string, 0, len(target))
	for k := range target {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]entry, 0, len(keys))
	for _, k := range keys {
		val := target[k]
		entries = append(entries, entry{
			key:      k,
			class:    classPublic,
			typeName: fmt.Sprintf("%T", val),
			value:    fmt.Sprint(val),
			truthy:   truthy(reflect.ValueOf(val)),
		})
	}
	result := assembleEntries(entries, omits, title, "")
	if display {
		SmartPrint(result)
	}
	return result
}

// FormatStruct renders a struct's fields as numbered, styled lines. Field
// visibility picks the key style: exported, unexported, and both again for
// fields promoted from embedded types. Non-struct input degrades to a
// single explanatory entry rather than an error.
func FormatStruct(target any, omits []string, title string, display bool) string {
	v := reflect.ValueOf(target)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	var entries []entry
	var legend string
	if v.Kind() == reflect.Struct {
		entries = structEntries(v, false)
		legend = strings.Join([]string{
			formatStyles.key.Format("[Exported]").Rich(),
			formatStyles.keyProtected.Format("[unexported]").Rich(),
			formatStyles.keyPrivate.Format("[Embedded.Exported]").Rich(),
			formatStyles.keyInheritedPriv.Format("[Embedded.unexported]").Rich(),
		}, "  ")
	} else {
		entries = []entry{{
			key:      "Error",
			class:    classPublic,
			typeName: "string",
			value:    fmt.Sprintf("input target should be a struct or struct pointer, got %T", target),
			truthy:   true,
		}}
	}
	result := assembleEntries(entries, omits, title, legend)
	if display {
		SmartPrint(result)
	}
	return result
}

// structEntries flattens a struct value, descending one level into embedded
// structs and tagging their fields as inherited.
func structEntries(v reflect.Value, inherited bool) []entry {
	t := v.Type()
	entries := make([]entry, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		fv := v.Field(i)
		if field.Anonymous && fv.Kind() == reflect.Struct && !inherited {
			entries = append(entries, structEntries(fv, true)...)
			continue
		}
		class := classPublic
		switch {
		case inherited && field.IsExported():
			class = classPrivate
		case inherited:
			class = classInheritedPrivate
		case !field.IsExported():
			class = classProtected
		}
		entries = append(entries, entry{
			key:      field.Name,
			class:    class,
			typeName: field.Type.String(),
			value:    valueString(fv),
			truthy:   truthy(fv),
		})
	}
	return entries
}

// assembleEntries renders the header and the numbered entry lines.
func assembleEntries(entries []entry, omits []string, title, legend string) string {
	if len(entries) == 0 {
		return ""
	}
	pad := digits(len(entries))
	lines := make([]string, 0, len(entries)+2)
	indent := strings.Repeat(" ", pad+2)
	if title != "" {
		lines = append(lines, indent+formatStyles.title.Format("< "+title+" >").Rich())
	}
	if legend != "" {
		lines = append(lines, indent+legend)
	}
	for i, e := range entries {
		value := e.value
		if e.truthy && contains(omits, e.key) {
			value = formatStyles.placeholder.Format(placeholderToken).Rich()
		}
		lines = append(lines, fmt.Sprintf("#%0*d %s%s: %s",
			pad, i+1,
			e.class.template().Format("["+e.key+"]").Rich(),
			formatStyles.typeName.Format(e.typeName).Rich(),
			value,
		))
	}
	return strings.Join(lines, "\n")
}

// valueString formats a field value, including unexported fields that
// cannot go through an interface.
func valueString(v reflect.Value) string {
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	switch v.Kind() {
	case reflect.Bool:
		return fmt.Sprint(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprint(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprint(v.Uint())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprint(v.Float())
	case reflect.String:
		return v.String()
	}
	return "<" + v.Type().String() + ">"
}

// truthy reports whether a value would survive the omit-list placeholder
// check: non-zero per reflection, with invalid (nil interface) as false.
func truthy(v reflect.Value) bool {
	return v.IsValid() && !v.IsZero()
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// digits returns the decimal width of n, minimum 1.
func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
