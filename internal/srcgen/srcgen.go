// Package srcgen builds the small C program fragments the domain checks feed
// into probes. Fragments are plain strings composed with Join, which keeps
// the probe executor's input contract a single opaque program text.
package srcgen

import (
	"fmt"
	"strings"
)

// Includes renders one #include <...> directive per header, in order.
func Includes(headers []string) string {
	var b strings.Builder
	for _, h := range headers {
		fmt.Fprintf(&b, "#include <%s>\n", h)
	}
	return b.String()
}

// ExternDecls renders an external-linkage declaration per function. The
// deliberately wrong `char name()` prototype is the classic trick: it needs
// no header, and the linker resolves symbols by name alone.
func ExternDecls(functions []string) string {
	var b strings.Builder
	for _, fn := range functions {
		fmt.Fprintf(&b, "char %s();\n", fn)
	}
	return b.String()
}

// MainCalling renders a main function that references every named function,
// forcing the linker to resolve each symbol.
func MainCalling(functions []string) string {
	var b strings.Builder
	b.WriteString("int main() {\n")
	for _, fn := range functions {
		fmt.Fprintf(&b, "\t%s();\n", fn)
	}
	b.WriteString("\treturn 0;\n}\n")
	return b.String()
}

// TrivialMain renders a main function that does nothing and exits zero.
func TrivialMain() string {
	return "int main() {\n\treturn 0;\n}\n"
}

// Join concatenates fragments into one program text.
func Join(fragments ...string) string {
	return strings.Join(fragments, "")
}
