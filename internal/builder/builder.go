// Package builder derives the entity field model from accessor-convention
// method descriptors and assembles entity descriptors from it.
package builder

import (
	"strings"

	"github.com/entikit/entitygen/internal/models"
)

// ImplSuffix is appended to an interface name to form the implementation
// type name.
const ImplSuffix = "Impl"

// BuildFieldTable walks the method descriptors in order and infers one
// field per accessor group.
//
// The prefixes "get", "set" and "is" are matched case-sensitively on the
// literal method name; everything after the prefix is lowercased with no
// further validation, so getURL yields the field "url" and getX and getx
// collide to the same field. A void-shaped method is a setter and takes its
// field type from the first parameter; a void-shaped method with no
// parameters is malformed and contributes nothing. The first occurrence of
// a field name wins: later getters or setters for the same name never
// overwrite the recorded type or identifier flag.
//
// The builder is a pure transformation. Skipped descriptors produce no
// diagnostics; reporting is the caller's concern.
func BuildFieldTable(methods []models.MethodDescriptor) models.FieldTable {
	var table models.FieldTable

	for _, m := range methods {
		var name string
		switch {
		case strings.HasPrefix(m.Name, "get"), strings.HasPrefix(m.Name, "set"):
			name = strings.ToLower(m.Name[3:])
		case strings.HasPrefix(m.Name, "is"):
			name = strings.ToLower(m.Name[2:])
		default:
			continue
		}

		var fieldType string
		if m.ReturnType == "" {
			// Setter shape: the field type is the first parameter's type.
			if len(m.ParamTypes) == 0 {
				continue
			}
			fieldType = m.ParamTypes[0]
		} else {
			fieldType = m.ReturnType
		}

		if table.Contains(name) {
			continue
		}

		table = append(table, models.FieldEntry{
			Name:       name,
			Type:       fieldType,
			Identifier: m.Identifier,
		})
	}

	return table
}

// AssembleDescriptor builds the entity descriptor for one interface. The
// implementation name is the interface name plus the fixed suffix, and the
// qualified name prefixes it with the package name unless the package is
// empty. Pure construction, no failure modes.
func AssembleDescriptor(interfaceName, packageName string, fields models.FieldTable) models.EntityDescriptor {
	implName := interfaceName + ImplSuffix

	qualified := implName
	if packageName != "" {
		qualified = packageName + "." + implName
	}

	return models.EntityDescriptor{
		PackageName:   packageName,
		SourceName:    interfaceName,
		ImplName:      implName,
		QualifiedName: qualified,
		Fields:        fields,
	}
}
