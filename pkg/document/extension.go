package document

import (
	"errors"
	"fmt"
	"slices"
)

// Extension errors.
var (
	ErrNotExtensible     = errors.New("document: property type does not accept extensions")
	ErrUnsupportedParent = errors.New("document: extension property does not support this parent type")
)

const refExtProperties = "properties"

const extensionPrefix = "extensions."

// Extension is one enabled extension on a document. It owns the
// ExtensionProperty instances it creates; disposing the Extension disposes
// them all. Payload schemas are out of scope here — extension-specific data
// rides in each ExtensionProperty's extras and in the codec hooks of the
// gltf package.
type Extension struct {
	property
	extensionName string
	required      bool
}

// ExtensionName returns the wire name, e.g. "KHR_materials_unlit".
func (e *Extension) ExtensionName() string { return e.extensionName }

// Required reports whether the extension is listed in extensionsRequired.
func (e *Extension) Required() bool { return e.required }

// SetRequired marks the extension as required.
func (e *Extension) SetRequired(required bool) *Extension {
	e.check()
	e.required = required
	return e
}

// CreateProperty creates an ExtensionProperty owned by this extension.
// parentKinds lists the property kinds that may reference it.
func (e *Extension) CreateProperty(name string, parentKinds ...Kind) *ExtensionProperty {
	e.check()
	ep := &ExtensionProperty{extension: e, parentKinds: parentKinds}
	initProperty(e.doc, ep, &ep.property, KindExtensionProperty, name)
	e.addRef(refExtProperties, ep)
	return ep
}

// ListProperties returns the extension's owned properties.
func (e *Extension) ListProperties() []*ExtensionProperty {
	return listAs[*ExtensionProperty](e.listRefs(refExtProperties))
}

// Dispose disposes the extension and every property it owns.
func (e *Extension) Dispose() {
	for _, ep := range e.ListProperties() {
		ep.Dispose()
	}
	e.property.Dispose()
}

// Equals compares name and required flag. Owned properties are deliberately
// excluded: two documents may enable the same extension with different
// attachment sets.
func (e *Extension) Equals(other Property) bool {
	o, ok := other.(*Extension)
	if !ok {
		return false
	}
	return e.extensionName == o.extensionName && e.required == o.required
}

// ExtensionProperty is a property owned by exactly one Extension. It declares
// which parent property kinds may reference it; attachment through
// AttachExtension enforces that declaration.
type ExtensionProperty struct {
	property
	extension   *Extension
	parentKinds []Kind
	fields      map[string]any
}

// Extension returns the owning extension.
func (ep *ExtensionProperty) Extension() *Extension { return ep.extension }

// ParentKinds returns the property kinds that may reference this property.
func (ep *ExtensionProperty) ParentKinds() []Kind { return ep.parentKinds }

// Fields returns the extension's schema-free payload fields.
func (ep *ExtensionProperty) Fields() map[string]any { return ep.fields }

// SetFields replaces the payload fields.
func (ep *ExtensionProperty) SetFields(fields map[string]any) *ExtensionProperty {
	ep.check()
	ep.fields = fields
	return ep
}

// Equals compares extension name, parent kinds, and payload fields.
func (ep *ExtensionProperty) Equals(other Property) bool {
	o, ok := other.(*ExtensionProperty)
	if !ok {
		return false
	}
	if ep.extension.extensionName != o.extension.extensionName {
		return false
	}
	if !slices.Equal(ep.parentKinds, o.parentKinds) || len(ep.fields) != len(o.fields) {
		return false
	}
	for k, v := range ep.fields {
		if ov, found := o.fields[k]; !found || ov != v {
			return false
		}
	}
	return ep.equalsBase(&o.property)
}

// AttachExtension references ep from parent under the extension's name.
// Root, Extension, and ExtensionProperty parents are not extensible; other
// parents must appear in ep's declared parent kinds.
func AttachExtension(parent Property, ep *ExtensionProperty) error {
	switch parent.Kind() {
	case KindRoot, KindExtension, KindExtensionProperty:
		return fmt.Errorf("%w: %s", ErrNotExtensible, parent.Kind())
	}
	if !slices.Contains(ep.parentKinds, parent.Kind()) {
		return fmt.Errorf("%w: %s on %s", ErrUnsupportedParent, ep.extension.extensionName, parent.Kind())
	}
	parent.base().setRef(extensionPrefix+ep.extension.extensionName, ep)
	return nil
}

// GetExtension returns the ExtensionProperty attached to parent under the
// given extension name, or nil.
func GetExtension(parent Property, extensionName string) *ExtensionProperty {
	if p := parent.base().getRef(extensionPrefix + extensionName); p != nil {
		return p.(*ExtensionProperty)
	}
	return nil
}

// DetachExtension removes the named extension property from parent, if
// attached.
func DetachExtension(parent Property, extensionName string) {
	parent.base().setRef(extensionPrefix+extensionName, nil)
}
