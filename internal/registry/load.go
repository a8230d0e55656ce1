package registry

import (
	"fmt"
	"strings"

	"github.com/google/galogen/internal/xmltree"
)

// Load walks a parsed registry document once and builds the entity
// store. Groups resolve their enumerant members eagerly against the
// target API, which is why the API must be known at load time and why
// groups load after enumerants.
func Load(root *xmltree.Element, api string) (*Store, error) {
	store := NewStore()

	if types := root.Child("types"); types != nil {
		for _, el := range types.ChildrenNamed("type") {
			info, err := loadType(el)
			if err != nil {
				return nil, err
			}
			addVariant(store.Types, info.Name, info)
		}
	}

	if commands := root.Child("commands"); commands != nil {
		for _, el := range commands.ChildrenNamed("command") {
			info, err := loadCommand(el)
			if err != nil {
				return nil, err
			}
			addVariant(store.Commands, info.Name, info)
		}
	}

	// The registry holds multiple <enums> containers, one per value range.
	for _, enums := range root.ChildrenNamed("enums") {
		for _, el := range enums.ChildrenNamed("enum") {
			info, err := loadEnumerant(el)
			if err != nil {
				return nil, err
			}
			addVariant(store.Enums, info.Name, info)
		}
	}

	if groups := root.Child("groups"); groups != nil {
		for _, el := range groups.ChildrenNamed("group") {
			info, err := loadGroup(el, store, api)
			if err != nil {
				return nil, err
			}
			addVariant(store.Groups, info.Name, info)
		}
	}

	return store, nil
}

// loadType builds a TypeInfo from a <type> element. The C declaration is
// the element's text interleaved with its children in document order, so
// reordering children changes the emitted literal.
func loadType(e *xmltree.Element) (*TypeInfo, error) {
	info := &TypeInfo{
		Name:     e.Attr("name"),
		Requires: e.Attr("requires"),
		API:      e.Attr("api"),
	}
	for _, n := range e.Children {
		switch c := n.(type) {
		case xmltree.Text:
			info.CDecl += string(c)
		case *xmltree.Element:
			switch c.Tag {
			case "name":
				info.Name = c.Text()
				info.CDecl += " " + info.Name
			case "apientry":
				info.CDecl += " GL_APIENTRY "
			default:
				return nil, fmt.Errorf("unexpected element <%s> in type definition", c.Tag)
			}
		}
	}
	if info.Name == "" {
		return nil, fmt.Errorf("type missing \"name\" attribute")
	}
	return info, nil
}

// loadEnumerant builds an EnumerantInfo from an <enum> element.
func loadEnumerant(e *xmltree.Element) (*EnumerantInfo, error) {
	info := &EnumerantInfo{
		Name:   e.Attr("name"),
		Value:  e.Attr("value"),
		Suffix: e.Attr("type"),
		Alias:  e.Attr("alias"),
		API:    e.Attr("api"),
	}
	if info.Name == "" || info.Value == "" {
		return nil, fmt.Errorf("enumerant missing \"name\" or \"value\" attribute")
	}
	return info, nil
}

// loadGroup builds a GroupInfo from a <group> element, resolving each
// member reference against the already-loaded enumerants.
func loadGroup(e *xmltree.Element, store *Store, api string) (*GroupInfo, error) {
	info := &GroupInfo{Name: e.Attr("name")}
	if info.Name == "" {
		return nil, fmt.Errorf("group missing \"name\" attribute")
	}
	for _, ref := range e.ChildrenNamed("enum") {
		name := ref.Attr("name")
		if name == "" {
			return nil, fmt.Errorf("enum reference in group %q missing \"name\" attribute", info.Name)
		}
		enum, err := store.ResolveEnum(name, api)
		if err != nil {
			return nil, fmt.Errorf("resolving member of group %q: %w", info.Name, err)
		}
		info.Enums = append(info.Enums, enum)
	}
	return info, nil
}

// loadParam builds a ParamInfo from a <param> element.
func loadParam(e *xmltree.Element) (*ParamInfo, error) {
	info := &ParamInfo{
		Group: e.Attr("group"),
		Len:   e.Attr("len"),
	}
	for _, n := range e.Children {
		switch c := n.(type) {
		case xmltree.Text:
			info.CType += string(c)
		case *xmltree.Element:
			switch c.Tag {
			case "ptype":
				info.ReferencedType = c.Text()
				info.CType += info.ReferencedType
			case "name":
				info.Name = c.Text()
			default:
				return nil, fmt.Errorf("unexpected element <%s> in parameter definition", c.Tag)
			}
		}
	}
	return info, nil
}

// loadCommand builds a CommandInfo from a <command> element. The return
// type is reconstructed from the <proto> sub-tree and trimmed; a <ptype>
// inside it yields the referenced API type.
func loadCommand(e *xmltree.Element) (*CommandInfo, error) {
	info := &CommandInfo{}

	proto := e.Child("proto")
	if proto == nil {
		return nil, fmt.Errorf("command missing <proto> element")
	}
	for _, n := range proto.Children {
		switch c := n.(type) {
		case xmltree.Text:
			info.ReturnCType += " " + string(c)
			info.Prototype += string(c)
		case *xmltree.Element:
			switch c.Tag {
			case "ptype":
				info.ReturnCType += " " + c.Text()
				info.ReferencedType = c.Text()
				info.Prototype += c.Text()
			case "name":
				info.Name = c.Text()
				info.Prototype += info.Name
			default:
				return nil, fmt.Errorf("unexpected element <%s> in command prototype", c.Tag)
			}
		}
	}
	info.ReturnCType = strings.TrimSpace(info.ReturnCType)
	if info.Name == "" {
		return nil, fmt.Errorf("command missing <name> in prototype")
	}

	for _, p := range e.ChildrenNamed("param") {
		param, err := loadParam(p)
		if err != nil {
			return nil, fmt.Errorf("in command %q: %w", info.Name, err)
		}
		info.Parameters = append(info.Parameters, *param)
	}

	if alias := e.Child("alias"); alias != nil {
		info.Alias = alias.Attr("name")
	}
	if vec := e.Child("vecequiv"); vec != nil {
		info.VecEquiv = vec.Attr("name")
	}
	return info, nil
}
