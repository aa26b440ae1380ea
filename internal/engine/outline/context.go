package outline

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

func isClassDeclaration(kind string) bool {
	switch kind {
	case "class_declaration", "abstract_class_declaration":
		return true
	}
	return false
}

// classContext names the nearest class declaration enclosing the class body
// at ancestors[bodyIdx]. Class expressions are passed over, so a method of
// `const X = class Bar {}` or of an anonymous class outside any declaration
// gets a Class context with an empty name.
func (w *walker) classContext(bodyIdx int) *Context {
	for i := bodyIdx; i >= 0; i-- {
		n := w.ancestors[i]
		if !isClassDeclaration(n.Kind()) {
			continue
		}
		name := n.ChildByFieldName("name")
		return &Context{Kind: ContextClass, Name: nodeText(w.src, name)}
	}
	return &Context{Kind: ContextClass}
}

// objectContext builds the Object context for the object literal at
// ancestors[objIdx].
func (w *walker) objectContext(objIdx int) *Context {
	if objIdx < 0 || w.ancestors[objIdx].Kind() != "object" {
		return &Context{Kind: ContextObject}
	}
	return &Context{Kind: ContextObject, Name: w.objectPath(objIdx)}
}

// propertyContext builds the Object context for a function stored under key
// in the object literal at ancestors[objIdx]: the object's path plus the key.
// An unbound object leaves the name empty.
func (w *walker) propertyContext(objIdx int, key *sitter.Node) *Context {
	ctx := w.objectContext(objIdx)
	if ctx.Name != "" {
		ctx.Name += "." + nodeText(w.src, key)
	}
	return ctx
}

// objectPath returns the dotted path of the object literal at ancestors[i]:
// the variable it is assigned to, followed by the keys of every enclosing
// property. It returns "" when the chain does not end in a variable binding.
func (w *walker) objectPath(i int) string {
	parentIdx, value := w.bindingParent(i, w.ancestors[i])
	if parentIdx < 0 {
		return ""
	}
	parent := w.ancestors[parentIdx]

	switch parent.Kind() {
	case "variable_declarator":
		if !isFieldValue(parent, "value", value) {
			return ""
		}
		name := parent.ChildByFieldName("name")
		if !isIdentifier(name) {
			return ""
		}
		return nodeText(w.src, name)
	case "pair":
		if !isFieldValue(parent, "value", value) {
			return ""
		}
		key := parent.ChildByFieldName("key")
		if !isPropertyName(key) {
			return ""
		}
		outer := parentIdx - 1
		if outer < 0 || w.ancestors[outer].Kind() != "object" {
			return ""
		}
		root := w.objectPath(outer)
		if root == "" {
			return ""
		}
		return root + "." + nodeText(w.src, key)
	}
	return ""
}
