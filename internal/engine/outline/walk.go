package outline

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// shape is the closed set of node shapes the walker reacts to.
type shape uint8

const (
	shapeNone shape = iota
	shapeFunctionDeclaration
	shapeFunctionExpression
	shapeArrowFunction
	shapeMethod
)

func shapeOf(kind string) shape {
	switch kind {
	case "function_declaration", "generator_function_declaration":
		return shapeFunctionDeclaration
	case "function_expression", "function", "generator_function":
		return shapeFunctionExpression
	case "arrow_function":
		return shapeArrowFunction
	case "method_definition":
		return shapeMethod
	default:
		return shapeNone
	}
}

// walker performs a single pre-order traversal. ancestors holds the path from
// the root to the parent of the node being visited; the tree is never asked
// for parent links.
type walker struct {
	src       []byte
	ancestors []*sitter.Node
	out       []Declaration
}

// walk visits named nodes in pre-order with a tree cursor. Unnamed tokens are
// stepped over but never become ancestors.
func (w *walker) walk(root *sitter.Node) {
	c := root.Walk()
	defer c.Close()

	var pushed []bool
	for {
		n := c.Node()
		named := n.IsNamed()
		if named {
			w.visit(n)
		}

		if c.GotoFirstChild() {
			if named {
				w.ancestors = append(w.ancestors, n)
			}
			pushed = append(pushed, named)
			continue
		}

		for !c.GotoNextSibling() {
			if len(pushed) == 0 || !c.GotoParent() {
				return
			}
			if pushed[len(pushed)-1] {
				w.ancestors = w.ancestors[:len(w.ancestors)-1]
			}
			pushed = pushed[:len(pushed)-1]
		}
	}
}

func (w *walker) visit(n *sitter.Node) {
	switch shapeOf(n.Kind()) {
	case shapeFunctionDeclaration:
		w.functionDeclaration(n)
	case shapeFunctionExpression:
		w.processFunctionExpression(n, KindFunctionExpression)
	case shapeArrowFunction:
		w.processFunctionExpression(n, KindArrowFunction)
	case shapeMethod:
		w.method(n)
	default:
	}
}

// functionDeclaration never carries a context, even when nested in another
// function body.
func (w *walker) functionDeclaration(n *sitter.Node) {
	name := n.ChildByFieldName("name")
	if !isIdentifier(name) {
		return
	}
	w.emit(n, name, KindFunctionDeclaration, nil)
}

// processFunctionExpression names function and arrow expressions from the
// binding they are the value of. A property value's Object context ends with
// its own key, e.g. "api.get" for `const api = { get: () => {} }`. Only two bindings count: a variable
// declarator and an object literal property. Everything else (call
// arguments, return values, defaults, class fields) stays anonymous.
func (w *walker) processFunctionExpression(n *sitter.Node, kind Kind) {
	parentIdx, value := w.bindingParent(len(w.ancestors), n)
	if parentIdx < 0 {
		return
	}
	parent := w.ancestors[parentIdx]

	switch parent.Kind() {
	case "variable_declarator":
		if !isFieldValue(parent, "value", value) {
			return
		}
		name := parent.ChildByFieldName("name")
		if !isIdentifier(name) {
			return
		}
		w.emit(n, name, kind, nil)
	case "pair":
		if !isFieldValue(parent, "value", value) {
			return
		}
		key := parent.ChildByFieldName("key")
		if !isPropertyName(key) {
			return
		}
		w.emit(n, key, kind, w.propertyContext(parentIdx-1, key))
	}
}

// method handles method syntax; the enclosing body decides between a class
// method and an object method.
func (w *walker) method(n *sitter.Node) {
	if len(w.ancestors) == 0 {
		return
	}
	name := n.ChildByFieldName("name")
	if !isPropertyName(name) {
		return
	}

	top := len(w.ancestors) - 1
	switch w.ancestors[top].Kind() {
	case "class_body":
		w.emit(n, name, KindClassMethod, w.classContext(top))
	case "object":
		w.emit(n, name, KindObjectMethod, w.objectContext(top))
	}
}

func (w *walker) emit(decl, name *sitter.Node, kind Kind, ctx *Context) {
	text := nodeText(w.src, name)
	if text == "" {
		return
	}
	line, column := endPosition(w.src, name)
	w.out = append(w.out, Declaration{
		Name:       text,
		Kind:       kind,
		NameLine:   line,
		NameColumn: column,
		EndLine:    endLine(decl),
		Context:    ctx,
	})
}

// bindingParent returns the index of the first ancestor above position idx
// that is not a parenthesized expression, together with its direct child on
// the path. idx == len(w.ancestors) addresses the node being visited.
func (w *walker) bindingParent(idx int, child *sitter.Node) (int, *sitter.Node) {
	j := idx - 1
	for j >= 0 && w.ancestors[j].Kind() == "parenthesized_expression" {
		child = w.ancestors[j]
		j--
	}
	return j, child
}

func isIdentifier(n *sitter.Node) bool {
	return n != nil && n.Kind() == "identifier"
}

// isPropertyName accepts plain identifier keys only. String, numeric,
// computed and private (#name) keys have no name in the outline.
func isPropertyName(n *sitter.Node) bool {
	if n == nil {
		return false
	}
	switch n.Kind() {
	case "property_identifier", "identifier":
		return true
	}
	return false
}

func isFieldValue(parent *sitter.Node, field string, child *sitter.Node) bool {
	v := parent.ChildByFieldName(field)
	return v != nil && child != nil && v.Id() == child.Id()
}
