package outline

// Kind names the declaration shape a record was produced from.
type Kind string

const (
	KindFunctionDeclaration Kind = "FunctionDeclaration"
	KindFunctionExpression  Kind = "FunctionExpression"
	KindArrowFunction       Kind = "ArrowFunctionExpression"
	KindClassMethod         Kind = "ClassMethod"
	KindObjectMethod        Kind = "ObjectMethod"
)

// Kinds lists every declaration kind in a fixed order.
func Kinds() []Kind {
	return []Kind{
		KindFunctionDeclaration,
		KindFunctionExpression,
		KindArrowFunction,
		KindClassMethod,
		KindObjectMethod,
	}
}

type ContextKind string

const (
	ContextClass  ContextKind = "Class"
	ContextObject ContextKind = "Object"
)

// Context names the class or object literal lexically containing a
// declaration. Name is empty when the class is anonymous or the object
// literal is not bound to a variable.
type Context struct {
	Kind ContextKind `json:"kind"`
	Name string      `json:"name,omitempty"`
}

// Declaration is one outline entry.
//
// NameLine and NameColumn mark the end of the name token: NameLine is 1-based,
// NameColumn is 0-based and counted in UTF-16 code units. EndLine is the
// 1-based line where the declaration itself closes.
type Declaration struct {
	Name       string   `json:"name"`
	Kind       Kind     `json:"kind"`
	NameLine   int      `json:"nameLine"`
	NameColumn int      `json:"nameColumn"`
	EndLine    int      `json:"endLine"`
	Context    *Context `json:"context,omitempty"`
}

// QualifiedName joins the context name and the declaration name with a dot,
// e.g. "config.server.start" or "Foo.bar". A function stored as a property
// value already carries its key in the context path, which is returned as is.
func (d Declaration) QualifiedName() string {
	if d.Context == nil || d.Context.Name == "" {
		return d.Name
	}
	if d.Context.Kind == ContextObject && (d.Kind == KindFunctionExpression || d.Kind == KindArrowFunction) {
		return d.Context.Name
	}
	return d.Context.Name + "." + d.Name
}

// Result is the outline of one source text.
type Result struct {
	Declarations []Declaration
	// Recovered is true when the parser had to recover from syntax errors.
	Recovered bool
}
