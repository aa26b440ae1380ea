package parser

import (
	"testing"
)

func fuzzDialect(f *testing.F, d Dialect, seeds ...string) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
	loader, err := NewGrammarLoader()
	if err != nil {
		f.Fatal(err)
	}
	p := NewParser(loader)

	f.Fuzz(func(t *testing.T, data []byte) {
		tree, err := p.Parse(d, data)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		defer tree.Close()

		root := tree.RootNode()
		if root == nil {
			t.Fatal("nil root")
		}
		if int(root.EndByte()) > len(data) {
			t.Fatalf("root ends at %d, input is %d bytes", root.EndByte(), len(data))
		}
	})
}

func FuzzJavaScriptParser(f *testing.F) {
	fuzzDialect(f, DialectJavaScript,
		"function main() {\n  console.log('hello')\n}\n",
		"const o = { a() {}, b: () => 1 }",
	)
}

func FuzzTSXParser(f *testing.F) {
	fuzzDialect(f, DialectTSX,
		"export class A<T> { run(x: T): void {} }",
		"const C = () => <div>{x}</div>",
	)
}
