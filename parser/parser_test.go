/*
File    : dartlint/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/dartlint/ast"
	"github.com/akashmaji946/dartlint/lexer"
)

func parseSrc(t *testing.T, src string) (*ast.Program, int) {
	t.Helper()
	tokens, lexErrs := lexer.Tokenize(src)
	require.Empty(t, lexErrs)
	prog, errs := Parse(tokens)
	return prog, len(errs)
}

func TestParse_VarDeclWithInitializer(t *testing.T) {
	prog, nerr := parseSrc(t, `var x = 5;`)
	assert.Equal(t, 0, nerr)
	require.Len(t, prog.Statements, 1)
	decl, ok := prog.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "var", decl.Declarator)
	assert.Equal(t, "x", decl.Name)
	require.NotNil(t, decl.Initializer)
	lit, ok := decl.Initializer.(*ast.IntegerLit)
	require.True(t, ok)
	assert.EqualValues(t, 5, lit.Value)
}

func TestParse_TypedVarDecl(t *testing.T) {
	prog, nerr := parseSrc(t, `int count = 0;`)
	assert.Equal(t, 0, nerr)
	decl := prog.Statements[0].(*ast.VarDecl)
	assert.Equal(t, "int", decl.Declarator)
	assert.Equal(t, "count", decl.Name)
}

func TestParse_Assignment(t *testing.T) {
	prog, nerr := parseSrc(t, `var x; x = 3;`)
	assert.Equal(t, 0, nerr)
	require.Len(t, prog.Statements, 2)
	assign, ok := prog.Statements[1].(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Name)
}

func TestParse_IfElseChain(t *testing.T) {
	prog, nerr := parseSrc(t, `
if (x > 0) {
  print(1);
} else if (x < 0) {
  print(2);
} else {
  print(3);
}`)
	assert.Equal(t, 0, nerr)
	ifStmt := prog.Statements[0].(*ast.If)
	require.NotNil(t, ifStmt.Elif)
	assert.NotNil(t, ifStmt.Elif.Cond)
	require.NotNil(t, ifStmt.Elif.Next)
	assert.Nil(t, ifStmt.Elif.Next.Cond) // terminal else
}

func TestParse_DanglingElseBindsToNearestIf(t *testing.T) {
	prog, nerr := parseSrc(t, `
if (a)
  if (b)
    print(1);
  else
    print(2);
`)
	assert.Equal(t, 0, nerr)
	outer := prog.Statements[0].(*ast.If)
	assert.Nil(t, outer.Elif)
	inner := outer.Then.Statements[0].(*ast.If)
	require.NotNil(t, inner.Elif)
}

func TestParse_WhileLoop(t *testing.T) {
	prog, nerr := parseSrc(t, `while (x < 10) { x = x + 1; }`)
	assert.Equal(t, 0, nerr)
	_, ok := prog.Statements[0].(*ast.While)
	assert.True(t, ok)
}

func TestParse_DoWhileLoop(t *testing.T) {
	prog, nerr := parseSrc(t, `do { x = x + 1; } while (x < 10);`)
	assert.Equal(t, 0, nerr)
	_, ok := prog.Statements[0].(*ast.DoWhile)
	assert.True(t, ok)
}

func TestParse_ClassicForLoop(t *testing.T) {
	prog, nerr := parseSrc(t, `for (int i = 0; i < 10; i = i + 1) { print(i); }`)
	assert.Equal(t, 0, nerr)
	forStmt, ok := prog.Statements[0].(*ast.For)
	require.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Update)
}

func TestParse_ForInLoop(t *testing.T) {
	prog, nerr := parseSrc(t, `for (var item in items) { print(item); }`)
	assert.Equal(t, 0, nerr)
	forIn, ok := prog.Statements[0].(*ast.ForIn)
	require.True(t, ok)
	assert.True(t, forIn.DeclaresVar)
	assert.Equal(t, "item", forIn.Name)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	prog, nerr := parseSrc(t, `int add(int a, int b) { return a + b; }`)
	assert.Equal(t, 0, nerr)
	fn, ok := prog.Statements[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "int", fn.ReturnType)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.False(t, fn.IsArrow)
}

func TestParse_ArrowFunction(t *testing.T) {
	prog, nerr := parseSrc(t, `int square(int n) => n * n;`)
	assert.Equal(t, 0, nerr)
	fn := prog.Statements[0].(*ast.Function)
	assert.True(t, fn.IsArrow)
	assert.NotNil(t, fn.ArrowExpr)
}

func TestParse_VoidFunction(t *testing.T) {
	prog, nerr := parseSrc(t, `void greet() { print("hi"); }`)
	assert.Equal(t, 0, nerr)
	fn := prog.Statements[0].(*ast.Function)
	assert.True(t, fn.IsVoid)
}

func TestParse_PrintCallRecognised(t *testing.T) {
	prog, nerr := parseSrc(t, `print("hello");`)
	assert.Equal(t, 0, nerr)
	pr, ok := prog.Statements[0].(*ast.Print)
	require.True(t, ok)
	assert.Equal(t, "print", pr.Name)
	require.Len(t, pr.Args, 1)
}

func TestParse_ListAndMapLiterals(t *testing.T) {
	prog, nerr := parseSrc(t, `var xs = [1, 2, 3]; var m = {"a": 1};`)
	assert.Equal(t, 0, nerr)
	list := prog.Statements[0].(*ast.VarDecl).Initializer.(*ast.ListLit)
	assert.Len(t, list.Elements, 3)
	mapLit := prog.Statements[1].(*ast.VarDecl).Initializer.(*ast.MapLit)
	require.Len(t, mapLit.Entries, 1)
	assert.Equal(t, "a", mapLit.Entries[0].Key.Value)
}

func TestParse_ClassDeclaration(t *testing.T) {
	prog, nerr := parseSrc(t, `
class Point {
  int x;
  int y;
  int sum() { return x + y; }
}`)
	assert.Equal(t, 0, nerr)
	class := prog.Statements[0].(*ast.ClassDecl)
	assert.Equal(t, "Point", class.Name)
	assert.Len(t, class.Members, 3)
}

func TestParse_ClassMethodNamedGet(t *testing.T) {
	prog, nerr := parseSrc(t, `
class C {
  int v;
  int get() { return v; }
}`)
	assert.Equal(t, 0, nerr)
	class := prog.Statements[0].(*ast.ClassDecl)
	require.Len(t, class.Members, 2)
	method, ok := class.Members[1].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "get", method.Name)
}

func TestParse_InputReceiverMethod(t *testing.T) {
	prog, nerr := parseSrc(t, `var line = stdin.readLineSync();`)
	assert.Equal(t, 0, nerr)
	decl := prog.Statements[0].(*ast.VarDecl)
	in, ok := decl.Initializer.(*ast.Input)
	require.True(t, ok)
	assert.Equal(t, "stdin", in.Receiver)
	assert.Equal(t, "readLineSync", in.Method)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	prog, nerr := parseSrc(t, `var r = 1 + 2 * 3;`)
	assert.Equal(t, 0, nerr)
	decl := prog.Statements[0].(*ast.VarDecl)
	top := decl.Initializer.(*ast.BinOp)
	assert.Equal(t, "+", string(top.Op))
	_, rightIsMul := top.Right.(*ast.BinOp)
	assert.True(t, rightIsMul)
	_, leftIsLit := top.Left.(*ast.IntegerLit)
	assert.True(t, leftIsLit)
}

func TestParse_MissingSemicolonRecoversAndReportsOne(t *testing.T) {
	tokens, _ := lexer.Tokenize("var x = 1\nvar y = 2;")
	prog, errs := Parse(tokens)
	assert.Len(t, errs, 1)
	// recovery must still find the second declaration
	require.Len(t, prog.Statements, 2)
	assert.Equal(t, "y", prog.Statements[1].(*ast.VarDecl).Name)
}

func TestParse_UnexpectedEOFReportsOneDiagnostic(t *testing.T) {
	tokens, _ := lexer.Tokenize("if (x > 0) {")
	_, errs := Parse(tokens)
	require.Len(t, errs, 1)
}
