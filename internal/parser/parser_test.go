package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hassan/harambe/internal/ast"
	"github.com/hassan/harambe/internal/lexer"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	prog, errs := New(lexer.New(source, "t.hb")).ParseProgram()
	require.Empty(t, errs, "parse errors: %v", errs)
	return prog
}

func TestParser_SimpleFunction(t *testing.T) {
	prog := parse(t, `
		int main() {
			int x;
			x = 3;
		}
	`)
	require.Len(t, prog.Decls, 1)
	fn, ok := prog.Decls[0].(*ast.FnDecl)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Id.Lexeme)
	assert.Equal(t, ast.KindInt, fn.ReturnType.Kind)
	require.Len(t, fn.Body.Decls, 1)
	require.Len(t, fn.Body.Stmts, 1)
	assign, ok := fn.Body.Stmts[0].(*ast.AssignStmt)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Lhs.(*ast.Id).Lexeme)
}

func TestParser_StructDeclAndVarOfStructType(t *testing.T) {
	prog := parse(t, `
		struct Point {
			int x;
			int y;
		};

		int main() {
			struct Point p;
		}
	`)
	require.Len(t, prog.Decls, 2)
	sd, ok := prog.Decls[0].(*ast.StructDecl)
	require.True(t, ok)
	assert.Equal(t, "Point", sd.Id.Lexeme)
	require.Len(t, sd.Fields, 2)

	fn := prog.Decls[1].(*ast.FnDecl)
	vd := fn.Body.Decls[0].(*ast.VarDecl)
	assert.Equal(t, ast.KindStruct, vd.Type.Kind)
	assert.Equal(t, "Point", vd.Type.StructId.Lexeme)
}

func TestParser_ArrayDeclaration(t *testing.T) {
	prog := parse(t, `int main() { int a[10]; }`)
	fn := prog.Decls[0].(*ast.FnDecl)
	vd := fn.Body.Decls[0].(*ast.VarDecl)
	require.NotNil(t, vd.SizeTag)
	assert.Equal(t, int64(10), vd.SizeTag.Value)
}

func TestParser_DotAccessChain(t *testing.T) {
	prog := parse(t, `
		struct Inner { int v; };
		struct Outer { struct Inner nested; };
		int main() {
			struct Outer o;
			o.nested.v = 1;
		}
	`)
	fn := prog.Decls[2].(*ast.FnDecl)
	assign := fn.Body.Stmts[0].(*ast.AssignStmt)
	outer, ok := assign.Lhs.(*ast.DotAccess)
	require.True(t, ok)
	assert.Equal(t, "v", outer.Field.Lexeme)
	inner, ok := outer.Loc.(*ast.DotAccess)
	require.True(t, ok)
	assert.Equal(t, "nested", inner.Field.Lexeme)
	assert.Equal(t, "o", inner.Loc.(*ast.Id).Lexeme)
}

func TestParser_CallStatementAndCallExpr(t *testing.T) {
	prog := parse(t, `
		int add(int a, int b) {
			return a + b;
		}
		int main() {
			add(1, 2);
			int x;
			x = add(3, 4);
		}
	`)
	add := prog.Decls[0].(*ast.FnDecl)
	require.Len(t, add.Formals, 2)
	ret := add.Body.Stmts[0].(*ast.ReturnStmt)
	bin, ok := ret.Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpPlus, bin.Op)

	main := prog.Decls[1].(*ast.FnDecl)
	callStmt, ok := main.Body.Stmts[0].(*ast.CallStmt)
	require.True(t, ok)
	assert.Equal(t, "add", callStmt.Call.Id.Lexeme)
	require.Len(t, callStmt.Call.Args, 2)

	assign := main.Body.Stmts[1].(*ast.AssignStmt)
	callExpr, ok := assign.Rhs.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, "add", callExpr.Id.Lexeme)
}

func TestParser_IfElseAndWhile(t *testing.T) {
	prog := parse(t, `
		int main() {
			int x;
			if (x == 1) {
				write x;
			} else {
				write 0;
			}
			while (x < 10) {
				x++;
			}
		}
	`)
	fn := prog.Decls[0].(*ast.FnDecl)
	ifElse, ok := fn.Body.Stmts[0].(*ast.IfElseStmt)
	require.True(t, ok)
	require.Len(t, ifElse.Then.Stmts, 1)
	require.Len(t, ifElse.Else.Stmts, 1)

	while, ok := fn.Body.Stmts[1].(*ast.WhileStmt)
	require.True(t, ok)
	_, isInc := while.Body.Stmts[0].(*ast.PostIncStmt)
	assert.True(t, isInc)
}

func TestParser_ReadWriteAndPostDec(t *testing.T) {
	prog := parse(t, `
		int main() {
			int x;
			read x;
			write x;
			x--;
		}
	`)
	fn := prog.Decls[0].(*ast.FnDecl)
	_, isRead := fn.Body.Stmts[0].(*ast.ReadStmt)
	assert.True(t, isRead)
	_, isWrite := fn.Body.Stmts[1].(*ast.WriteStmt)
	assert.True(t, isWrite)
	_, isDec := fn.Body.Stmts[2].(*ast.PostDecStmt)
	assert.True(t, isDec)
}

func TestParser_OperatorPrecedence(t *testing.T) {
	prog := parse(t, `
		int main() {
			bool b;
			b = 1 + 2 * 3 == 7 && true;
		}
	`)
	fn := prog.Decls[0].(*ast.FnDecl)
	assign := fn.Body.Stmts[0].(*ast.AssignStmt)
	top, ok := assign.Rhs.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAnd, top.Op)
	eq, ok := top.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpEquals, eq.Op)
	add, ok := eq.Left.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpPlus, add.Op)
	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpTimes, mul.Op)
}

func TestParser_UnaryAndParens(t *testing.T) {
	prog := parse(t, `
		int main() {
			int x;
			x = -(1 + 2);
		}
	`)
	fn := prog.Decls[0].(*ast.FnDecl)
	assign := fn.Body.Stmts[0].(*ast.AssignStmt)
	un, ok := assign.Rhs.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpUnaryMinus, un.Op)
	_, isBinary := un.Operand.(*ast.BinaryExpr)
	assert.True(t, isBinary)
}

func TestParser_AssignmentAsValue(t *testing.T) {
	prog := parse(t, `
		int main() {
			int x;
			int y;
			write x = y;
		}
	`)
	fn := prog.Decls[0].(*ast.FnDecl)
	ws := fn.Body.Stmts[0].(*ast.WriteStmt)
	_, ok := ws.Expr.(*ast.AssignExpr)
	assert.True(t, ok)
}

func TestParser_ReportsErrorAndRecovers(t *testing.T) {
	prog, errs := New(lexer.New(`
		int main() {
			int x
		}
		int good() {
			return 0;
		}
	`, "t.hb")).ParseProgram()
	assert.NotEmpty(t, errs)
	require.Len(t, prog.Decls, 1)
	good, ok := prog.Decls[0].(*ast.FnDecl)
	require.True(t, ok)
	assert.Equal(t, "good", good.Id.Lexeme)
}

func TestParser_VoidFunctionReturnNoExpr(t *testing.T) {
	prog := parse(t, `
		void doNothing() {
			return;
		}
	`)
	fn := prog.Decls[0].(*ast.FnDecl)
	assert.Equal(t, ast.KindVoid, fn.ReturnType.Kind)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	assert.Nil(t, ret.Expr)
}
