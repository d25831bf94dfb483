/*
File    : dartlint/sema/analyzer_test.go
*/
package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/dartlint/lexer"
	"github.com/akashmaji946/dartlint/parser"
)

func analyzeSrc(t *testing.T, src string) []string {
	t.Helper()
	tokens, lexErrs := lexer.Tokenize(src)
	require.Empty(t, lexErrs)
	prog, syntaxErrs := parser.Parse(tokens)
	require.Empty(t, syntaxErrs)
	diags := Analyze(prog)
	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	return msgs
}

func TestAnalyze_CleanProgramHasNoDiagnostics(t *testing.T) {
	msgs := analyzeSrc(t, `
int add(int a, int b) { return a + b; }
var x = add(1, 2);
print(x);
`)
	assert.Empty(t, msgs)
}

func TestAnalyze_UndeclaredIdentifier(t *testing.T) {
	msgs := analyzeSrc(t, `print(y);`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "y")
}

func TestAnalyze_RedeclarationInSameScope(t *testing.T) {
	msgs := analyzeSrc(t, `var x = 1; var x = 2;`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "x")
}

func TestAnalyze_ShadowingAcrossScopesAllowed(t *testing.T) {
	msgs := analyzeSrc(t, `
var x = 1;
if (true) {
  var x = 2;
  print(x);
}
`)
	assert.Empty(t, msgs)
}

func TestAnalyze_ReassignFinalIsError(t *testing.T) {
	msgs := analyzeSrc(t, `final x = 1; x = 2;`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "x")
}

func TestAnalyze_BreakOutsideLoopIsError(t *testing.T) {
	msgs := analyzeSrc(t, `break;`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "break")
}

func TestAnalyze_ContinueInsideLoopIsFine(t *testing.T) {
	msgs := analyzeSrc(t, `while (true) { continue; }`)
	assert.Empty(t, msgs)
}

func TestAnalyze_BinaryOperatorTypeMismatch(t *testing.T) {
	msgs := analyzeSrc(t, `var x = "a" - 1;`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "-")
}

func TestAnalyze_ImplicitIntToDoubleConversionAllowed(t *testing.T) {
	msgs := analyzeSrc(t, `double x = 5;`)
	assert.Empty(t, msgs)
}

func TestAnalyze_NonVoidFunctionMissingReturnOnAllPaths(t *testing.T) {
	msgs := analyzeSrc(t, `
int classify(int n) {
  if (n > 0) {
    return 1;
  } else if (n < 0) {
    return 0 - 1;
  }
}
`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "classify")
}

func TestAnalyze_NonVoidFunctionWithExhaustiveIfElseIsFine(t *testing.T) {
	msgs := analyzeSrc(t, `
int classify(int n) {
  if (n > 0) {
    return 1;
  } else if (n < 0) {
    return 0 - 1;
  } else {
    return 0;
  }
}
`)
	assert.Empty(t, msgs)
}

func TestAnalyze_VoidFunctionCannotReturnValue(t *testing.T) {
	msgs := analyzeSrc(t, `
void greet() {
  return 1;
}
`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "greet")
}

func TestAnalyze_RecursiveFunctionResolvesOwnName(t *testing.T) {
	msgs := analyzeSrc(t, `
int fact(int n) {
  if (n <= 1) {
    return 1;
  }
  return n * fact(n - 1);
}
`)
	assert.Empty(t, msgs)
}

func TestAnalyze_MutualRecursionResolvesForwardReference(t *testing.T) {
	msgs := analyzeSrc(t, `
bool isEven(int n) {
  if (n == 0) {
    return true;
  }
  return isOdd(n - 1);
}
bool isOdd(int n) {
  if (n == 0) {
    return false;
  }
  return isEven(n - 1);
}
`)
	assert.Empty(t, msgs)
}

func TestAnalyze_CallWrongArgumentCount(t *testing.T) {
	msgs := analyzeSrc(t, `
int add(int a, int b) { return a + b; }
var x = add(1);
`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "add")
}

func TestAnalyze_ForInOverNonListIsError(t *testing.T) {
	msgs := analyzeSrc(t, `
int n = 5;
for (var item in n) { print(item); }
`)
	require.Len(t, msgs, 1)
}

func TestAnalyze_InputReceiverMethodYieldsString(t *testing.T) {
	msgs := analyzeSrc(t, `String line = stdin.readLineSync();`)
	assert.Empty(t, msgs)
}

func TestAnalyze_UnsupportedInputCallIsError(t *testing.T) {
	msgs := analyzeSrc(t, `var line = stdin.readKeySync();`)
	require.Len(t, msgs, 1)
}

func TestAnalyze_PrintWrongArity(t *testing.T) {
	msgs := analyzeSrc(t, `print(1, 2);`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "print")
}

func TestAnalyze_OperationOnNullWithoutCheckIsError(t *testing.T) {
	msgs := analyzeSrc(t, `var s = null; var t = s + 1;`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "null")
}

func TestAnalyze_NullComparisonDoesNotRequireCheck(t *testing.T) {
	msgs := analyzeSrc(t, `var s = null; var ok = s == null;`)
	assert.Empty(t, msgs)
}

func TestAnalyze_NullCoalesceDoesNotRequireCheck(t *testing.T) {
	msgs := analyzeSrc(t, `var s = null; var t = s ?? 1;`)
	assert.Empty(t, msgs)
}

func TestAnalyze_NumericMismatchSuggestsExplicitCast(t *testing.T) {
	msgs := analyzeSrc(t, `int a = 1; int b = 2.5;`)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "'double'")
	assert.Contains(t, msgs[0], "'int'")
	assert.Contains(t, msgs[0], "explícita")
}

func TestAnalyze_NonNumericMismatchIsIncompatibleInitialization(t *testing.T) {
	msgs := analyzeSrc(t, `int a = "x";`)
	require.Len(t, msgs, 1)
	assert.NotContains(t, msgs[0], "explícita")
}

func TestAnalyze_MethodNamedGetParsesAndAnalyzes(t *testing.T) {
	msgs := analyzeSrc(t, `
class C {
  int v = 1;
  int get() { return v + 1; }
}
`)
	assert.Empty(t, msgs)
}
