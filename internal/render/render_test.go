package render

import (
	"strings"
	"testing"

	"github.com/hargabyte/pyrepr/internal/signature"
)

func TestMethodKeywordOnly(t *testing.T) {
	params := []signature.Param{
		{Name: "name", Kind: signature.PositionalOrKeyword},
		{Name: "age", Kind: signature.KeywordOnly},
	}

	got := Method("KwOnly", params, Options{})

	want := Body{
		"def __repr__(self) -> str:",
		`    """Create a string (c)representation for KwOnly."""`,
		"    return (f'{self.__class__.__module__}.{self.__class__.__name__}('",
		"        f'name={self.name!r}, '",
		"        f'age={self.age!r}, '",
		"    ')')",
	}
	assertBody(t, got, want)
}

func TestMethodKwargSplat(t *testing.T) {
	params := []signature.Param{
		{Name: "name", Kind: signature.PositionalOrKeyword},
		{Name: "opts", Kind: signature.VarKeyword},
	}

	got := Method("SplatKwargs", params, Options{})

	want := Body{
		"def __repr__(self) -> str:",
		`    """Create a string (c)representation for SplatKwargs."""`,
		"    return (f'{self.__class__.__module__}.{self.__class__.__name__}('",
		"        f'name={self.name!r}, '",
		"        f'**...,'",
		"    ')')",
	}
	assertBody(t, got, want)

	// The placeholder stands in verbatim; stored kwargs are never enumerated.
	if !strings.Contains(got.String(), "f'**...,'") {
		t.Error("expected the literal ... placeholder in the splat fragment")
	}
	if strings.Contains(got.String(), "opts") {
		t.Error("the **kwargs parameter name must not leak into the body")
	}
}

func TestMethodCustomSplat(t *testing.T) {
	params := []signature.Param{
		{Name: "kwargs", Kind: signature.VarKeyword},
	}

	got := Method("Custom", params, Options{KwargSplat: "<kwargs>"})

	if got[3] != "        f'**<kwargs>,'" {
		t.Errorf("expected custom splat fragment, got %q", got[3])
	}
}

func TestMethodVarPositional(t *testing.T) {
	params := []signature.Param{
		{Name: "head", Kind: signature.PositionalOrKeyword},
		{Name: "rest", Kind: signature.VarPositional},
	}

	got := Method("Variadic", params, Options{})

	want := "        f'*{\", \".join(repr(v) for v in self.rest)}, '"
	if got[4] != want {
		t.Errorf("expected var-positional fragment\n  %q\ngot\n  %q", want, got[4])
	}
}

func TestMethodVarKeywordRenderedLast(t *testing.T) {
	// Declaration order cannot put **kwargs first in real Python, but the
	// renderer guarantees the splat ends up last regardless.
	params := []signature.Param{
		{Name: "kwargs", Kind: signature.VarKeyword},
		{Name: "name", Kind: signature.PositionalOrKeyword},
	}

	got := Method("Odd", params, Options{})

	if got[3] != "        f'name={self.name!r}, '" {
		t.Errorf("expected name fragment first, got %q", got[3])
	}
	if got[4] != "        f'**...,'" {
		t.Errorf("expected splat fragment last, got %q", got[4])
	}
}

func TestMethodNoParams(t *testing.T) {
	got := Method("Empty", nil, Options{})

	want := Body{
		"def __repr__(self) -> str:",
		`    """Create a string (c)representation for Empty."""`,
		"    return (f'{self.__class__.__module__}.{self.__class__.__name__}('",
		"    ')')",
	}
	assertBody(t, got, want)
}

func TestMethodQualifiedNameOverride(t *testing.T) {
	params := []signature.Param{
		{Name: "name", Kind: signature.PositionalOrKeyword},
		{Name: "age", Kind: signature.KeywordOnly},
	}

	got := Method("KwOnly", params, Options{QualifiedName: "pkg.mod.KwOnly"})

	if got[2] != "    return (f'pkg.mod.KwOnly('" {
		t.Errorf("expected overridden constructor expression, got %q", got[2])
	}
}

func TestMethodPreservesDeclarationOrder(t *testing.T) {
	params := []signature.Param{
		{Name: "a", Kind: signature.PositionalOrKeyword},
		{Name: "b", Kind: signature.PositionalOrKeyword},
		{Name: "c", Kind: signature.KeywordOnly},
	}

	got := Method("Ordered", params, Options{}).String()

	ia := strings.Index(got, "f'a=")
	ib := strings.Index(got, "f'b=")
	ic := strings.Index(got, "f'c=")
	if ia < 0 || ib < 0 || ic < 0 || !(ia < ib && ib < ic) {
		t.Errorf("fragments out of declaration order:\n%s", got)
	}
}

func TestMethodDeterministic(t *testing.T) {
	params := []signature.Param{
		{Name: "name", Kind: signature.PositionalOrKeyword},
		{Name: "kwargs", Kind: signature.VarKeyword},
	}

	first := Method("Stable", params, Options{}).String()
	second := Method("Stable", params, Options{}).String()

	if first != second {
		t.Error("rendering is not deterministic")
	}
}

func TestMethodIndentUnit(t *testing.T) {
	params := []signature.Param{
		{Name: "a", Kind: signature.PositionalOrKeyword},
	}

	got := Method("Narrow", params, Options{IndentUnit: "  "})

	want := Body{
		"def __repr__(self) -> str:",
		`  """Create a string (c)representation for Narrow."""`,
		"  return (f'{self.__class__.__module__}.{self.__class__.__name__}('",
		"    f'a={self.a!r}, '",
		"  ')')",
	}
	assertBody(t, got, want)
}

func TestBodyIndented(t *testing.T) {
	body := Body{"def __repr__(self) -> str:", "    pass"}

	got := body.Indented("    ")

	if got[0] != "    def __repr__(self) -> str:" {
		t.Errorf("unexpected first line: %q", got[0])
	}
	if got[1] != "        pass" {
		t.Errorf("unexpected second line: %q", got[1])
	}
}

func assertBody(t *testing.T, got, want Body) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(got), got.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d:\nwant %q\ngot  %q", i, want[i], got[i])
		}
	}
}
