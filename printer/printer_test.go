package printer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/k0kubun/rbparse/parser"
	"github.com/k0kubun/rbparse/printer"
)

func run(t *testing.T, src string) []string {
	t.Helper()
	source := []byte(src)
	var buf bytes.Buffer
	parser.Parse(source, printer.New(&buf, source))
	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestLiteralForms(t *testing.T) {
	assert.Equal(t, []string{"NIL"}, run(t, "nil\n"))
	assert.Equal(t, []string{"TRUE"}, run(t, "true\n"))
	assert.Equal(t, []string{"FALSE"}, run(t, "false\n"))
	assert.Equal(t, []string{"SELF"}, run(t, "self\n"))
	assert.Equal(t, []string{"GVAR=$foo"}, run(t, "$foo\n"))
}

func TestRangeForms(t *testing.T) {
	assert.Equal(t, []string{"INTEGER=1", "INTEGER=2", "RANGE"}, run(t, "1..2\n"))
	assert.Equal(t, []string{"INTEGER=1", "INTEGER=2", "RANGE_EXCLUSIVE"}, run(t, "1...2\n"))
}

func TestIndexForms(t *testing.T) {
	assert.Equal(t, []string{"VCALL=a", "INDEX_CALL"}, run(t, "a[]\n"))
	assert.Equal(t, []string{"VCALL=a", "INTEGER=1", "INDEX_EXPR"}, run(t, "a[1]\n"))
}

func TestModifierForms(t *testing.T) {
	assert.Equal(t, []string{"VCALL=a", "VCALL=b", "IF"}, run(t, "a if b\n"))
	assert.Equal(t, []string{"VCALL=a", "VCALL=b", "UNLESS"}, run(t, "a unless b\n"))
	assert.Equal(t, []string{"VCALL=a", "VCALL=b", "MODIFIER_WHILE"}, run(t, "a while b\n"))
	assert.Equal(t, []string{"VCALL=a", "VCALL=b", "MODIFIER_UNTIL"}, run(t, "a until b\n"))
	assert.Equal(t, []string{"VCALL=a", "VCALL=b", "RESCUE"}, run(t, "a rescue b\n"))
}

func TestDefinedAndNot(t *testing.T) {
	assert.Equal(t, []string{"VCALL=foo", "DEFINED"}, run(t, "defined? foo\n"))
	assert.Equal(t, []string{"VCALL=foo", "DEFINED"}, run(t, "defined?(foo)\n"))
	assert.Equal(t, []string{"VCALL=foo", "NOT"}, run(t, "not foo\n"))
}
