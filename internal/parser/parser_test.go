package parser_test

import (
	"testing"

	"github.com/go-extjson/extjson/internal/parser"
)

func TestGot(t *testing.T) {
	p := parser.NewString("data:rest")
	if !p.Got("data:") {
		t.Fatal("Got should match prefix")
	}
	if p.Got("data:") {
		t.Fatal("Got should have consumed the prefix")
	}
	if string(p.Bytes()) != "rest" {
		t.Fatalf("got %q, wanted %q", p.Bytes(), "rest")
	}
}

func TestJumpTo(t *testing.T) {
	p := parser.NewString("type,pay,load")
	b, ok := p.JumpTo(',')
	if !ok || string(b) != "type" {
		t.Fatalf("got %q ok=%v", b, ok)
	}
	if string(p.Bytes()) != "pay,load" {
		t.Fatalf("remainder %q", p.Bytes())
	}

	p = parser.NewString("no separator")
	b, ok = p.JumpTo(',')
	if ok || string(b) != "no separator" {
		t.Fatalf("got %q ok=%v", b, ok)
	}
	if p.Valid() {
		t.Fatal("parser should be drained")
	}
}

func TestReadPeek(t *testing.T) {
	p := parser.NewString("ab")
	if c := p.Peek(); c != 'a' {
		t.Fatalf("Peek = %q", c)
	}
	if c := p.Read(); c != 'a' {
		t.Fatalf("Read = %q", c)
	}
	if c := p.Read(); c != 'b' {
		t.Fatalf("Read = %q", c)
	}
	if p.Valid() {
		t.Fatal("parser should be drained")
	}
	if c := p.Peek(); c != 0 {
		t.Fatalf("Peek on empty = %q", c)
	}
}
